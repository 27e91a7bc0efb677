package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/social-backend/internal/domain/entity"
	"github.com/wichananm65/social-backend/internal/interface/presenter"
	"github.com/wichananm65/social-backend/internal/usecase"
)

type PostHandler struct {
	posts usecase.PostUsecase
}

func NewPostHandler(posts usecase.PostUsecase) *PostHandler {
	return &PostHandler{posts: posts}
}

func (h *PostHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/posts", h.list)
	r.Post("/posts", h.create)
	r.Get("/posts/:id", h.get)
	r.Patch("/posts/:id", h.update)
	r.Delete("/posts/:id", h.delete)
}

func (h *PostHandler) list(c *fiber.Ctx) error {
	return c.JSON(h.posts.List(c.UserContext()))
}

func (h *PostHandler) get(c *fiber.Ctx) error {
	post, err := h.posts.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return c.JSON(post)
}

func (h *PostHandler) create(c *fiber.Ctx) error {
	var input usecase.CreatePostInput
	if err := c.BodyParser(&input); err != nil {
		return presenter.BadBody(c, err)
	}
	post, err := h.posts.Create(c.UserContext(), input)
	if err != nil {
		return presenter.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *PostHandler) update(c *fiber.Ctx) error {
	var patch entity.PostPatch
	if err := c.BodyParser(&patch); err != nil {
		return presenter.BadBody(c, err)
	}
	post, err := h.posts.Update(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return presenter.Error(c, err)
	}
	return c.JSON(post)
}

func (h *PostHandler) delete(c *fiber.Ctx) error {
	post, err := h.posts.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return c.JSON(post)
}
