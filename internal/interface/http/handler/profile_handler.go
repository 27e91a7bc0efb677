package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/social-backend/internal/domain/entity"
	"github.com/wichananm65/social-backend/internal/interface/presenter"
	"github.com/wichananm65/social-backend/internal/usecase"
)

type ProfileHandler struct {
	profiles usecase.ProfileUsecase
}

func NewProfileHandler(profiles usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/profiles", h.list)
	r.Post("/profiles", h.create)
	r.Get("/profiles/:id", h.get)
	r.Patch("/profiles/:id", h.update)
	r.Delete("/profiles/:id", h.delete)
}

func (h *ProfileHandler) list(c *fiber.Ctx) error {
	return c.JSON(h.profiles.List(c.UserContext()))
}

func (h *ProfileHandler) get(c *fiber.Ctx) error {
	profile, err := h.profiles.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return c.JSON(profile)
}

func (h *ProfileHandler) create(c *fiber.Ctx) error {
	var input usecase.CreateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return presenter.BadBody(c, err)
	}
	profile, err := h.profiles.Create(c.UserContext(), input)
	if err != nil {
		return presenter.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}

func (h *ProfileHandler) update(c *fiber.Ctx) error {
	var patch entity.ProfilePatch
	if err := c.BodyParser(&patch); err != nil {
		return presenter.BadBody(c, err)
	}
	profile, err := h.profiles.Update(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return presenter.Error(c, err)
	}
	return c.JSON(profile)
}

func (h *ProfileHandler) delete(c *fiber.Ctx) error {
	profile, err := h.profiles.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return c.JSON(profile)
}
