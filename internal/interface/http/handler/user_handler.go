package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/social-backend/internal/domain/entity"
	"github.com/wichananm65/social-backend/internal/domain/repository"
	"github.com/wichananm65/social-backend/internal/interface/presenter"
	"github.com/wichananm65/social-backend/internal/usecase"
)

// UserHandler adapts REST requests to user use case calls.
type UserHandler struct {
	users usecase.UserUsecase
}

type subscriptionRequest struct {
	UserID string `json:"userId"`
}

func NewUserHandler(users usecase.UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/users", h.list)
	r.Post("/users", h.create)
	r.Get("/users/:id", h.get)
	r.Patch("/users/:id", h.update)
	r.Delete("/users/:id", h.delete)
	r.Post("/users/:id/subscribeTo", h.subscribeTo)
	r.Post("/users/:id/unsubscribeFrom", h.unsubscribeFrom)
}

func (h *UserHandler) list(c *fiber.Ctx) error {
	return c.JSON(h.users.List(c.UserContext()))
}

func (h *UserHandler) get(c *fiber.Ctx) error {
	user, err := h.users.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) create(c *fiber.Ctx) error {
	var input usecase.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return presenter.BadBody(c, err)
	}
	user, err := h.users.Create(c.UserContext(), input)
	if err != nil {
		return presenter.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *UserHandler) update(c *fiber.Ctx) error {
	var patch entity.UserPatch
	if err := c.BodyParser(&patch); err != nil {
		return presenter.BadBody(c, err)
	}
	user, err := h.users.Update(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return presenter.Error(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) delete(c *fiber.Ctx) error {
	user, err := h.users.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		var cascade *repository.CascadeError
		if errors.As(err, &cascade) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": err.Error(),
				"user":    user,
			})
		}
		return presenter.Error(c, err)
	}
	return c.JSON(user)
}

// subscribeTo makes the user named in the body follow :id and answers with
// that follower.
func (h *UserHandler) subscribeTo(c *fiber.Ctx) error {
	subscriberID, ok, err := subscriberFromBody(c)
	if !ok {
		return err
	}
	user, err := h.users.Subscribe(c.UserContext(), subscriberID, c.Params("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return c.JSON(user)
}

// unsubscribeFrom drops :id from the body user's subscriptions and answers
// with the :id user.
func (h *UserHandler) unsubscribeFrom(c *fiber.Ctx) error {
	subscriberID, ok, err := subscriberFromBody(c)
	if !ok {
		return err
	}
	targetID := c.Params("id")
	if _, err := h.users.Unsubscribe(c.UserContext(), subscriberID, targetID); err != nil {
		return presenter.Error(c, err)
	}
	target, err := h.users.GetByID(c.UserContext(), targetID)
	if err != nil {
		return presenter.Error(c, err)
	}
	return c.JSON(target)
}

// subscriberFromBody reads {userId}. When ok is false the response is already
// written and err is what the handler should return.
func subscriberFromBody(c *fiber.Ctx) (id string, ok bool, err error) {
	var body subscriptionRequest
	if err := c.BodyParser(&body); err != nil {
		return "", false, presenter.BadBody(c, err)
	}
	id = strings.TrimSpace(body.UserID)
	if id == "" {
		return "", false, presenter.Message(c, fiber.StatusBadRequest, "userId is required")
	}
	return id, true, nil
}
