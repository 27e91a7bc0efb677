package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/social-backend/internal/domain/entity"
	"github.com/wichananm65/social-backend/internal/interface/presenter"
	"github.com/wichananm65/social-backend/internal/usecase"
)

type MemberTypeHandler struct {
	memberTypes usecase.MemberTypeUsecase
}

func NewMemberTypeHandler(memberTypes usecase.MemberTypeUsecase) *MemberTypeHandler {
	return &MemberTypeHandler{memberTypes: memberTypes}
}

func (h *MemberTypeHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/member-types", h.list)
	r.Post("/member-types", h.create)
	r.Get("/member-types/:id", h.get)
	r.Patch("/member-types/:id", h.update)
	r.Delete("/member-types/:id", h.delete)
}

func (h *MemberTypeHandler) list(c *fiber.Ctx) error {
	return c.JSON(h.memberTypes.List(c.UserContext()))
}

func (h *MemberTypeHandler) get(c *fiber.Ctx) error {
	memberType, err := h.memberTypes.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return c.JSON(memberType)
}

func (h *MemberTypeHandler) create(c *fiber.Ctx) error {
	var input usecase.CreateMemberTypeInput
	if err := c.BodyParser(&input); err != nil {
		return presenter.BadBody(c, err)
	}
	memberType, err := h.memberTypes.Create(c.UserContext(), input)
	if err != nil {
		return presenter.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(memberType)
}

func (h *MemberTypeHandler) update(c *fiber.Ctx) error {
	var patch entity.MemberTypePatch
	if err := c.BodyParser(&patch); err != nil {
		return presenter.BadBody(c, err)
	}
	memberType, err := h.memberTypes.Update(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return presenter.Error(c, err)
	}
	return c.JSON(memberType)
}

func (h *MemberTypeHandler) delete(c *fiber.Ctx) error {
	memberType, err := h.memberTypes.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return c.JSON(memberType)
}
