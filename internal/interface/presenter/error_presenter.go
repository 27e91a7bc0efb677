package presenter

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/social-backend/internal/domain/repository"
)

// Status maps a domain error to the HTTP status the REST layer answers with.
func Status(err error) int {
	var cascade *repository.CascadeError
	switch {
	case errors.As(err, &cascade):
		return fiber.StatusInternalServerError
	case errors.Is(err, repository.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, repository.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, repository.ErrConflict):
		return fiber.StatusConflict
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

// Error writes err as a {"message": ...} body with the mapped status.
func Error(c *fiber.Ctx, err error) error {
	return c.Status(Status(err)).JSON(fiber.Map{"message": err.Error()})
}

// Message writes a plain {"message": ...} body.
func Message(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

// BadBody answers a request whose body could not be decoded.
func BadBody(c *fiber.Ctx, err error) error {
	return Message(c, fiber.StatusBadRequest, "invalid request body: "+err.Error())
}
