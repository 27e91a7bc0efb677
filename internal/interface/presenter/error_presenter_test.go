package presenter

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/wichananm65/social-backend/internal/domain/repository"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", &repository.NotFoundError{Entity: "user", ID: "1"}, fiber.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load: %w", &repository.NotFoundError{Entity: "post"}), fiber.StatusNotFound},
		{"validation", repository.Invalid("bad"), fiber.StatusBadRequest},
		{"conflict", &repository.ConflictError{Entity: "user", ID: "1"}, fiber.StatusConflict},
		{"cascade", &repository.CascadeError{Entity: "user", ID: "1", Err: &repository.NotFoundError{Entity: "post"}}, fiber.StatusInternalServerError},
		{"fiber", fiber.ErrUnprocessableEntity, fiber.StatusUnprocessableEntity},
		{"other", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Status(tc.err))
		})
	}
}
