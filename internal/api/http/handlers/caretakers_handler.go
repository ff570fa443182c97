package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/petcare-service/internal/api/dto"
	"github.com/spec-kit/petcare-service/internal/service"
)

// CaretakersHandler exposes the public caretaker directory.
type CaretakersHandler struct {
	users *service.UserService
}

// NewCaretakersHandler constructs the handler.
func NewCaretakersHandler(userService *service.UserService) *CaretakersHandler {
	return &CaretakersHandler{users: userService}
}

// List handles GET /api/caretakers: verified caretakers only.
func (h *CaretakersHandler) List(c *fiber.Ctx) error {
	caretakers, err := h.users.ListCaretakers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"caretakers": dto.NewUserResponses(caretakers)}})
}
