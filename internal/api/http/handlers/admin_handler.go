package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/petcare-service/internal/api/dto"
	"github.com/spec-kit/petcare-service/internal/auth"
	"github.com/spec-kit/petcare-service/internal/service"
)

// AdminHandler exposes the admin console endpoints. Role enforcement happens
// in the router via RequireRole(admin); handlers still need the principal for
// event attribution.
type AdminHandler struct {
	users    *service.UserService
	requests *service.CareRequestService
}

// NewAdminHandler constructs the handler.
func NewAdminHandler(userService *service.UserService, requestService *service.CareRequestService) *AdminHandler {
	return &AdminHandler{users: userService, requests: requestService}
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"users": dto.NewUserResponses(users)}})
}

// VerifyUser handles PATCH /api/admin/users/:id.
func (h *AdminHandler) VerifyUser(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.VerifyUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.SetVerified(c.Context(), principal.User, c.Params("id"), req.Verified)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"user": dto.NewUserResponse(user)}})
}

// ListCareRequests handles GET /api/admin/care-requests.
func (h *AdminHandler) ListCareRequests(c *fiber.Ctx) error {
	requests, err := h.requests.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"requests": dto.NewCareRequestResponses(requests)}})
}
