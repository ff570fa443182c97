package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/petcare-service/internal/api/dto"
	"github.com/spec-kit/petcare-service/internal/auth"
	"github.com/spec-kit/petcare-service/internal/service"
)

// ProfileHandler exposes self-service profile updates.
type ProfileHandler struct {
	users *service.UserService
}

// NewProfileHandler constructs the handler.
func NewProfileHandler(userService *service.UserService) *ProfileHandler {
	return &ProfileHandler{users: userService}
}

// Update handles PUT /api/user/update. Email, role, password and verified
// status cannot be changed here.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.UpdateProfile(c.Context(), principal.User.ID, service.ProfileUpdateInput{
		Name:            req.Name,
		Phone:           req.Phone,
		Address:         req.Address,
		Pincode:         req.Pincode,
		ProfilePhoto:    req.ProfilePhoto,
		Specialization:  req.Specialization,
		Experience:      req.Experience,
		ServiceCharge:   req.ServiceCharge,
		CompanyName:     req.CompanyName,
		CompanyIDNumber: req.CompanyIDNumber,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"user": dto.NewUserResponse(user)}})
}
