package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/petcare-service/internal/api/dto"
	"github.com/spec-kit/petcare-service/internal/auth"
	"github.com/spec-kit/petcare-service/internal/domain"
	"github.com/spec-kit/petcare-service/internal/service"
)

// AuthHandler exposes registration, login, session and logout endpoints.
type AuthHandler struct {
	auth         *service.AuthService
	secureCookie bool
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(authService *service.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{auth: authService, secureCookie: secureCookie}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "name, email, password required")
	}

	user, err := h.auth.Register(c.Context(), service.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		Role:            domain.Role(req.Role),
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

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"user": dto.NewUserResponse(user)},
	})
}

// Login handles POST /api/auth/login. On success the credential is set as an
// HTTP-only cookie and the response names the post-login destination, taken
// from the redirect query parameter when present.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	result, err := h.auth.Login(c.Context(), req.Email, req.Password, c.Query("redirect"))
	if err != nil {
		return err
	}

	auth.SetSessionCookie(c, result.Token, result.ExpiresAt, h.secureCookie)

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user":     dto.NewUserResponse(result.User),
			"redirect": result.Redirect,
		},
	})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{"user": fiber.Map{
			"id":   principal.User.ID,
			"name": principal.User.Name,
			"role": principal.User.Role,
		}},
	})
}

// Verify handles POST /api/auth/verify: re-checks the password of an already
// authenticated caller before sensitive actions.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	var req dto.VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	if err := h.auth.VerifyPassword(c.Context(), req.Email, req.Password); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"success": true}})
}

// Logout handles POST /api/auth/logout. Deleting the cookie is the whole
// logout; the credential itself stays valid until expiry.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	auth.ClearSessionCookie(c)
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "logged out"}})
}

// LogoutRedirect handles GET /api/auth/logout for browser navigation.
func (h *AuthHandler) LogoutRedirect(c *fiber.Ctx) error {
	auth.ClearSessionCookie(c)
	return c.Redirect("/login", fiber.StatusFound)
}
