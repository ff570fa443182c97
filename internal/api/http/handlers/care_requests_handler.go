package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/petcare-service/internal/api/dto"
	"github.com/spec-kit/petcare-service/internal/auth"
	"github.com/spec-kit/petcare-service/internal/domain"
	"github.com/spec-kit/petcare-service/internal/service"
)

// CareRequestsHandler exposes the care request lifecycle.
type CareRequestsHandler struct {
	requests *service.CareRequestService
}

// NewCareRequestsHandler constructs the handler.
func NewCareRequestsHandler(requestService *service.CareRequestService) *CareRequestsHandler {
	return &CareRequestsHandler{requests: requestService}
}

// List handles GET /api/care-requests. Visibility depends on the caller's
// role.
func (h *CareRequestsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	requests, err := h.requests.ListFor(c.Context(), principal.User)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"requests": dto.NewCareRequestResponses(requests)}})
}

// Create handles POST /api/care-requests (owner only).
func (h *CareRequestsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.CareRequestCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.PetID == "" || req.CaretakerID == "" {
		return fiber.NewError(http.StatusBadRequest, "petId and caretakerId required")
	}

	request, err := h.requests.Create(c.Context(), principal.User, service.CareRequestCreateInput{
		PetID:       req.PetID,
		CaretakerID: req.CaretakerID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"careRequest": dto.NewCareRequestResponse(request)},
	})
}

// UpdateStatus handles PATCH /api/care-requests/:id.
func (h *CareRequestsHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.CareRequestStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	request, err := h.requests.UpdateStatus(c.Context(), principal.User, c.Params("id"), domain.CareRequestStatus(req.Status))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{"careRequest": dto.NewCareRequestResponse(request)},
	})
}
