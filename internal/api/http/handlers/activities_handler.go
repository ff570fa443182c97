package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/petcare-service/internal/api/dto"
	"github.com/spec-kit/petcare-service/internal/auth"
	"github.com/spec-kit/petcare-service/internal/domain"
	"github.com/spec-kit/petcare-service/internal/service"
)

// ActivitiesHandler exposes the care activity log.
type ActivitiesHandler struct {
	activities *service.ActivityService
}

// NewActivitiesHandler constructs the handler.
func NewActivitiesHandler(activityService *service.ActivityService) *ActivitiesHandler {
	return &ActivitiesHandler{activities: activityService}
}

// List handles GET /api/activities?care_request_id=...
func (h *ActivitiesHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	careRequestID := c.Query("care_request_id")
	if careRequestID == "" {
		return fiber.NewError(http.StatusBadRequest, "care_request_id required")
	}

	activities, err := h.activities.ListByCareRequest(c.Context(), principal.User, careRequestID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"activities": dto.NewActivityResponses(activities)}})
}

// Create handles POST /api/activities (caretaker only).
func (h *ActivitiesHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.ActivityLogRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.CareRequestID == "" {
		return fiber.NewError(http.StatusBadRequest, "careRequestId required")
	}

	activity, err := h.activities.Log(c.Context(), principal.User, service.ActivityLogInput{
		CareRequestID: req.CareRequestID,
		Type:          domain.ActivityType(req.ActivityType),
		Description:   req.Description,
		Location:      req.Location,
		Photos:        req.Photos,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"activity": dto.NewActivityResponse(activity)},
	})
}
