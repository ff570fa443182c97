package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/petcare-service/internal/domain"
	"github.com/spec-kit/petcare-service/internal/events"
	"github.com/spec-kit/petcare-service/internal/repository"
	apperrors "github.com/spec-kit/petcare-service/pkg/util"
)

// ActivityLogInput describes a care activity entry.
type ActivityLogInput struct {
	CareRequestID string
	Type          domain.ActivityType
	Description   string
	Location      *domain.Location
	Photos        []string
}

// ActivityService records and lists care activities.
type ActivityService struct {
	activities repository.ActivityRepository
	requests   *CareRequestService
	dispatcher events.Dispatcher
}

// NewActivityService constructs the service.
func NewActivityService(activities repository.ActivityRepository, requests *CareRequestService, dispatcher events.Dispatcher) *ActivityService {
	return &ActivityService{activities: activities, requests: requests, dispatcher: dispatcher}
}

// Log records an activity against an accepted care request. Only the
// assigned caretaker may log.
func (s *ActivityService) Log(ctx context.Context, caretaker *domain.User, input ActivityLogInput) (*domain.Activity, error) {
	if !domain.ValidActivityType(input.Type) {
		return nil, apperrors.NewValidationError("unknown activity type", nil)
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, apperrors.NewValidationError("description required", nil)
	}

	request, err := s.requests.GetByID(ctx, caretaker, input.CareRequestID)
	if err != nil {
		return nil, err
	}
	if request.CaretakerID != caretaker.ID {
		return nil, apperrors.NewForbidden("request not assigned to caller")
	}
	if request.Status != domain.CareRequestAccepted {
		return nil, apperrors.NewConflict("care request not active", map[string]any{"status": request.Status})
	}

	photos := input.Photos
	if photos == nil {
		photos = []string{}
	}

	activity := &domain.Activity{
		CareRequestID: request.ID,
		PetID:         request.PetID,
		CaretakerID:   caretaker.ID,
		Type:          input.Type,
		Description:   input.Description,
		Location:      input.Location,
		Photos:        photos,
	}
	if err := s.activities.Create(ctx, activity); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventActivityLogged,
			SubjectID: request.ID,
			Actor:     events.Actor{UserID: caretaker.ID, Role: caretaker.Role},
			Timestamp: time.Now(),
			Payload: events.ActivityLoggedPayload{
				ActivityID:  activity.ID,
				PetID:       activity.PetID,
				Type:        activity.Type,
				HasLocation: activity.Location != nil,
				PhotoCount:  len(activity.Photos),
			},
		})
	}

	return activity, nil
}

// ListByCareRequest returns a request's activity feed, visible to its owner,
// caretaker and admins.
func (s *ActivityService) ListByCareRequest(ctx context.Context, caller *domain.User, careRequestID string) ([]*domain.Activity, error) {
	if _, err := s.requests.GetByID(ctx, caller, careRequestID); err != nil {
		return nil, err
	}
	return s.activities.ListByCareRequest(ctx, careRequestID)
}
