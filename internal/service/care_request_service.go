package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/petcare-service/internal/domain"
	"github.com/spec-kit/petcare-service/internal/events"
	"github.com/spec-kit/petcare-service/internal/repository"
	apperrors "github.com/spec-kit/petcare-service/pkg/util"
)

// CareRequestCreateInput describes a new care request.
type CareRequestCreateInput struct {
	PetID       string
	CaretakerID string
	StartDate   time.Time
	EndDate     time.Time
	Notes       string
}

// CareRequestService coordinates the request lifecycle between owners and
// caretakers.
type CareRequestService struct {
	requests   repository.CareRequestRepository
	pets       repository.PetRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// CareRequestDependencies bundles repositories for the service.
type CareRequestDependencies struct {
	RequestRepo repository.CareRequestRepository
	PetRepo     repository.PetRepository
	UserRepo    repository.UserRepository
	Dispatcher  events.Dispatcher
}

// NewCareRequestService constructs the service.
func NewCareRequestService(deps CareRequestDependencies) *CareRequestService {
	return &CareRequestService{
		requests:   deps.RequestRepo,
		pets:       deps.PetRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Create files a pending request from an owner to a verified caretaker. The
// pet must belong to the requesting owner.
func (s *CareRequestService) Create(ctx context.Context, owner *domain.User, input CareRequestCreateInput) (*domain.CareRequest, error) {
	pet, err := s.pets.GetByID(ctx, input.PetID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("pet", nil)
		}
		return nil, err
	}
	if pet.OwnerID != owner.ID {
		return nil, apperrors.NewForbidden("pet does not belong to caller")
	}

	caretaker, err := s.users.GetByID(ctx, input.CaretakerID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("caretaker", nil)
		}
		return nil, err
	}
	if caretaker.Role != domain.RoleCaretaker || !caretaker.Verified {
		return nil, apperrors.NewValidationError("caretaker not available", nil)
	}

	if !input.EndDate.After(input.StartDate) {
		return nil, apperrors.NewValidationError("end date must be after start date", nil)
	}

	request := &domain.CareRequest{
		PetID:       pet.ID,
		OwnerID:     owner.ID,
		CaretakerID: caretaker.ID,
		Status:      domain.CareRequestPending,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Notes:       input.Notes,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventCareRequestCreated, request.ID, owner, events.CareRequestCreatedPayload{
		PetID:       request.PetID,
		CaretakerID: request.CaretakerID,
		StartDate:   request.StartDate,
		EndDate:     request.EndDate,
	})

	return request, nil
}

// ListFor returns the requests visible to the caller: owners see their own,
// caretakers the ones assigned to them, admins everything.
func (s *CareRequestService) ListFor(ctx context.Context, caller *domain.User) ([]*domain.CareRequest, error) {
	switch caller.Role {
	case domain.RoleOwner:
		return s.requests.ListByOwner(ctx, caller.ID)
	case domain.RoleCaretaker:
		return s.requests.ListByCaretaker(ctx, caller.ID)
	case domain.RoleAdmin:
		return s.requests.ListAll(ctx)
	}
	return nil, apperrors.NewForbidden("unknown role")
}

// ListAll returns every request for the admin console.
func (s *CareRequestService) ListAll(ctx context.Context) ([]*domain.CareRequest, error) {
	return s.requests.ListAll(ctx)
}

// UpdateStatus transitions a request. Caretakers may only act on requests
// assigned to them; owners may not change status at all.
func (s *CareRequestService) UpdateStatus(ctx context.Context, caller *domain.User, requestID string, status domain.CareRequestStatus) (*domain.CareRequest, error) {
	if !domain.ValidCareRequestStatus(status) {
		return nil, apperrors.NewValidationError("unknown status", nil)
	}

	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("care request", nil)
		}
		return nil, err
	}

	switch caller.Role {
	case domain.RoleCaretaker:
		if request.CaretakerID != caller.ID {
			return nil, apperrors.NewForbidden("request not assigned to caller")
		}
	case domain.RoleAdmin:
		// admins may resolve any request
	default:
		return nil, apperrors.NewForbidden("owners cannot change request status")
	}

	if !request.Status.CanTransition(status) {
		return nil, apperrors.NewConflict("invalid status transition", map[string]any{
			"from": request.Status,
			"to":   status,
		})
	}

	oldStatus := request.Status
	if err := s.requests.UpdateStatus(ctx, request.ID, status); err != nil {
		return nil, err
	}
	request.Status = status

	s.publish(ctx, events.EventCareRequestStatusChanged, request.ID, caller, events.CareRequestStatusChangedPayload{
		OldStatus: oldStatus,
		NewStatus: status,
	})

	return request, nil
}

// GetByID fetches a single request, restricted to its participants and
// admins.
func (s *CareRequestService) GetByID(ctx context.Context, caller *domain.User, requestID string) (*domain.CareRequest, error) {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("care request", nil)
		}
		return nil, err
	}
	if caller.Role != domain.RoleAdmin && request.OwnerID != caller.ID && request.CaretakerID != caller.ID {
		return nil, apperrors.NewForbidden("not a participant")
	}
	return request, nil
}

func (s *CareRequestService) publish(ctx context.Context, eventType events.EventType, subjectID string, actor *domain.User, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Actor:     events.Actor{UserID: actor.ID, Role: actor.Role},
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
