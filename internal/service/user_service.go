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

// ProfileUpdateInput carries the self-service editable fields. Email, role,
// password and the verified flag are deliberately absent.
type ProfileUpdateInput struct {
	Name            *string
	Phone           *string
	Address         *string
	Pincode         *string
	ProfilePhoto    *string
	Specialization  *string
	Experience      *string
	ServiceCharge   *float64
	CompanyName     *string
	CompanyIDNumber *string
}

// UserService covers profile management, the caretaker directory and admin
// account operations.
type UserService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository, dispatcher events.Dispatcher) *UserService {
	return &UserService{users: users, dispatcher: dispatcher}
}

// GetByID fetches a single account.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies the caller's own profile changes.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, input ProfileUpdateInput) (*domain.User, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyString(&user.Name, input.Name)
	applyString(&user.Phone, input.Phone)
	applyString(&user.Address, input.Address)
	applyString(&user.Pincode, input.Pincode)
	applyString(&user.Profile.ProfilePhoto, input.ProfilePhoto)
	applyString(&user.Profile.Specialization, input.Specialization)
	applyString(&user.Profile.Experience, input.Experience)
	applyString(&user.Profile.CompanyName, input.CompanyName)
	applyString(&user.Profile.CompanyIDNumber, input.CompanyIDNumber)
	if input.ServiceCharge != nil {
		user.Profile.ServiceCharge = input.ServiceCharge
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListCaretakers returns the public directory of verified caretakers.
func (s *UserService) ListCaretakers(ctx context.Context) ([]*domain.User, error) {
	return s.users.ListVerifiedByRole(ctx, domain.RoleCaretaker)
}

// ListAll returns every account for the admin console.
func (s *UserService) ListAll(ctx context.Context) ([]*domain.User, error) {
	return s.users.ListAll(ctx)
}

// SetVerified flips an account's verified flag and announces caretaker
// approvals.
func (s *UserService) SetVerified(ctx context.Context, actor *domain.User, userID string, verified bool) (*domain.User, error) {
	user, err := s.users.SetVerified(ctx, userID, verified)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}

	if user.Role == domain.RoleCaretaker && s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventCaretakerVerified,
			SubjectID: user.ID,
			Actor:     events.Actor{UserID: actor.ID, Role: actor.Role},
			Timestamp: time.Now(),
			Payload:   events.CaretakerVerifiedPayload{Verified: verified},
		})
	}
	return user, nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
