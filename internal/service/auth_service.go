package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/petcare-service/internal/auth"
	"github.com/spec-kit/petcare-service/internal/config"
	"github.com/spec-kit/petcare-service/internal/domain"
	"github.com/spec-kit/petcare-service/internal/repository"
	apperrors "github.com/spec-kit/petcare-service/pkg/util"
)

// RegisterInput carries everything a new account may provide. Caretaker
// profile fields are ignored for owners.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	Role            domain.Role
	Phone           string
	Address         string
	Pincode         string
	ProfilePhoto    string
	Specialization  string
	Experience      string
	ServiceCharge   *float64
	CompanyName     string
	CompanyIDNumber string
}

// LoginResult bundles the outcome of a successful login.
type LoginResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
	Redirect  string
}

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	limiter    *auth.LoginLimiter
	bcryptCost int
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo repository.UserRepository
	Limiter  *auth.LoginLimiter
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		limiter:    deps.Limiter,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new owner or caretaker account. Owners are trusted
// immediately; caretakers wait for admin verification. Admin accounts are
// seeded out of band and never minted here.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if input.Role == "" {
		input.Role = domain.RoleOwner
	}
	if input.Role != domain.RoleOwner && input.Role != domain.RoleCaretaker {
		return nil, apperrors.NewValidationError("role must be owner or caretaker", nil)
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.NewConflict("email already registered", nil)
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		Phone:        input.Phone,
		Address:      input.Address,
		Pincode:      input.Pincode,
		Verified:     input.Role == domain.RoleOwner,
	}
	if input.Role == domain.RoleCaretaker {
		user.Profile = domain.CaretakerProfile{
			ProfilePhoto:    input.ProfilePhoto,
			Specialization:  input.Specialization,
			Experience:      input.Experience,
			ServiceCharge:   input.ServiceCharge,
			CompanyName:     input.CompanyName,
			CompanyIDNumber: input.CompanyIDNumber,
		}
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates by email and password and issues the session
// credential. redirectHint, when non-empty, becomes the post-login
// destination instead of the role's default dashboard.
func (s *AuthService) Login(ctx context.Context, email, password, redirectHint string) (*LoginResult, error) {
	if !s.limiter.Allow(ctx, email) {
		return nil, apperrors.NewTooManyRequests("too many login attempts")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	if user.Role == domain.RoleCaretaker && !user.Verified {
		return nil, apperrors.NewForbidden("account pending verification")
	}

	token, expiresAt, err := s.tokenMgr.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		// Covers the missing-secret case; the client sees a generic failure.
		return nil, apperrors.NewInternalError(err)
	}

	s.limiter.Reset(ctx, email)

	redirect := redirectHint
	if redirect == "" {
		redirect = auth.DefaultDashboard(user.Role)
	}

	return &LoginResult{User: user, Token: token, ExpiresAt: expiresAt, Redirect: redirect}, nil
}

// VerifyPassword re-checks credentials for an already authenticated session,
// backing the re-auth modal in front of sensitive actions.
func (s *AuthService) VerifyPassword(ctx context.Context, email, password string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("user", nil)
		}
		return err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return apperrors.NewUnauthorized("invalid password")
	}
	return nil
}

// TokenManager exposes the underlying token manager for the gate and the API
// middleware.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
