package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/petcare-service/internal/domain"
	apperrors "github.com/spec-kit/petcare-service/pkg/util"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) Create(ctx context.Context, user *domain.User) error { return nil }
func (r *stubUserRepo) Update(ctx context.Context, user *domain.User) error { return nil }
func (r *stubUserRepo) SetVerified(ctx context.Context, id string, verified bool) (*domain.User, error) {
	return nil, pgx.ErrNoRows
}
func (r *stubUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}
func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}
func (r *stubUserRepo) ListAll(ctx context.Context) ([]*domain.User, error) { return nil, nil }
func (r *stubUserRepo) ListVerifiedByRole(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	return nil, nil
}

func middlewareApp(t *testing.T, repo *stubUserRepo) (*fiber.App, *TokenManager) {
	t.Helper()

	tm := NewTokenManager(testSecret, time.Hour)
	mw := NewMiddleware(tm, repo)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(fiber.Map{"code": de.Code, "message": de.Message})
		},
	})
	app.Get("/api/auth/me", mw.Handle, func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		require.True(t, ok)
		return c.JSON(fiber.Map{"id": principal.User.ID, "role": principal.User.Role})
	})
	return app, tm
}

func TestMiddlewareLoadsPrincipal(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{
		"owner-1": {ID: "owner-1", Email: "owner@example.com", Role: domain.RoleOwner, Verified: true},
	}}
	app, tm := middlewareApp(t, repo)

	token, _, err := tm.Issue("owner-1", "owner@example.com", domain.RoleOwner)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddlewareRejectsMissingCookie(t *testing.T) {
	app, _ := middlewareApp(t, &stubUserRepo{users: map[string]*domain.User{}})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsInvalidCookie(t *testing.T) {
	app, _ := middlewareApp(t, &stubUserRepo{users: map[string]*domain.User{}})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-a-token"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsUnknownUser(t *testing.T) {
	app, tm := middlewareApp(t, &stubUserRepo{users: map[string]*domain.User{}})

	// Credential is valid but the account is gone.
	token, _, err := tm.Issue("deleted-user", "gone@example.com", domain.RoleOwner)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
