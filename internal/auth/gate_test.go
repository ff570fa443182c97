package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/petcare-service/internal/domain"
)

func gateApp(t *testing.T, secret string) (*fiber.App, *TokenManager) {
	t.Helper()

	tm := NewTokenManager(secret, time.Hour)
	gate := NewDashboardGate(tm, DefaultRoutePolicy(), zap.NewNop())

	app := fiber.New()
	dashboard := app.Group("/dashboard", gate.Handle)
	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	dashboard.Get("/admin", ok)
	dashboard.Get("/admin/users", ok)
	dashboard.Get("/zoo-manager", ok)
	dashboard.Get("/user", ok)
	dashboard.Get("/user/profile", ok)

	return app, tm
}

func dashboardRequest(path, cookie string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: cookie})
	}
	return req
}

func assertDenied(t *testing.T, resp *http.Response, requestedPath string) {
	t.Helper()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?redirect="+requestedPath, mustUnescapeLocation(t, resp))

	// The stale cookie must be cleared so it is not retried.
	for _, c := range resp.Cookies() {
		if c.Name == CookieName {
			assert.Empty(t, c.Value)
			assert.LessOrEqual(t, c.MaxAge, 0)
			return
		}
	}
	t.Fatalf("expected cleared %s cookie on denial", CookieName)
}

func mustUnescapeLocation(t *testing.T, resp *http.Response) string {
	t.Helper()
	loc, err := resp.Location()
	require.NoError(t, err)
	if loc.RawQuery == "" {
		return loc.Path
	}
	return loc.Path + "?redirect=" + loc.Query().Get("redirect")
}

func TestGateDeniesWithoutCredential(t *testing.T) {
	app, _ := gateApp(t, testSecret)

	resp, err := app.Test(dashboardRequest("/dashboard/admin", ""))
	require.NoError(t, err)
	assertDenied(t, resp, "/dashboard/admin")
}

func TestGateDeniesInvalidCredential(t *testing.T) {
	app, _ := gateApp(t, testSecret)

	resp, err := app.Test(dashboardRequest("/dashboard/user", "not-a-token"))
	require.NoError(t, err)
	assertDenied(t, resp, "/dashboard/user")
}

func TestGateDeniesForgedCredential(t *testing.T) {
	app, _ := gateApp(t, testSecret)

	forger := NewTokenManager("other-secret", time.Hour)
	token, _, err := forger.Issue("user-1", "someone@example.com", domain.RoleAdmin)
	require.NoError(t, err)

	resp, err := app.Test(dashboardRequest("/dashboard/admin", token))
	require.NoError(t, err)
	assertDenied(t, resp, "/dashboard/admin")
}

func TestGateRoleMatrix(t *testing.T) {
	app, tm := gateApp(t, testSecret)

	ownerToken, _, err := tm.Issue("owner-1", "owner@example.com", domain.RoleOwner)
	require.NoError(t, err)

	// Owner allowed on the owner dashboard.
	resp, err := app.Test(dashboardRequest("/dashboard/user/profile", ownerToken))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Same credential denied on the admin dashboard.
	resp, err = app.Test(dashboardRequest("/dashboard/admin", ownerToken))
	require.NoError(t, err)
	assertDenied(t, resp, "/dashboard/admin")

	adminToken, _, err := tm.Issue("admin-1", "admin@example.com", domain.RoleAdmin)
	require.NoError(t, err)

	resp, err = app.Test(dashboardRequest("/dashboard/admin/users", adminToken))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(dashboardRequest("/dashboard/zoo-manager", adminToken))
	require.NoError(t, err)
	assertDenied(t, resp, "/dashboard/zoo-manager")
}

func TestGateCaretakerEndToEnd(t *testing.T) {
	app, tm := gateApp(t, testSecret)

	token, _, err := tm.Issue("caretaker-1", "caretaker@example.com", domain.RoleCaretaker)
	require.NoError(t, err)

	resp, err := app.Test(dashboardRequest("/dashboard/zoo-manager", token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(dashboardRequest("/dashboard/admin", token))
	require.NoError(t, err)
	assertDenied(t, resp, "/dashboard/admin")
}

func TestGateFailsClosedWithoutSecret(t *testing.T) {
	app, _ := gateApp(t, "")

	// Even a well-formed credential signed elsewhere is denied.
	issuer := NewTokenManager(testSecret, time.Hour)
	token, _, err := issuer.Issue("admin-1", "admin@example.com", domain.RoleAdmin)
	require.NoError(t, err)

	for _, path := range []string{"/dashboard/admin", "/dashboard/zoo-manager", "/dashboard/user"} {
		resp, err := app.Test(dashboardRequest(path, token))
		require.NoError(t, err)
		assertDenied(t, resp, path)
	}
}

func TestGateExpiredCredential(t *testing.T) {
	app, _ := gateApp(t, testSecret)

	expired := signClaims(t, testSecret, jwt.SigningMethodHS256,
		claimsFor("owner-1", "owner@example.com", domain.RoleOwner, -time.Minute))

	resp, err := app.Test(dashboardRequest("/dashboard/user", expired))
	require.NoError(t, err)
	assertDenied(t, resp, "/dashboard/user")
}
