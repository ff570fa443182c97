package auth

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DashboardGate intercepts every request under the dashboard root before any
// handler runs: it pulls the credential from the cookie, validates it and
// enforces the route policy. Anything short of a full match redirects to the
// login page with the original path preserved.
type DashboardGate struct {
	tokens *TokenManager
	policy *RoutePolicy
	logger *zap.Logger
}

// NewDashboardGate constructs the gate.
func NewDashboardGate(tokens *TokenManager, policy *RoutePolicy, logger *zap.Logger) *DashboardGate {
	if policy == nil {
		policy = DefaultRoutePolicy()
	}
	return &DashboardGate{tokens: tokens, policy: policy, logger: logger}
}

// Handle decides allow or deny for the current request. The decision depends
// only on the request's own cookie and path, so concurrent requests never
// interact.
func (g *DashboardGate) Handle(c *fiber.Ctx) error {
	path := c.Path()
	if !strings.HasPrefix(path, DashboardPrefix) {
		return c.Next()
	}

	token := c.Cookies(CookieName)
	if token == "" {
		return g.deny(c, path, "no credential")
	}

	payload, err := g.tokens.Validate(token)
	if err != nil {
		// Cause intentionally not surfaced to the client.
		g.logger.Debug("dashboard credential rejected", zap.String("path", path), zap.Error(err))
		return g.deny(c, path, "invalid credential")
	}

	required, ok := g.policy.Resolve(path)
	if !ok || payload.Role != required {
		return g.deny(c, path, "role mismatch")
	}

	return c.Next()
}

// deny clears the stale cookie and redirects to login, carrying the requested
// path so the login flow can return the user afterwards.
func (g *DashboardGate) deny(c *fiber.Ctx, path, reason string) error {
	g.logger.Info("dashboard access denied",
		zap.String("path", path),
		zap.String("reason", reason))

	ClearSessionCookie(c)
	return c.Redirect("/login?redirect="+url.QueryEscape(path), fiber.StatusFound)
}
