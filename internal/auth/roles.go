package auth

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/petcare-service/internal/domain"
)

// DashboardPrefix is the root under which every route is gate-protected.
const DashboardPrefix = "/dashboard"

// PolicyEntry maps a path prefix to the role allowed under it.
type PolicyEntry struct {
	Prefix string
	Role   domain.Role
}

// RoutePolicy resolves which role a dashboard path requires. Entries are kept
// sorted longest-prefix-first so the most specific rule wins.
type RoutePolicy struct {
	entries []PolicyEntry
}

// NewRoutePolicy builds a policy from the given entries.
func NewRoutePolicy(entries ...PolicyEntry) *RoutePolicy {
	sorted := append([]PolicyEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Prefix) > len(sorted[j].Prefix)
	})
	return &RoutePolicy{entries: sorted}
}

// DefaultRoutePolicy returns the dashboard policy table. The caretaker
// dashboard keeps its historical zoo-manager path.
func DefaultRoutePolicy() *RoutePolicy {
	return NewRoutePolicy(
		PolicyEntry{Prefix: "/dashboard/admin", Role: domain.RoleAdmin},
		PolicyEntry{Prefix: "/dashboard/zoo-manager", Role: domain.RoleCaretaker},
		PolicyEntry{Prefix: "/dashboard/user", Role: domain.RoleOwner},
	)
}

// Resolve returns the role required for path. ok is false when no policy
// entry covers the path.
func (p *RoutePolicy) Resolve(path string) (domain.Role, bool) {
	for _, entry := range p.entries {
		if strings.HasPrefix(path, entry.Prefix) {
			return entry.Role, true
		}
	}
	return "", false
}

// DefaultDashboard returns the landing path for a role after login.
func DefaultDashboard(role domain.Role) string {
	switch role {
	case domain.RoleAdmin:
		return "/dashboard/admin"
	case domain.RoleCaretaker:
		return "/dashboard/zoo-manager"
	default:
		return "/dashboard/user"
	}
}

// RequireRole ensures the authenticated principal holds one of the allowed
// roles. Runs after the auth middleware has loaded the principal.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.User.Role]; !exists {
			return fiber.NewError(http.StatusForbidden, "insufficient role")
		}
		return c.Next()
	}
}
