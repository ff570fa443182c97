package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/petcare-service/internal/api/http/handlers"
	"github.com/spec-kit/petcare-service/internal/auth"
	"github.com/spec-kit/petcare-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health       *handlers.HealthHandler
	Auth         *handlers.AuthHandler
	Pets         *handlers.PetsHandler
	CareRequests *handlers.CareRequestsHandler
	Activities   *handlers.ActivitiesHandler
	Caretakers   *handlers.CaretakersHandler
	Profile      *handlers.ProfileHandler
	Admin        *handlers.AdminHandler
	Dashboard    *handlers.DashboardHandler

	Gate           *auth.DashboardGate
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. The dashboard gate runs before any
// /dashboard handler; API routes carry their own cookie middleware.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/login", cfg.Dashboard.Login)

	dashboard := app.Group("/dashboard", cfg.Gate.Handle)
	dashboard.Get("/admin", cfg.Dashboard.Admin)
	dashboard.Get("/zoo-manager", cfg.Dashboard.Caretaker)
	dashboard.Get("/user", cfg.Dashboard.Owner)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/logout", cfg.Auth.LogoutRedirect)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)
	authGroup.Post("/verify", cfg.AuthMiddleware.Handle, cfg.Auth.Verify)

	pets := api.Group("/pets", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleOwner))
	pets.Get("/", cfg.Pets.List)
	pets.Post("/", cfg.Pets.Create)

	requests := api.Group("/care-requests", cfg.AuthMiddleware.Handle)
	requests.Get("/", cfg.CareRequests.List)
	requests.Post("/", auth.RequireRole(domain.RoleOwner), cfg.CareRequests.Create)
	requests.Patch("/:id", auth.RequireRole(domain.RoleCaretaker, domain.RoleAdmin), cfg.CareRequests.UpdateStatus)

	activities := api.Group("/activities", cfg.AuthMiddleware.Handle)
	activities.Get("/", cfg.Activities.List)
	activities.Post("/", auth.RequireRole(domain.RoleCaretaker), cfg.Activities.Create)

	api.Get("/caretakers", cfg.AuthMiddleware.Handle, cfg.Caretakers.List)
	api.Put("/user/update", cfg.AuthMiddleware.Handle, cfg.Profile.Update)

	admin := api.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin))
	admin.Get("/users", cfg.Admin.ListUsers)
	admin.Patch("/users/:id", cfg.Admin.VerifyUser)
	admin.Get("/care-requests", cfg.Admin.ListCareRequests)
}
