package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the role dashboards behind the gate. The frontend
// renders the actual views; these endpoints confirm the gate verdict and name
// the section the client should load.
type DashboardHandler struct{}

// NewDashboardHandler returns a new handler instance.
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Admin handles GET /dashboard/admin.
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"dashboard": "admin"})
}

// Caretaker handles GET /dashboard/zoo-manager.
func (h *DashboardHandler) Caretaker(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"dashboard": "zoo-manager"})
}

// Owner handles GET /dashboard/user.
func (h *DashboardHandler) Owner(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"dashboard": "user"})
}

// Login handles GET /login, the landing spot for gate denials. The redirect
// query parameter is echoed so the client can resume after authentication.
func (h *DashboardHandler) Login(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"page":     "login",
		"redirect": c.Query("redirect"),
	})
}
