package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Tickets        *handlers.TicketsHandler
	Technician     *handlers.TechnicianTicketsHandler
	Articles       *handlers.ArticlesHandler
	Reports        *handlers.ReportsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes behind role gates.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/register", cfg.Users.Register)
	app.Post("/auth/login", cfg.Users.Login)

	// Article search is available to every signed-in role.
	articles := app.Group("/articles", cfg.AuthMiddleware.Handle, auth.RequireAnyRole())
	articles.Get("", cfg.Articles.Search)

	tickets := app.Group("/tickets", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleRequester))
	tickets.Post("", cfg.Tickets.Create)
	tickets.Get("", cfg.Tickets.List)
	tickets.Get("/:id", cfg.Tickets.Get)
	tickets.Post("/:id/notes", cfg.Tickets.AddNote)

	technician := app.Group("/technician", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleTechnician))
	technician.Get("/tickets", cfg.Technician.Queue)
	technician.Get("/tickets/:id", cfg.Technician.Get)
	technician.Post("/tickets/:id/respond", cfg.Technician.Respond)
	technician.Patch("/tickets/:id/status", cfg.Technician.ChangeStatus)
	technician.Post("/tickets/:id/finalize", cfg.Technician.Finalize)
	technician.Get("/report", cfg.Technician.Report)

	// Administrators read and report; there is no admin ticket-mutation
	// route.
	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdministrator))
	admin.Get("/users", cfg.Users.List)
	admin.Get("/reports/overview", cfg.Reports.Overview)
	admin.Get("/reports/technicians/:id", cfg.Reports.Technician)
	admin.Post("/articles", cfg.Articles.Create)
}
