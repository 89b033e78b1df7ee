package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spec-kit/sla-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/sla-dashboard/internal/auth"
	"github.com/spec-kit/sla-dashboard/internal/domain"
	"github.com/spec-kit/sla-dashboard/internal/observability"
)

// RouteConfig bundles dependencies for route registration. Admin routes are
// only mounted when both Admin and AuthMiddleware are set.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Sla            *handlers.SlaHandler
	Advisor        *handlers.AdvisorHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/healthz", cfg.Health.Healthz)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Metrics.Registry(), promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")
	api.Get("/kpi/summary", cfg.Sla.KPISummary)
	api.Get("/tickets", cfg.Sla.ListTickets)
	api.Get("/reminders", cfg.Sla.Reminders)
	api.Get("/heatmap", cfg.Sla.Heatmap)
	api.Get("/risk", cfg.Sla.Risk)
	api.Get("/datacenters", cfg.Sla.ListDatacenters)
	api.Get("/datacenters/:dcId/tickets", cfg.Sla.DatacenterTickets)

	if cfg.Advisor != nil {
		api.Get("/summarize", cfg.Advisor.Summarize)
	}

	if cfg.Admin == nil || cfg.AuthMiddleware == nil {
		return
	}
	admin := api.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireSubject(domain.SubjectTypeOperator))
	admin.Post("/import", cfg.Admin.Import)
	if cfg.Advisor != nil {
		admin.Get("/advisor-runs", cfg.Advisor.Runs)
	}
}
