package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prospectops/zone-assignment-service/internal/delivery/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Zones       *handlers.ZoneHandler
	Assignments *handlers.AssignmentHandler
	Directory   *handlers.DirectoryHandler
	Reconciler  *handlers.ReconcilerHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api/v1")

	api.Post("/zones", cfg.Zones.CreateZone)
	api.Get("/zones", cfg.Zones.ListZones)
	api.Get("/zones/:id", cfg.Zones.GetZone)
	api.Put("/zones/:id", cfg.Zones.RenameZone)

	api.Post("/zones/:id/assignments", cfg.Assignments.AssignZone)
	api.Get("/zones/:id/assignments", cfg.Assignments.ZoneHistory)
	api.Get("/assignments", cfg.Assignments.ListAssignments)
	api.Post("/assignments/:id/stop", cfg.Assignments.StopAssignment)

	api.Get("/managers/:id/teams", cfg.Directory.ManagerTeams)
	api.Get("/teams/:id", cfg.Directory.GetTeam)
	api.Get("/commercials/:id", cfg.Directory.GetCommercial)

	api.Post("/reconciler/activate", cfg.Reconciler.ForceActivate)
	api.Post("/reconciler/deactivate", cfg.Reconciler.ForceDeactivate)
}
