package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NatanielEscudero/QuickService/controllers/worker"
	"github.com/NatanielEscudero/QuickService/middleware"
)

// SetupWorkerRoutes configures availability and earnings routes
func SetupWorkerRoutes(app *fiber.App) {
	availability := app.Group("/availability", middleware.Protected(), middleware.RequireRole("worker", "admin"))
	availability.Get("/", worker.GetAvailability)
	availability.Put("/", worker.SaveAvailability)
	availability.Put("/status", worker.SetAvailabilityStatus)
	availability.Get("/stats", worker.GetAvailabilityStats)

	earnings := app.Group("/earnings", middleware.Protected(), middleware.RequireRole("worker", "admin"))
	earnings.Get("/", worker.GetEarnings)
	earnings.Get("/stats", worker.GetEarningsStats)
}
