package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NatanielEscudero/QuickService/controllers/client"
	"github.com/NatanielEscudero/QuickService/controllers/worker"
	"github.com/NatanielEscudero/QuickService/middleware"
)

// SetupRequestRoutes configures all service request related routes
func SetupRequestRoutes(app *fiber.App) {
	requests := app.Group("/requests", middleware.Protected())
	requests.Post("/", client.ContactWorker)
	requests.Get("/mine", client.GetMyRequests)
	requests.Get("/worker-view", middleware.RequireRole("worker", "admin"), worker.GetWorkerRequests)
	requests.Put("/:id/status", middleware.RequireRole("worker", "admin"), worker.UpdateRequestStatus)
	requests.Put("/:id/accept", middleware.RequireRole("worker", "admin"), worker.AcceptRequest)
}
