package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NatanielEscudero/QuickService/controllers/client"
	"github.com/NatanielEscudero/QuickService/controllers/worker"
	"github.com/NatanielEscudero/QuickService/middleware"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointments := app.Group("/appointments", middleware.Protected())
	appointments.Post("/", client.CreateAppointment)
	appointments.Get("/mine", client.GetMyAppointments)
	appointments.Get("/worker-view", middleware.RequireRole("worker", "admin"), worker.GetWorkerAppointments)
	appointments.Put("/:id/status", worker.UpdateAppointmentStatus)
	appointments.Put("/:id/price", middleware.RequireRole("worker", "admin"), worker.UpdateAppointmentPrice)
}
