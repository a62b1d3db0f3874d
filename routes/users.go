package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NatanielEscudero/QuickService/controllers"
	"github.com/NatanielEscudero/QuickService/controllers/client"
	"github.com/NatanielEscudero/QuickService/middleware"
)

// SetupUserRoutes configures profile and public worker directory routes
func SetupUserRoutes(app *fiber.App) {
	users := app.Group("/users", middleware.Protected())
	users.Get("/profile", client.GetProfile)
	users.Put("/profile", client.UpdateProfile)
	users.Put("/password", client.UpdatePassword)
	users.Put("/avatar", client.UploadAvatar)
	users.Put("/role", controllers.UpdateRole)

	// Public worker directory
	workers := app.Group("/workers")
	workers.Get("/", client.ListWorkers)
	workers.Get("/:id", client.GetWorker)
}
