package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/NatanielEscudero/QuickService/cron"
	"github.com/NatanielEscudero/QuickService/db"
	"github.com/NatanielEscudero/QuickService/redis"
	"github.com/NatanielEscudero/QuickService/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("QuickService API")
	})

	routes.SetupAuthRoutes(app)
	routes.SetupUserRoutes(app)
	routes.SetupRequestRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupWorkerRoutes(app)

	cron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
