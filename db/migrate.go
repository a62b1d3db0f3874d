package db

import (
	"fmt"
	"log"

	"github.com/NatanielEscudero/QuickService/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.WorkerProfile{},
		&models.AvailabilitySlot{},
		&models.ServiceRequest{},
		&models.Appointment{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
