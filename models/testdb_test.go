package models

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB returns a fresh in-memory database with the full schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbh, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := dbh.AutoMigrate(
		&User{},
		&WorkerProfile{},
		&AvailabilitySlot{},
		&ServiceRequest{},
		&Appointment{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return dbh
}

// seedUser creates a user with the given role and returns it.
func seedUser(t *testing.T, dbh *gorm.DB, name string, role Role) User {
	t.Helper()

	user := User{
		Name:  name,
		Email: name + "@example.com",
		Role:  &role,
	}
	if err := dbh.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", name, err)
	}
	return user
}

// seedWorker creates a worker user together with its profile.
func seedWorker(t *testing.T, dbh *gorm.DB, name string) User {
	t.Helper()

	user := seedUser(t, dbh, name, RoleWorker)
	profile := WorkerProfile{
		UserID:       user.ID,
		Profession:   "Plumber",
		Availability: StatusAvailable,
	}
	if err := dbh.Create(&profile).Error; err != nil {
		t.Fatalf("failed to seed worker profile for %s: %v", name, err)
	}
	return user
}
