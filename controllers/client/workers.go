package client

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/NatanielEscudero/QuickService/db"
	"github.com/NatanielEscudero/QuickService/models"
)

// workerListing is the public shape of a worker in directory results.
type workerListing struct {
	ID           uint                      `json:"id"`
	Name         string                    `json:"name"`
	AvatarURL    string                    `json:"avatar_url"`
	Profession   string                    `json:"profession"`
	Description  string                    `json:"description"`
	Availability models.AvailabilityStatus `json:"availability"`
	Rating       float64                   `json:"rating"`
}

// ListWorkers returns the public worker directory. available=true narrows the
// list to workers whose tri-state status is 'available'; already-accepted
// engagements are unaffected.
func ListWorkers(c *fiber.Ctx) error {
	query := db.DB.Table("users").
		Select("users.id, users.name, users.avatar_url, worker_profiles.profession, worker_profiles.description, worker_profiles.availability, worker_profiles.rating").
		Joins("INNER JOIN worker_profiles ON worker_profiles.user_id = users.id").
		Where("users.role = ?", models.RoleWorker)

	if profession := c.Query("profession"); profession != "" {
		query = query.Where("worker_profiles.profession = ?", profession)
	}
	if minRating := c.Query("min_rating"); minRating != "" {
		if rating, err := strconv.ParseFloat(minRating, 64); err == nil {
			query = query.Where("worker_profiles.rating >= ?", rating)
		}
	}
	if c.Query("available") == "true" {
		query = query.Where("worker_profiles.availability = ?", models.StatusAvailable)
	}

	var workers []workerListing
	if err := query.Order("worker_profiles.rating desc").Scan(&workers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch workers",
		})
	}

	return c.JSON(fiber.Map{
		"workers": workers,
		"count":   len(workers),
	})
}

// GetWorker returns one worker's public profile.
func GetWorker(c *fiber.Ctx) error {
	id := c.Params("id")

	var worker workerListing
	err := db.DB.Table("users").
		Select("users.id, users.name, users.avatar_url, worker_profiles.profession, worker_profiles.description, worker_profiles.availability, worker_profiles.rating").
		Joins("INNER JOIN worker_profiles ON worker_profiles.user_id = users.id").
		Where("users.id = ? AND users.role = ?", id, models.RoleWorker).
		Scan(&worker).Error
	if err != nil || worker.ID == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Worker not found",
		})
	}

	return c.JSON(fiber.Map{"worker": worker})
}
