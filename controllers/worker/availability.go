package worker

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/NatanielEscudero/QuickService/db"
	"github.com/NatanielEscudero/QuickService/models"
	"github.com/NatanielEscudero/QuickService/utils"
)

// GetAvailability returns the caller's tri-state status, weekly schedule and
// coverage radius. When no schedule has been saved yet the default week is
// returned without being persisted.
func GetAvailability(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	snapshot, err := models.GetAvailabilitySnapshot(db.DB, userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Worker profile not found",
		})
	}

	return c.JSON(snapshot)
}

type slotInput struct {
	Day       models.DayOfWeek `json:"day"`
	Enabled   bool             `json:"enabled"`
	StartTime string           `json:"start_time"`
	EndTime   string           `json:"end_time"`
}

// SaveAvailability replaces the weekly schedule. The save is idempotent: each
// canonical day is upserted, so repeating the same payload leaves exactly 7
// rows.
func SaveAvailability(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var input struct {
		ImmediateService bool        `json:"immediate_service"`
		CoverageRadius   int         `json:"coverage_radius"`
		TimeSlots        []slotInput `json:"time_slots"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	slots := make([]models.AvailabilitySlot, 0, len(input.TimeSlots))
	for _, s := range input.TimeSlots {
		slots = append(slots, models.AvailabilitySlot{
			WorkerID:  userID,
			DayOfWeek: s.Day,
			Enabled:   s.Enabled,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}

	if err := models.SaveWeeklySchedule(db.DB, userID, slots, input.CoverageRadius, input.ImmediateService); err != nil {
		if errors.Is(err, models.ErrScheduleIncomplete) || errors.Is(err, models.ErrBadClock) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save availability",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Availability updated successfully",
		"availability": fiber.Map{
			"immediate_service": input.ImmediateService,
			"coverage_radius":   input.CoverageRadius,
			"time_slots":        input.TimeSlots,
		},
	})
}

// SetAvailabilityStatus sets the tri-state visibility flag. It gates how the
// worker shows up in the directory only; in-flight engagements are untouched.
func SetAvailabilityStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var input struct {
		Availability models.AvailabilityStatus `json:"availability"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if !models.ValidAvailability(input.Availability) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Availability must be 'available', 'busy' or 'offline'",
		})
	}

	res := db.DB.Model(&models.WorkerProfile{}).
		Where("user_id = ?", userID).
		Update("availability", input.Availability)
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update availability",
		})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Worker profile not found",
		})
	}

	return c.JSON(fiber.Map{
		"message":      "Availability updated successfully",
		"availability": input.Availability,
	})
}

// GetAvailabilityStats summarizes the saved weekly schedule.
func GetAvailabilityStats(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	stats, err := models.GetScheduleStats(db.DB, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to compute availability stats",
			Error:   err.Error(),
		})
	}

	return c.JSON(stats)
}
