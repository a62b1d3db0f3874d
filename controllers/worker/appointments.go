package worker

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/NatanielEscudero/QuickService/db"
	"github.com/NatanielEscudero/QuickService/models"
	"github.com/NatanielEscudero/QuickService/utils"
)

// GetWorkerAppointments returns appointments assigned to the caller as
// worker, most recent schedule first.
func GetWorkerAppointments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var appointments []models.Appointment
	if err := db.DB.
		Preload("Client").
		Where("worker_id = ?", userID).
		Order("scheduled_date desc").
		Order("scheduled_time desc").
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}

	for i := range appointments {
		appointments[i].Client.Password = ""
	}

	return c.JSON(fiber.Map{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

// UpdateAppointmentStatus moves an appointment along its status machine.
// Either party on the row may transition it.
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	appointmentID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment ID",
		})
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	newStatus := models.AppointmentStatus(input.Status)
	if !models.ValidAppointmentStatus(newStatus) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status. Must be 'pending', 'confirmed', 'in_progress', 'completed' or 'cancelled'.",
		})
	}

	var appointment models.Appointment
	if db.DB.Where("id = ? AND (client_id = ? OR worker_id = ?)", appointmentID, userID, userID).
		First(&appointment).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}

	if err := appointment.UpdateStatus(db.DB, newStatus); err != nil {
		if errors.Is(err, models.ErrIllegalTransition) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Earnings change whenever an appointment completes or leaves the
	// in-flight set
	InvalidateStatsCache(appointment.WorkerID)

	return c.JSON(fiber.Map{
		"message": "Status updated successfully",
		"status":  appointment.Status,
	})
}

// UpdateAppointmentPrice sets total_cost. Only the assigned worker may price
// an engagement; the price stays mutable after completion.
func UpdateAppointmentPrice(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	appointmentID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment ID",
		})
	}

	var input struct {
		TotalCost *float64 `json:"total_cost"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if input.TotalCost == nil || *input.TotalCost < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "total_cost must be a non-negative number",
		})
	}

	var appointment models.Appointment
	if db.DB.Where("id = ? AND worker_id = ?", appointmentID, userID).
		First(&appointment).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found or you don't have permission",
		})
	}

	if err := db.DB.Model(&appointment).Update("total_cost", *input.TotalCost).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update price",
		})
	}

	InvalidateStatsCache(appointment.WorkerID)

	return c.JSON(fiber.Map{
		"message":        "Price updated successfully",
		"total_cost":     *input.TotalCost,
		"appointment_id": appointment.ID,
	})
}
