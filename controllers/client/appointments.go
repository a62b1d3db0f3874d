package client

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NatanielEscudero/QuickService/db"
	"github.com/NatanielEscudero/QuickService/models"
	"github.com/NatanielEscudero/QuickService/utils"
)

// CreateAppointment books a fixed date/time engagement directly, without
// going through a service request.
func CreateAppointment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var input struct {
		WorkerID            uint   `json:"worker_id"`
		ServiceType         string `json:"service_type"`
		Description         string `json:"description"`
		ScheduledDate       string `json:"scheduled_date"`
		ScheduledTime       string `json:"scheduled_time"`
		Address             string `json:"address"`
		ContactPhone        string `json:"contact_phone"`
		SpecialInstructions string `json:"special_instructions"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.WorkerID == 0 || input.ServiceType == "" ||
		input.ScheduledDate == "" || input.ScheduledTime == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "worker_id, service_type, scheduled_date and scheduled_time are required",
		})
	}

	if !utils.ValidDate(input.ScheduledDate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "scheduled_date must be YYYY-MM-DD",
		})
	}
	scheduledTime, err := utils.NormalizeTime(input.ScheduledTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "scheduled_time must be HH:MM or HH:MM:SS",
		})
	}

	var worker models.User
	if db.DB.Where("id = ? AND role = ?", input.WorkerID, models.RoleWorker).
		First(&worker).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Worker not found",
		})
	}

	appointment := models.Appointment{
		ClientID:            userID,
		WorkerID:            input.WorkerID,
		ServiceType:         input.ServiceType,
		Description:         input.Description,
		ScheduledDate:       input.ScheduledDate,
		ScheduledTime:       scheduledTime,
		Address:             input.Address,
		ContactPhone:        input.ContactPhone,
		SpecialInstructions: input.SpecialInstructions,
	}

	if err := db.DB.Create(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}

	db.DB.Preload("Worker").First(&appointment, appointment.ID)
	appointment.Worker.Password = ""

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Appointment scheduled successfully",
		"appointment": appointment,
	})
}

// GetMyAppointments returns every appointment where the caller is client or
// worker, most recent schedule first.
func GetMyAppointments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var appointments []models.Appointment
	if err := db.DB.
		Preload("Client").
		Preload("Worker").
		Where("client_id = ? OR worker_id = ?", userID, userID).
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
		appointments[i].Worker.Password = ""
	}

	return c.JSON(fiber.Map{
		"appointments": appointments,
		"count":        len(appointments),
	})
}
