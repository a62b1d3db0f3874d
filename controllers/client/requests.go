package client

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NatanielEscudero/QuickService/db"
	"github.com/NatanielEscudero/QuickService/models"
	"github.com/NatanielEscudero/QuickService/utils"
)

// ContactWorker creates a "contact now" service request directed at one
// worker. Date, time and budget are optional; urgency defaults to medium.
func ContactWorker(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var input struct {
		WorkerID       uint     `json:"worker_id"`
		ServiceType    string   `json:"service_type"`
		Urgency        string   `json:"urgency"`
		Description    string   `json:"description"`
		BudgetEstimate *float64 `json:"budget_estimate"`
		PreferredDate  *string  `json:"preferred_date"`
		PreferredTime  *string  `json:"preferred_time"`
		ContactMethod  string   `json:"contact_method"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.WorkerID == 0 || input.ServiceType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "worker_id and service_type are required",
		})
	}

	// The target must be an existing user with the worker role
	var worker models.User
	if db.DB.Where("id = ? AND role = ?", input.WorkerID, models.RoleWorker).
		First(&worker).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Worker not found",
		})
	}

	if input.PreferredDate != nil && *input.PreferredDate != "" && !utils.ValidDate(*input.PreferredDate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "preferred_date must be YYYY-MM-DD",
		})
	}
	if input.PreferredTime != nil && *input.PreferredTime != "" {
		normalized, err := utils.NormalizeTime(*input.PreferredTime)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "preferred_time must be HH:MM or HH:MM:SS",
			})
		}
		input.PreferredTime = &normalized
	}

	phone, _ := c.Locals("phone").(string)

	request := models.ServiceRequest{
		ClientID:       userID,
		WorkerID:       input.WorkerID,
		ServiceType:    input.ServiceType,
		Urgency:        models.Urgency(input.Urgency),
		Description:    input.Description,
		BudgetEstimate: input.BudgetEstimate,
		PreferredDate:  input.PreferredDate,
		PreferredTime:  input.PreferredTime,
		ContactMethod:  input.ContactMethod,
		ClientPhone:    phone,
	}

	if err := db.DB.Create(&request).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create service request",
			Error:   err.Error(),
		})
	}

	// Return the saved request with the worker joined in
	db.DB.Preload("Worker").First(&request, request.ID)
	request.Worker.Password = ""

	return c.JSON(fiber.Map{
		"message": "Request sent successfully",
		"request": request,
	})
}

// GetMyRequests returns every request where the caller is client or worker,
// newest first.
func GetMyRequests(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var requests []models.ServiceRequest
	if err := db.DB.
		Preload("Client").
		Preload("Worker").
		Where("client_id = ? OR worker_id = ?", userID, userID).
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch service requests",
			Error:   err.Error(),
		})
	}

	for i := range requests {
		requests[i].Client.Password = ""
		requests[i].Worker.Password = ""
	}

	return c.JSON(fiber.Map{
		"requests": requests,
		"count":    len(requests),
	})
}
