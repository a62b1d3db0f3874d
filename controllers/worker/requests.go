package worker

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/NatanielEscudero/QuickService/db"
	"github.com/NatanielEscudero/QuickService/models"
	"github.com/NatanielEscudero/QuickService/utils"
)

// GetWorkerRequests returns requests addressed to the caller as worker,
// newest first.
func GetWorkerRequests(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var requests []models.ServiceRequest
	if err := db.DB.
		Preload("Client").
		Where("worker_id = ?", userID).
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch service requests",
			Error:   err.Error(),
		})
	}

	for i := range requests {
		requests[i].Client.Password = ""
	}

	return c.JSON(fiber.Map{
		"requests": requests,
		"count":    len(requests),
	})
}

// UpdateRequestStatus transitions a request. Only the assigned worker may do
// this; the transition table allows pending->accepted/rejected and
// accepted->completed.
func UpdateRequestStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	requestID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request ID",
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

	newStatus := models.RequestStatus(input.Status)
	if !models.ValidRequestStatus(newStatus) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status. Must be 'pending', 'accepted', 'rejected' or 'completed'.",
		})
	}

	// Scoped to the caller: a request someone else owns is simply not found
	var request models.ServiceRequest
	if db.DB.Where("id = ? AND worker_id = ?", requestID, userID).
		First(&request).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Request not found or you don't have permission",
		})
	}

	if err := request.UpdateStatus(db.DB, newStatus); err != nil {
		if errors.Is(err, models.ErrRequestNotPending) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Status updated successfully",
		"status":  request.Status,
	})
}

// AcceptRequest accepts a pending request, optionally attaching a budget, and
// materializes the appointment in the same transaction. A concurrent second
// accept gets a conflict and no appointment.
func AcceptRequest(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	requestID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request ID",
		})
	}

	var input struct {
		BudgetAmount *float64 `json:"budget_amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	appointment, err := models.AcceptServiceRequest(db.DB, uint(requestID), userID, input.BudgetAmount)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Request not found or you don't have permission",
			})
		case errors.Is(err, models.ErrRequestNotPending):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Request has already been processed",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to accept request",
				Error:   err.Error(),
			})
		}
	}

	// Load the client for the response and the notification mail
	db.DB.Preload("Client").First(appointment, appointment.ID)
	appointment.Client.Password = ""

	if appointment.Client.Email != "" {
		go notifyAcceptance(appointment)
	}

	return c.JSON(fiber.Map{
		"message":         "Request accepted and appointment created",
		"appointment":     appointment,
		"budget_estimate": input.BudgetAmount,
	})
}

func notifyAcceptance(appointment *models.Appointment) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your service request has been accepted.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>Best regards,</p>
		<p>The QuickService Team</p>
	`, appointment.Client.Name, appointment.ServiceType,
		appointment.ScheduledDate, appointment.ScheduledTime)

	if err := utils.SendEmail(appointment.Client.Email, "Your request was accepted", body); err != nil {
		log.Printf("Failed to send acceptance email for appointment %d: %v", appointment.ID, err)
	}
}
