package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	AppointmentPending    AppointmentStatus = "pending"
	AppointmentConfirmed  AppointmentStatus = "confirmed"
	AppointmentInProgress AppointmentStatus = "in_progress"
	AppointmentCompleted  AppointmentStatus = "completed"
	AppointmentCancelled  AppointmentStatus = "cancelled"
)

var ErrIllegalTransition = errors.New("status transition not allowed")

// appointmentTransitions is the legal adjacency. completed and cancelled are
// terminal.
var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentPending:    {AppointmentConfirmed, AppointmentCancelled},
	AppointmentConfirmed:  {AppointmentInProgress, AppointmentCancelled},
	AppointmentInProgress: {AppointmentCompleted},
}

// ValidAppointmentStatus reports whether the value names a status at all.
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentInProgress,
		AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

// Appointment is a concretely scheduled engagement. Cancellation is a status,
// rows are never deleted. SourceRequestID links back to the service request
// that materialized it, nil for direct bookings.
type Appointment struct {
	ID                  uint              `json:"id" gorm:"primaryKey"`
	ClientID            uint              `json:"client_id"`
	Client              User              `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	WorkerID            uint              `json:"worker_id"`
	Worker              User              `json:"worker,omitempty" gorm:"foreignKey:WorkerID"`
	ServiceType         string            `json:"service_type"`
	Description         string            `json:"description"`
	ScheduledDate       string            `json:"scheduled_date"` // "YYYY-MM-DD"
	ScheduledTime       string            `json:"scheduled_time"` // "HH:MM:SS"
	Status              AppointmentStatus `json:"status" gorm:"type:varchar(16)"`
	TotalCost           *float64          `json:"total_cost"`
	Address             string            `json:"address"`
	ContactPhone        string            `json:"contact_phone"`
	SpecialInstructions string            `json:"special_instructions"`
	SourceRequestID     *uint             `json:"source_request_id"`
	ReminderSent        bool              `json:"-"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = AppointmentPending
	}
	return nil
}

// CanTransition reports whether the adjacency table allows moving to newStatus.
func (a *Appointment) CanTransition(newStatus AppointmentStatus) bool {
	for _, next := range appointmentTransitions[a.Status] {
		if next == newStatus {
			return true
		}
	}
	return false
}

// UpdateStatus enforces the transition table and saves the row.
func (a *Appointment) UpdateStatus(tx *gorm.DB, newStatus AppointmentStatus) error {
	if !ValidAppointmentStatus(newStatus) {
		return fmt.Errorf("unknown appointment status %q", newStatus)
	}
	if a.Status == AppointmentCompleted || a.Status == AppointmentCancelled {
		return fmt.Errorf("appointment is %s: %w", a.Status, ErrIllegalTransition)
	}
	if !a.CanTransition(newStatus) {
		return fmt.Errorf("invalid transition from %s to %s: %w", a.Status, newStatus, ErrIllegalTransition)
	}

	a.Status = newStatus
	return tx.Save(a).Error
}
