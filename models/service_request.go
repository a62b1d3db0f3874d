package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestAccepted  RequestStatus = "accepted"
	RequestRejected  RequestStatus = "rejected"
	RequestCompleted RequestStatus = "completed"
)

type Urgency string

const (
	UrgencyLow       Urgency = "low"
	UrgencyMedium    Urgency = "medium"
	UrgencyHigh      Urgency = "high"
	UrgencyEmergency Urgency = "emergency"
)

var (
	ErrRequestNotPending = errors.New("service request is no longer pending")
)

// requestTransitions is the only legal adjacency for request statuses.
// Completion happens through the materialized appointment's lifecycle.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestPending:  {RequestAccepted, RequestRejected},
	RequestAccepted: {RequestCompleted},
}

// ValidRequestStatus reports whether the value names a request status at all.
func ValidRequestStatus(s RequestStatus) bool {
	switch s {
	case RequestPending, RequestAccepted, RequestRejected, RequestCompleted:
		return true
	}
	return false
}

// ServiceRequest is a "contact now" ask from a client to one worker. Date,
// time and budget are all optional; an emergency request simply omits them.
type ServiceRequest struct {
	ID             uint          `json:"id" gorm:"primaryKey"`
	ClientID       uint          `json:"client_id"`
	Client         User          `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	WorkerID       uint          `json:"worker_id"`
	Worker         User          `json:"worker,omitempty" gorm:"foreignKey:WorkerID"`
	ServiceType    string        `json:"service_type"`
	Urgency        Urgency       `json:"urgency" gorm:"type:varchar(16)"`
	Description    string        `json:"description"`
	BudgetEstimate *float64      `json:"budget_estimate"`
	PreferredDate  *string       `json:"preferred_date"` // "YYYY-MM-DD"
	PreferredTime  *string       `json:"preferred_time"` // "HH:MM:SS"
	ContactMethod  string        `json:"contact_method"`
	ClientPhone    string        `json:"client_phone"`
	Status         RequestStatus `json:"status" gorm:"type:varchar(16)"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func (r *ServiceRequest) BeforeCreate(tx *gorm.DB) error {
	if r.Status == "" {
		r.Status = RequestPending
	}
	if r.Urgency == "" {
		r.Urgency = UrgencyMedium
	}
	if r.ContactMethod == "" {
		r.ContactMethod = "both"
	}
	return nil
}

// UpdateStatus moves the request along the transition table and saves it.
// Unknown values and transitions outside the table are rejected.
func (r *ServiceRequest) UpdateStatus(tx *gorm.DB, newStatus RequestStatus) error {
	if !ValidRequestStatus(newStatus) {
		return fmt.Errorf("unknown request status %q", newStatus)
	}
	allowed := false
	for _, next := range requestTransitions[r.Status] {
		if next == newStatus {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("invalid transition from %s to %s: %w", r.Status, newStatus, ErrRequestNotPending)
	}

	r.Status = newStatus
	return tx.Save(r).Error
}

// AcceptServiceRequest atomically accepts a pending request and materializes
// an appointment from it. The status flip is guarded on status='pending'
// inside the transaction so a concurrent second accept loses with
// ErrRequestNotPending and creates nothing.
func AcceptServiceRequest(dbh *gorm.DB, requestID, workerID uint, budget *float64) (*Appointment, error) {
	var req ServiceRequest
	if err := dbh.Where("id = ? AND worker_id = ?", requestID, workerID).First(&req).Error; err != nil {
		return nil, err
	}

	var appointment Appointment
	err := dbh.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": RequestAccepted}
		if budget != nil {
			updates["budget_estimate"] = *budget
		}
		res := tx.Model(&ServiceRequest{}).
			Where("id = ? AND status = ?", req.ID, RequestPending).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRequestNotPending
		}

		description := req.Description
		if description == "" {
			description = "Accepted from service request"
		}
		scheduledDate := time.Now().Format("2006-01-02")
		if req.PreferredDate != nil && *req.PreferredDate != "" {
			scheduledDate = *req.PreferredDate
		}
		scheduledTime := "10:00:00"
		if req.PreferredTime != nil && *req.PreferredTime != "" {
			scheduledTime = *req.PreferredTime
		}

		appointment = Appointment{
			ClientID:        req.ClientID,
			WorkerID:        req.WorkerID,
			ServiceType:     req.ServiceType,
			Description:     description,
			ScheduledDate:   scheduledDate,
			ScheduledTime:   scheduledTime,
			Status:          AppointmentPending,
			TotalCost:       budget,
			ContactPhone:    req.ClientPhone,
			SourceRequestID: &req.ID,
		}
		return tx.Create(&appointment).Error
	})
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}
