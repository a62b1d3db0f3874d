package models

import (
	"errors"
	"testing"

	"gorm.io/gorm"
)

func seedAppointment(t *testing.T, dbh *gorm.DB, clientID, workerID uint, status AppointmentStatus) Appointment {
	t.Helper()

	appointment := Appointment{
		ClientID:      clientID,
		WorkerID:      workerID,
		ServiceType:   "Plomería",
		ScheduledDate: "2025-06-01",
		ScheduledTime: "10:00:00",
		Status:        status,
	}
	if err := dbh.Create(&appointment).Error; err != nil {
		t.Fatalf("failed to seed appointment: %v", err)
	}
	return appointment
}

func TestAppointmentDefaultsToPending(t *testing.T) {
	dbh := openTestDB(t)
	client := seedUser(t, dbh, "client", RoleClient)
	workerUser := seedWorker(t, dbh, "worker")

	appointment := Appointment{
		ClientID:      client.ID,
		WorkerID:      workerUser.ID,
		ServiceType:   "Carpintería",
		ScheduledDate: "2025-06-01",
		ScheduledTime: "10:00:00",
	}
	if err := dbh.Create(&appointment).Error; err != nil {
		t.Fatalf("create: %v", err)
	}
	if appointment.Status != AppointmentPending {
		t.Errorf("status = %s, want pending", appointment.Status)
	}
}

func TestAppointmentStatusTransitions(t *testing.T) {
	tests := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{AppointmentPending, AppointmentConfirmed, true},
		{AppointmentPending, AppointmentCancelled, true},
		{AppointmentPending, AppointmentInProgress, false},
		{AppointmentPending, AppointmentCompleted, false},
		{AppointmentConfirmed, AppointmentInProgress, true},
		{AppointmentConfirmed, AppointmentCancelled, true},
		{AppointmentConfirmed, AppointmentCompleted, false},
		{AppointmentInProgress, AppointmentCompleted, true},
		{AppointmentInProgress, AppointmentCancelled, false},
		{AppointmentCompleted, AppointmentInProgress, false},
		{AppointmentCompleted, AppointmentPending, false},
		{AppointmentCancelled, AppointmentConfirmed, false},
	}

	for _, tt := range tests {
		dbh := openTestDB(t)
		client := seedUser(t, dbh, "client", RoleClient)
		workerUser := seedWorker(t, dbh, "worker")
		appointment := seedAppointment(t, dbh, client.ID, workerUser.ID, tt.from)

		err := appointment.UpdateStatus(dbh, tt.to)
		if tt.allowed {
			if err != nil {
				t.Errorf("%s -> %s: unexpected error %v", tt.from, tt.to, err)
				continue
			}
			var reloaded Appointment
			if err := dbh.First(&reloaded, appointment.ID).Error; err != nil {
				t.Fatalf("reload: %v", err)
			}
			if reloaded.Status != tt.to {
				t.Errorf("%s -> %s: persisted status = %s", tt.from, tt.to, reloaded.Status)
			}
		} else {
			if !errors.Is(err, ErrIllegalTransition) {
				t.Errorf("%s -> %s: error = %v, want ErrIllegalTransition", tt.from, tt.to, err)
			}
		}
	}
}

func TestAppointmentUpdateStatusRejectsUnknownValue(t *testing.T) {
	dbh := openTestDB(t)
	client := seedUser(t, dbh, "client", RoleClient)
	workerUser := seedWorker(t, dbh, "worker")
	appointment := seedAppointment(t, dbh, client.ID, workerUser.ID, AppointmentPending)

	err := appointment.UpdateStatus(dbh, AppointmentStatus("snoozed"))
	if err == nil {
		t.Fatal("expected error for unknown status, got none")
	}
	if errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("unknown status should not map to ErrIllegalTransition, got %v", err)
	}
}
