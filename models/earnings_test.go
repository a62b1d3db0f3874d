package models

import (
	"testing"
	"time"

	"gorm.io/gorm"
)

func daysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).Format("2006-01-02")
}

func seedPricedAppointment(t *testing.T, dbh *gorm.DB, clientID, workerID uint, status AppointmentStatus, date string, cost float64) {
	t.Helper()

	appointment := Appointment{
		ClientID:      clientID,
		WorkerID:      workerID,
		ServiceType:   "Electricidad",
		ScheduledDate: date,
		ScheduledTime: "10:00:00",
		Status:        status,
		TotalCost:     &cost,
	}
	if err := dbh.Create(&appointment).Error; err != nil {
		t.Fatalf("failed to seed appointment: %v", err)
	}
}

func TestRangeCutoff(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		rng  string
		want string
	}{
		{"week", "2025-06-08"},
		{"month", "2025-05-15"},
		{"year", "2024-06-15"},
		{"bogus", "2025-06-08"},
		{"", "2025-06-08"},
	}
	for _, tt := range tests {
		if got := RangeCutoff(tt.rng, now); got != tt.want {
			t.Errorf("RangeCutoff(%q) = %s, want %s", tt.rng, got, tt.want)
		}
	}
}

func TestSummarizeEarningsEmpty(t *testing.T) {
	dbh := openTestDB(t)
	workerUser := seedWorker(t, dbh, "worker")

	summary, err := SummarizeEarnings(dbh, workerUser.ID, "week")
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}

	if summary.TotalEarnings != 0 {
		t.Errorf("total_earnings = %v, want 0", summary.TotalEarnings)
	}
	if summary.PendingEarnings != 0 {
		t.Errorf("pending_earnings = %v, want 0", summary.PendingEarnings)
	}
	if summary.Transactions == nil {
		t.Error("transactions is nil, want empty slice")
	}
	if len(summary.Transactions) != 0 {
		t.Errorf("transactions = %d, want 0", len(summary.Transactions))
	}
}

func TestSummarizeEarningsRangeFiltering(t *testing.T) {
	dbh := openTestDB(t)
	client := seedUser(t, dbh, "client", RoleClient)
	workerUser := seedWorker(t, dbh, "worker")

	seedPricedAppointment(t, dbh, client.ID, workerUser.ID, AppointmentCompleted, daysAgo(2), 50)
	seedPricedAppointment(t, dbh, client.ID, workerUser.ID, AppointmentCompleted, daysAgo(20), 80)
	seedPricedAppointment(t, dbh, client.ID, workerUser.ID, AppointmentCompleted, daysAgo(100), 120)

	week, err := SummarizeEarnings(dbh, workerUser.ID, "week")
	if err != nil {
		t.Fatalf("summarize week: %v", err)
	}
	if week.TotalEarnings != 50 {
		t.Errorf("week total = %v, want 50", week.TotalEarnings)
	}
	if len(week.Transactions) != 1 {
		t.Errorf("week transactions = %d, want 1", len(week.Transactions))
	}

	month, err := SummarizeEarnings(dbh, workerUser.ID, "month")
	if err != nil {
		t.Fatalf("summarize month: %v", err)
	}
	if month.TotalEarnings != 130 {
		t.Errorf("month total = %v, want 130", month.TotalEarnings)
	}

	year, err := SummarizeEarnings(dbh, workerUser.ID, "year")
	if err != nil {
		t.Fatalf("summarize year: %v", err)
	}
	if year.TotalEarnings != 250 {
		t.Errorf("year total = %v, want 250", year.TotalEarnings)
	}

	if len(week.Transactions) == 1 && week.Transactions[0].ClientName != "client" {
		t.Errorf("client_name = %s, want client", week.Transactions[0].ClientName)
	}
}

func TestSummarizeEarningsPendingIgnoresRange(t *testing.T) {
	dbh := openTestDB(t)
	client := seedUser(t, dbh, "client", RoleClient)
	workerUser := seedWorker(t, dbh, "worker")

	// Confirmed and in-progress work counts as pending regardless of date.
	seedPricedAppointment(t, dbh, client.ID, workerUser.ID, AppointmentConfirmed, daysAgo(60), 40)
	seedPricedAppointment(t, dbh, client.ID, workerUser.ID, AppointmentInProgress, daysAgo(1), 35)
	// Unpriced and pending rows never count.
	seedAppointment(t, dbh, client.ID, workerUser.ID, AppointmentConfirmed)
	seedPricedAppointment(t, dbh, client.ID, workerUser.ID, AppointmentPending, daysAgo(1), 99)

	summary, err := SummarizeEarnings(dbh, workerUser.ID, "week")
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if summary.PendingEarnings != 75 {
		t.Errorf("pending_earnings = %v, want 75", summary.PendingEarnings)
	}

	for _, tx := range summary.Transactions {
		if tx.Status != "pending" && tx.Status != string(AppointmentCompleted) {
			t.Errorf("transaction status = %s, want pending or completed", tx.Status)
		}
	}
}

func TestSummarizeEarningsScopedToWorker(t *testing.T) {
	dbh := openTestDB(t)
	client := seedUser(t, dbh, "client", RoleClient)
	workerUser := seedWorker(t, dbh, "worker")
	other := seedWorker(t, dbh, "other")

	seedPricedAppointment(t, dbh, client.ID, workerUser.ID, AppointmentCompleted, daysAgo(1), 50)
	seedPricedAppointment(t, dbh, client.ID, other.ID, AppointmentCompleted, daysAgo(1), 500)

	summary, err := SummarizeEarnings(dbh, workerUser.ID, "week")
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if summary.TotalEarnings != 50 {
		t.Errorf("total_earnings = %v, want 50", summary.TotalEarnings)
	}
}

func TestGetEarningsStats(t *testing.T) {
	dbh := openTestDB(t)
	client := seedUser(t, dbh, "client", RoleClient)
	workerUser := seedWorker(t, dbh, "worker")

	seedPricedAppointment(t, dbh, client.ID, workerUser.ID, AppointmentCompleted, daysAgo(2), 50)
	seedPricedAppointment(t, dbh, client.ID, workerUser.ID, AppointmentCompleted, daysAgo(20), 80)
	seedPricedAppointment(t, dbh, client.ID, workerUser.ID, AppointmentCompleted, daysAgo(100), 120)
	seedPricedAppointment(t, dbh, client.ID, workerUser.ID, AppointmentCompleted, daysAgo(800), 200)

	stats, err := GetEarningsStats(dbh, workerUser.ID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if stats.WeeklyEarnings != 50 {
		t.Errorf("weekly = %v, want 50", stats.WeeklyEarnings)
	}
	if stats.MonthlyEarnings != 130 {
		t.Errorf("monthly = %v, want 130", stats.MonthlyEarnings)
	}
	if stats.YearlyEarnings != 250 {
		t.Errorf("yearly = %v, want 250", stats.YearlyEarnings)
	}
	if stats.TotalCompleted != 4 {
		t.Errorf("total_completed = %d, want 4 (lifetime)", stats.TotalCompleted)
	}
}

func TestGetEarningsStatsEmpty(t *testing.T) {
	dbh := openTestDB(t)
	workerUser := seedWorker(t, dbh, "worker")

	stats, err := GetEarningsStats(dbh, workerUser.ID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.WeeklyEarnings != 0 || stats.MonthlyEarnings != 0 || stats.YearlyEarnings != 0 || stats.TotalCompleted != 0 {
		t.Errorf("stats = %+v, want all zero", stats)
	}
}
