package models

import (
	"time"

	"gorm.io/gorm"
)

// EarningsTransaction is one appointment row as it appears in the earnings
// history, joined with the client's name.
type EarningsTransaction struct {
	ID          uint      `json:"id"`
	ServiceType string    `json:"service_type"`
	TotalCost   *float64  `json:"total_cost"`
	Status      string    `json:"status"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	ClientName  string    `json:"client_name"`
}

// EarningsSummary is the read-side rollup for one worker and range.
type EarningsSummary struct {
	TotalEarnings   float64               `json:"total_earnings"`
	PendingEarnings float64               `json:"pending_earnings"`
	Transactions    []EarningsTransaction `json:"transactions"`
}

// EarningsStats is the fixed week/month/year rollup.
type EarningsStats struct {
	WeeklyEarnings  float64 `json:"weekly_earnings"`
	MonthlyEarnings float64 `json:"monthly_earnings"`
	YearlyEarnings  float64 `json:"yearly_earnings"`
	TotalCompleted  int64   `json:"total_completed"`
}

// RangeCutoff returns the inclusive lower bound date ("YYYY-MM-DD") for an
// earnings range. Unknown ranges fall back to a week.
func RangeCutoff(rng string, now time.Time) string {
	switch rng {
	case "month":
		return now.AddDate(0, -1, 0).Format("2006-01-02")
	case "year":
		return now.AddDate(-1, 0, 0).Format("2006-01-02")
	default: // week
		return now.AddDate(0, 0, -7).Format("2006-01-02")
	}
}

func sumCompleted(dbh *gorm.DB, workerID uint, cutoff string) (float64, error) {
	var total float64
	err := dbh.Model(&Appointment{}).
		Select("COALESCE(SUM(total_cost), 0)").
		Where("worker_id = ? AND status = ? AND scheduled_date >= ?", workerID, AppointmentCompleted, cutoff).
		Scan(&total).Error
	return total, err
}

// SummarizeEarnings rolls completed appointments within the range into
// total_earnings, and confirmed/in-progress priced appointments into
// pending_earnings. Pending ignores the range on purpose: the app shows it as
// the worker's global outstanding figure. Totals are zero when nothing
// matches, never null.
func SummarizeEarnings(dbh *gorm.DB, workerID uint, rng string) (*EarningsSummary, error) {
	cutoff := RangeCutoff(rng, time.Now())

	summary := &EarningsSummary{Transactions: []EarningsTransaction{}}

	total, err := sumCompleted(dbh, workerID, cutoff)
	if err != nil {
		return nil, err
	}
	summary.TotalEarnings = total

	var pending float64
	if err := dbh.Model(&Appointment{}).
		Select("COALESCE(SUM(total_cost), 0)").
		Where("worker_id = ? AND status IN ? AND total_cost > 0", workerID,
			[]AppointmentStatus{AppointmentInProgress, AppointmentConfirmed}).
		Scan(&pending).Error; err != nil {
		return nil, err
	}
	summary.PendingEarnings = pending

	var completed []EarningsTransaction
	if err := dbh.Table("appointments").
		Select("appointments.id, appointments.service_type, appointments.total_cost, appointments.status, appointments.scheduled_date AS date, appointments.created_at, users.name AS client_name").
		Joins("INNER JOIN users ON users.id = appointments.client_id").
		Where("appointments.worker_id = ? AND appointments.status = ? AND appointments.scheduled_date >= ?",
			workerID, AppointmentCompleted, cutoff).
		Order("appointments.scheduled_date DESC").
		Scan(&completed).Error; err != nil {
		return nil, err
	}

	var inFlight []EarningsTransaction
	if err := dbh.Table("appointments").
		Select("appointments.id, appointments.service_type, appointments.total_cost, appointments.status, appointments.scheduled_date AS date, appointments.created_at, users.name AS client_name").
		Joins("INNER JOIN users ON users.id = appointments.client_id").
		Where("appointments.worker_id = ? AND appointments.status IN ? AND appointments.total_cost > 0",
			workerID, []AppointmentStatus{AppointmentInProgress, AppointmentConfirmed}).
		Order("appointments.scheduled_date DESC").
		Scan(&inFlight).Error; err != nil {
		return nil, err
	}
	for i := range inFlight {
		inFlight[i].Status = "pending"
	}

	summary.Transactions = append(summary.Transactions, completed...)
	summary.Transactions = append(summary.Transactions, inFlight...)
	return summary, nil
}

// GetEarningsStats computes the fixed week/month/year completed sums plus the
// lifetime completed count. The windows nest: year includes month includes
// week.
func GetEarningsStats(dbh *gorm.DB, workerID uint) (*EarningsStats, error) {
	now := time.Now()
	stats := &EarningsStats{}

	var err error
	if stats.WeeklyEarnings, err = sumCompleted(dbh, workerID, RangeCutoff("week", now)); err != nil {
		return nil, err
	}
	if stats.MonthlyEarnings, err = sumCompleted(dbh, workerID, RangeCutoff("month", now)); err != nil {
		return nil, err
	}
	if stats.YearlyEarnings, err = sumCompleted(dbh, workerID, RangeCutoff("year", now)); err != nil {
		return nil, err
	}

	if err := dbh.Model(&Appointment{}).
		Where("worker_id = ? AND status = ?", workerID, AppointmentCompleted).
		Count(&stats.TotalCompleted).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
