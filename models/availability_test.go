package models

import (
	"errors"
	"testing"
)

func fullWeek(workerID uint) []AvailabilitySlot {
	return DefaultWeeklySchedule(workerID)
}

func TestSnapshotSynthesizesDefaultWeek(t *testing.T) {
	dbh := openTestDB(t)
	workerUser := seedWorker(t, dbh, "worker")

	snap, err := GetAvailabilitySnapshot(dbh, workerUser.ID)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	if snap.Availability != StatusAvailable {
		t.Errorf("availability = %s, want available", snap.Availability)
	}
	if snap.CoverageRadius != 15 {
		t.Errorf("coverage_radius = %d, want 15", snap.CoverageRadius)
	}
	if len(snap.TimeSlots) != 7 {
		t.Fatalf("time_slots = %d, want 7", len(snap.TimeSlots))
	}

	byDay := make(map[DayOfWeek]AvailabilitySlot)
	for _, slot := range snap.TimeSlots {
		byDay[slot.DayOfWeek] = slot
	}
	mon := byDay[Monday]
	if !mon.Enabled || mon.StartTime != "09:00" || mon.EndTime != "18:00" {
		t.Errorf("monday default = %+v, want enabled 09:00-18:00", mon)
	}
	sun := byDay[Sunday]
	if sun.Enabled || sun.StartTime != "10:00" || sun.EndTime != "14:00" {
		t.Errorf("sunday default = %+v, want disabled 10:00-14:00", sun)
	}

	// The synthesized week must not leak into the table.
	var count int64
	dbh.Model(&AvailabilitySlot{}).Count(&count)
	if count != 0 {
		t.Errorf("persisted slots = %d, want 0 after read", count)
	}
}

func TestSaveWeeklyScheduleIsIdempotent(t *testing.T) {
	dbh := openTestDB(t)
	workerUser := seedWorker(t, dbh, "worker")

	week := fullWeek(workerUser.ID)
	if err := SaveWeeklySchedule(dbh, workerUser.ID, week, 25, true); err != nil {
		t.Fatalf("first save: %v", err)
	}

	week[0].StartTime = "08:00"
	if err := SaveWeeklySchedule(dbh, workerUser.ID, week, 25, true); err != nil {
		t.Fatalf("second save: %v", err)
	}

	var count int64
	dbh.Model(&AvailabilitySlot{}).Where("worker_id = ?", workerUser.ID).Count(&count)
	if count != 7 {
		t.Errorf("slots after two saves = %d, want 7", count)
	}

	var monday AvailabilitySlot
	if err := dbh.Where("worker_id = ? AND day_of_week = ?", workerUser.ID, Monday).First(&monday).Error; err != nil {
		t.Fatalf("load monday: %v", err)
	}
	if monday.StartTime != "08:00" {
		t.Errorf("monday start = %s, want 08:00", monday.StartTime)
	}

	var profile WorkerProfile
	if err := dbh.Where("user_id = ?", workerUser.ID).First(&profile).Error; err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if profile.CoverageRadius != 25 || !profile.ImmediateService {
		t.Errorf("profile = radius %d immediate %v, want 25 true", profile.CoverageRadius, profile.ImmediateService)
	}
}

func TestSaveWeeklyScheduleRequiresAllDays(t *testing.T) {
	dbh := openTestDB(t)
	workerUser := seedWorker(t, dbh, "worker")

	week := fullWeek(workerUser.ID)[:6]
	err := SaveWeeklySchedule(dbh, workerUser.ID, week, 15, false)
	if !errors.Is(err, ErrScheduleIncomplete) {
		t.Fatalf("error = %v, want ErrScheduleIncomplete", err)
	}

	var count int64
	dbh.Model(&AvailabilitySlot{}).Count(&count)
	if count != 0 {
		t.Errorf("slots persisted = %d, want 0 on failed save", count)
	}
}

func TestSaveWeeklyScheduleRejectsBadClock(t *testing.T) {
	dbh := openTestDB(t)
	workerUser := seedWorker(t, dbh, "worker")

	week := fullWeek(workerUser.ID)
	week[2].StartTime = "nine am"
	err := SaveWeeklySchedule(dbh, workerUser.ID, week, 15, false)
	if !errors.Is(err, ErrBadClock) {
		t.Fatalf("error = %v, want ErrBadClock", err)
	}
}

func TestSaveWeeklyScheduleNormalizesSeconds(t *testing.T) {
	dbh := openTestDB(t)
	workerUser := seedWorker(t, dbh, "worker")

	week := fullWeek(workerUser.ID)
	for i := range week {
		week[i].StartTime = "09:30:00"
		week[i].EndTime = "17:15:00"
	}
	if err := SaveWeeklySchedule(dbh, workerUser.ID, week, 15, false); err != nil {
		t.Fatalf("save: %v", err)
	}

	var monday AvailabilitySlot
	if err := dbh.Where("worker_id = ? AND day_of_week = ?", workerUser.ID, Monday).First(&monday).Error; err != nil {
		t.Fatalf("load monday: %v", err)
	}
	if monday.StartTime != "09:30" || monday.EndTime != "17:15" {
		t.Errorf("monday window = %s-%s, want 09:30-17:15", monday.StartTime, monday.EndTime)
	}
}

func TestGetScheduleStats(t *testing.T) {
	dbh := openTestDB(t)
	workerUser := seedWorker(t, dbh, "worker")

	if err := SaveWeeklySchedule(dbh, workerUser.ID, fullWeek(workerUser.ID), 15, false); err != nil {
		t.Fatalf("save: %v", err)
	}

	stats, err := GetScheduleStats(dbh, workerUser.ID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	// Mon-Fri enabled at 9h each, weekend disabled.
	if stats.ActiveDays != 5 {
		t.Errorf("active_days = %d, want 5", stats.ActiveDays)
	}
	if stats.WeeklyHours != 45 {
		t.Errorf("weekly_hours = %v, want 45", stats.WeeklyHours)
	}
	if stats.AvailabilityPercentage != 71 {
		t.Errorf("availability_percentage = %d, want 71", stats.AvailabilityPercentage)
	}
}

func TestGetScheduleStatsEmpty(t *testing.T) {
	dbh := openTestDB(t)
	workerUser := seedWorker(t, dbh, "worker")

	stats, err := GetScheduleStats(dbh, workerUser.ID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.ActiveDays != 0 || stats.WeeklyHours != 0 || stats.AvailabilityPercentage != 0 {
		t.Errorf("stats = %+v, want all zero", stats)
	}
}
