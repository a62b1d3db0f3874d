package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AvailabilityStatus string

const (
	StatusAvailable AvailabilityStatus = "available"
	StatusBusy      AvailabilityStatus = "busy"
	StatusOffline   AvailabilityStatus = "offline"
)

// ValidAvailability reports whether the value is one of the tri-state statuses.
func ValidAvailability(s AvailabilityStatus) bool {
	return s == StatusAvailable || s == StatusBusy || s == StatusOffline
}

type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// WeekDays lists the canonical days a weekly schedule must cover, in order.
var WeekDays = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var (
	ErrScheduleIncomplete = errors.New("weekly schedule must cover all 7 days exactly once")
	ErrBadClock           = errors.New("time must be in HH:MM or HH:MM:SS format")
)

// WorkerProfile holds the professional side of a user with role=worker.
// Created lazily the first time a profession is assigned.
type WorkerProfile struct {
	gorm.Model
	UserID           uint               `json:"user_id" gorm:"uniqueIndex"`
	User             User               `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Profession       string             `json:"profession"`
	Description      string             `json:"description"`
	Rating           float64            `json:"rating"`
	Availability     AvailabilityStatus `json:"availability" gorm:"type:varchar(16);default:'available'"`
	ImmediateService bool               `json:"immediate_service"`
	CoverageRadius   int                `json:"coverage_radius" gorm:"default:15"`
}

// AvailabilitySlot is one weekly window. The (worker, day) pair is unique,
// saves upsert instead of inserting duplicates.
type AvailabilitySlot struct {
	gorm.Model
	WorkerID  uint      `json:"worker_id" gorm:"uniqueIndex:idx_worker_day"`
	DayOfWeek DayOfWeek `json:"day_of_week" gorm:"type:varchar(10);uniqueIndex:idx_worker_day"`
	Enabled   bool      `json:"enabled"`
	StartTime string    `json:"start_time"` // "HH:MM" 24h
	EndTime   string    `json:"end_time"`
}

// AvailabilitySnapshot is the read shape for a worker's availability settings.
type AvailabilitySnapshot struct {
	Availability     AvailabilityStatus `json:"availability"`
	ImmediateService bool               `json:"immediate_service"`
	CoverageRadius   int                `json:"coverage_radius"`
	TimeSlots        []AvailabilitySlot `json:"time_slots"`
}

// DefaultWeeklySchedule returns the schedule shown before a worker has saved
// one: Mon-Fri 09:00-18:00 enabled, weekend 10:00-14:00 disabled. Never
// persisted on read.
func DefaultWeeklySchedule(workerID uint) []AvailabilitySlot {
	slots := make([]AvailabilitySlot, 0, len(WeekDays))
	for _, day := range WeekDays {
		slot := AvailabilitySlot{
			WorkerID:  workerID,
			DayOfWeek: day,
			Enabled:   true,
			StartTime: "09:00",
			EndTime:   "18:00",
		}
		if day == Saturday || day == Sunday {
			slot.Enabled = false
			slot.StartTime = "10:00"
			slot.EndTime = "14:00"
		}
		slots = append(slots, slot)
	}
	return slots
}

// normalizeClock validates "HH:MM" or "HH:MM:SS" and returns the "HH:MM" form.
func normalizeClock(s string) (string, error) {
	if t, err := time.Parse("15:04", s); err == nil {
		return t.Format("15:04"), nil
	}
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t.Format("15:04"), nil
	}
	return "", ErrBadClock
}

// GetAvailabilitySnapshot loads a worker's tri-state status, radius and weekly
// schedule, synthesizing the default week when no rows exist yet.
func GetAvailabilitySnapshot(dbh *gorm.DB, workerID uint) (*AvailabilitySnapshot, error) {
	var profile WorkerProfile
	if err := dbh.Where("user_id = ?", workerID).First(&profile).Error; err != nil {
		return nil, err
	}

	var slots []AvailabilitySlot
	if err := dbh.Where("worker_id = ?", workerID).Order("day_of_week").Find(&slots).Error; err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		slots = DefaultWeeklySchedule(workerID)
	}

	radius := profile.CoverageRadius
	if radius == 0 {
		radius = 15
	}

	return &AvailabilitySnapshot{
		Availability:     profile.Availability,
		ImmediateService: profile.ImmediateService,
		CoverageRadius:   radius,
		TimeSlots:        slots,
	}, nil
}

// SaveWeeklySchedule replaces a worker's weekly windows in one transaction.
// Each of the 7 canonical days is updated if a row exists and inserted
// otherwise, so a full save never leaves duplicate or missing day rows.
// Start >= end is stored as-is; only the clock format is validated.
func SaveWeeklySchedule(dbh *gorm.DB, workerID uint, slots []AvailabilitySlot, radius int, immediateService bool) error {
	byDay := make(map[DayOfWeek]AvailabilitySlot, len(slots))
	for _, slot := range slots {
		byDay[slot.DayOfWeek] = slot
	}
	if len(byDay) != len(WeekDays) {
		return ErrScheduleIncomplete
	}
	for _, day := range WeekDays {
		slot, ok := byDay[day]
		if !ok {
			return ErrScheduleIncomplete
		}
		start, err := normalizeClock(slot.StartTime)
		if err != nil {
			return fmt.Errorf("%s start_time: %w", day, err)
		}
		end, err := normalizeClock(slot.EndTime)
		if err != nil {
			return fmt.Errorf("%s end_time: %w", day, err)
		}
		slot.StartTime = start
		slot.EndTime = end
		byDay[day] = slot
	}

	return dbh.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&WorkerProfile{}).
			Where("user_id = ?", workerID).
			Updates(map[string]interface{}{
				"immediate_service": immediateService,
				"coverage_radius":   radius,
			}).Error; err != nil {
			return err
		}

		for _, day := range WeekDays {
			slot := byDay[day]
			var existing AvailabilitySlot
			err := tx.Where("worker_id = ? AND day_of_week = ?", workerID, day).First(&existing).Error
			switch {
			case err == nil:
				existing.Enabled = slot.Enabled
				existing.StartTime = slot.StartTime
				existing.EndTime = slot.EndTime
				if err := tx.Save(&existing).Error; err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				fresh := AvailabilitySlot{
					WorkerID:  workerID,
					DayOfWeek: day,
					Enabled:   slot.Enabled,
					StartTime: slot.StartTime,
					EndTime:   slot.EndTime,
				}
				if err := tx.Create(&fresh).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}
		return nil
	})
}

// ScheduleStats summarizes how much of the week a worker has opened up.
type ScheduleStats struct {
	ActiveDays             int     `json:"active_days"`
	WeeklyHours            float64 `json:"weekly_hours"`
	AvailabilityPercentage int     `json:"availability_percentage"`
}

// GetScheduleStats computes active days and weekly hours from the saved slots.
func GetScheduleStats(dbh *gorm.DB, workerID uint) (*ScheduleStats, error) {
	var slots []AvailabilitySlot
	if err := dbh.Where("worker_id = ? AND enabled = ?", workerID, true).Find(&slots).Error; err != nil {
		return nil, err
	}

	stats := &ScheduleStats{ActiveDays: len(slots)}
	for _, slot := range slots {
		start, err := time.Parse("15:04", slot.StartTime)
		if err != nil {
			continue
		}
		end, err := time.Parse("15:04", slot.EndTime)
		if err != nil {
			continue
		}
		if end.After(start) {
			stats.WeeklyHours += end.Sub(start).Hours()
		}
	}
	stats.AvailabilityPercentage = int(float64(stats.ActiveDays) / float64(len(WeekDays)) * 100)
	return stats, nil
}
