package utils

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Today returns the current date in ISO form.
func Today() string {
	return time.Now().Format(DateLayout)
}

// ValidDate checks a "YYYY-MM-DD" value.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// NormalizeTime accepts "HH:MM" or "HH:MM:SS" and returns the "HH:MM:SS" form.
func NormalizeTime(s string) (string, error) {
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t.Format(TimeLayout), nil
	}
	if t, err := time.Parse("15:04", s); err == nil {
		return t.Format(TimeLayout), nil
	}
	return "", fmt.Errorf("invalid time %q, expected HH:MM or HH:MM:SS", s)
}
