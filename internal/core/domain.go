package core

import (
	"errors"
	"time"
)

// DateKeyLayout is the canonical calendar-day format used for intake dates.
const DateKeyLayout = "2006-01-02"

type (
	// DateKey is a normalized YYYY-MM-DD calendar day string.
	DateKey string

	User struct {
		ID          int64
		Username    string
		DailyGoalMl int64
	}

	// IntakeEvent is one recorded drink. Events are append-only: once
	// written they are never updated or deleted.
	IntakeEvent struct {
		ID       int64
		UserID   int64
		AmountMl int64
		Date     DateKey
	}

	// DayTotal is one bucket of the weekly chart.
	DayTotal struct {
		Date    DateKey `json:"date"`
		TotalMl int64   `json:"total_ml"`
	}
)

var (
	ErrDuplicateUser = errors.New("user already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidDate   = errors.New("invalid date format (YYYY-MM-DD)")
	ErrInvalidGoal   = errors.New("daily goal must be positive")
)

// ParseDateKey validates and normalizes a caller-supplied date string.
// Anything time.Parse rejects for the YYYY-MM-DD layout fails with
// ErrInvalidDate.
func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse(DateKeyLayout, s)
	if err != nil {
		return "", ErrInvalidDate
	}
	return DateKey(t.Format(DateKeyLayout)), nil
}

// NewDateKey builds the key for the calendar day of t.
func NewDateKey(t time.Time) DateKey {
	return DateKey(t.Format(DateKeyLayout))
}

// Time returns the start of the key's calendar day. Zero time for keys
// that were stored before normalization and do not parse.
func (k DateKey) Time() time.Time {
	t, err := time.Parse(DateKeyLayout, string(k))
	if err != nil {
		return time.Time{}
	}
	return t
}

func (k DateKey) String() string {
	return string(k)
}

func (u User) Validate() error {
	if u.DailyGoalMl <= 0 {
		return ErrInvalidGoal
	}
	return nil
}
