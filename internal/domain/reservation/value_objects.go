package reservation

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDate   = errors.New("date must be YYYY-MM-DD")
	ErrInvalidTime   = errors.New("time must be HH:MM")
	ErrInvalidStatus = errors.New("invalid reservation status")
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Date is a calendar date in ISO 8601 form. Ordering compares the raw
// strings, which matches chronological order for well-formed values.
type Date struct {
	value string
}

// NewDate keeps v as given; use ParseDate when the value must be well formed.
func NewDate(v string) Date {
	return Date{value: v}
}

// ParseDate accepts only the canonical zero-padded form so that string
// ordering stays chronological.
func ParseDate(v string) (Date, error) {
	if parsed, err := time.Parse(dateLayout, v); err != nil || parsed.Format(dateLayout) != v {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, v)
	}
	return Date{value: v}, nil
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	return Date{value: t.Format(dateLayout)}
}

func (d Date) String() string        { return d.value }
func (d Date) IsZero() bool          { return d.value == "" }
func (d Date) Equal(other Date) bool { return d.value == other.value }
func (d Date) Before(other Date) bool {
	return d.value < other.value
}

type TimeOfDay struct {
	value string
}

func NewTimeOfDay(v string) TimeOfDay {
	return TimeOfDay{value: v}
}

func ParseTimeOfDay(v string) (TimeOfDay, error) {
	if parsed, err := time.Parse(timeLayout, v); err != nil || parsed.Format(timeLayout) != v {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, v)
	}
	return TimeOfDay{value: v}, nil
}

func (t TimeOfDay) String() string { return t.value }

// Minutes returns minutes since midnight; ok is false for malformed values.
func (t TimeOfDay) Minutes() (minutes int, ok bool) {
	parsed, err := time.Parse(timeLayout, t.value)
	if err != nil {
		return 0, false
	}
	return parsed.Hour()*60 + parsed.Minute(), true
}

func minutesOf(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
