// Package dateutil provides calendar-day date handling for the garden planner.
//
// All dates in a garden are whole calendar days. Functions here normalize
// times to day granularity and convert to/from the YYYY-MM-DD key form used
// for persistence and equality, using UTC calendar fields so that keys are
// stable across time zones.
package dateutil

import (
	"errors"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")
)

// keyFormat is the wire form for calendar dates.
const keyFormat = "2006-01-02"

// Key returns the YYYY-MM-DD form of t, read from its UTC calendar fields.
func Key(t time.Time) string {
	return t.UTC().Format(keyFormat)
}

// ParseKey parses a YYYY-MM-DD string into a UTC midnight time.
func ParseKey(s string) (time.Time, error) {
	t, err := time.Parse(keyFormat, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// ParseDate parses a date string in YYYY-MM-DD format.
// If the string is empty, returns today's date at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return Today(), nil
	}
	return ParseKey(s)
}

// Today returns the current calendar day at UTC midnight.
func Today() time.Time {
	return TruncateToDay(time.Now())
}

// TruncateToDay strips the time-of-day component, keeping the UTC calendar day.
func TruncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return TruncateToDay(a).Equal(TruncateToDay(b))
}

// Before reports whether a falls on an earlier calendar day than b.
func Before(a, b time.Time) bool {
	return TruncateToDay(a).Before(TruncateToDay(b))
}

// After reports whether a falls on a later calendar day than b.
func After(a, b time.Time) bool {
	return TruncateToDay(a).After(TruncateToDay(b))
}

// Between reports whether d falls within [start, end], inclusive both ends,
// at day granularity.
func Between(d, start, end time.Time) bool {
	return !Before(d, start) && !After(d, end)
}

// DaysBetween returns the absolute number of whole days between a and b.
func DaysBetween(a, b time.Time) int {
	d := TruncateToDay(b).Sub(TruncateToDay(a))
	days := int(d.Hours() / 24)
	if days < 0 {
		return -days
	}
	return days
}

// AddDays returns the calendar day n days after t (n may be negative).
func AddDays(t time.Time, n int) time.Time {
	return TruncateToDay(t).AddDate(0, 0, n)
}
