package utils

import (
	"time"
)

// DayFormat is the wire format for calendar dates ("YYYY-MM-DD").
const DayFormat = "2006-01-02"

// ParseDay parses a "YYYY-MM-DD" string into a UTC midnight time.
// Rejects malformed strings and impossible calendar dates.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayFormat, s, time.UTC)
}

// FormatDay renders a time as a "YYYY-MM-DD" string.
func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}

// DayOf truncates a time to UTC midnight of the same calendar day.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
