package utils

import (
	"time"
)

// Midnight strips the time component to midnight UTC to match DATE semantics.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseYMD parses an ISO date (YYYY-MM-DD) as midnight UTC.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return Midnight(t), nil
}

// ParseBRDate parses a DD/MM/YYYY date as midnight UTC.
func ParseBRDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("02/01/2006", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return Midnight(t), nil
}

// ISODate formats a date as YYYY-MM-DD.
func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}
