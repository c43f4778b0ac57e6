package utils

import (
	"time"
)

// ParseYMD parses a YYYY-MM-DD string into a midnight-UTC time to match DATE
// column semantics.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// StrOrEmpty dereferences an optional string.
func StrOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
