package utils

import (
	"strings"
	"time"
)

const layoutDate = "2006-01-02"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// DateOnly trims an ISO timestamp down to its date part for date inputs.
func DateOnly(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "T"); i > 0 {
		return s[:i]
	}
	return s
}

// ToISO renders a YYYY-MM-DD form value as the RFC3339 instant the API
// expects, or returns the input unchanged when it does not parse.
func ToISO(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return strings.TrimSpace(s)
	}
	return t.UTC().Format(time.RFC3339)
}
