package utils

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04:05"
)

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

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}

var hhmmRe = regexp.MustCompile(`\b(\d{2}):(\d{2})\b`)

// NormalizeTimeStr extracts and validates an HH:MM value from user input
// such as "08:00" or "08:00 PKT".
func NormalizeTimeStr(t string) (string, error) {
	m := hhmmRe.FindStringSubmatch(t)
	if len(m) < 3 {
		return "", errors.New("invalid time format (expected HH:MM)")
	}
	hhmm := m[0]
	if _, err := time.Parse("15:04", hhmm); err != nil {
		return "", errors.New("invalid time format")
	}
	return hhmm, nil
}
