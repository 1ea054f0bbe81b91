package domain

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the only accepted calendar date format.
const DateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDate validates s as a YYYY-MM-DD calendar date and returns it unchanged.
// Values such as "2024-5-1" or "2024-02-30" are rejected with ErrInvalidDate.
func ParseDate(s string) (string, error) {
	if !datePattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return s, nil
}

// DateOf formats t as the calendar date in t's location.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}
