package utils

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate parses a "2006-01-02" calendar date in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// FormatDate renders t as a "2006-01-02" calendar date.
func FormatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// DaysBetween returns the whole-day span from start to end. Negative when
// end precedes start.
func DaysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

// ValidTimeSlotLabel reports whether label looks like "HH:MM-HH:MM".
func ValidTimeSlotLabel(label string) bool {
	if len(label) != 11 || label[5] != '-' {
		return false
	}
	_, err1 := time.Parse("15:04", label[:5])
	_, err2 := time.Parse("15:04", label[6:])
	return err1 == nil && err2 == nil
}
