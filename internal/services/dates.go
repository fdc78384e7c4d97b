package services

import (
	"strings"
	"time"
)

// CalendarLayout renders dates as calendar days, e.g. "Mon Jan 01 2024".
const CalendarLayout = "Mon Jan 02 2006"

// Bounds of the representable date range (±8.64e15 ms around the epoch).
var (
	MinDate = time.UnixMilli(-8_640_000_000_000_000).UTC()
	MaxDate = time.UnixMilli(8_640_000_000_000_000).UTC()
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-1-2",
	CalendarLayout,
}

// ParseDate reads s in any accepted layout. Zone-less inputs are taken as UTC.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// FormatDate renders t as a UTC calendar day.
func FormatDate(t time.Time) string {
	return t.UTC().Format(CalendarLayout)
}
