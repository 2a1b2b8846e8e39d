// utils/dates.go
package utils

import "time"

// Date layouts used on the wire and in the database.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "3:04 PM"
)

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseClockTime parses a 12-hour time like "8:30 AM".
func ParseClockTime(s string) (time.Time, error) {
	return time.Parse(ClockLayout, s)
}
