// services/recurrence.go
package services

import (
	"fmt"
	"log"
	"time"

	"medbox-cloud-reminder/models"
	"medbox-cloud-reminder/utils"
)

// dateOnly strips the time-of-day and location so that day arithmetic is
// exact regardless of the zone the input carried.
func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// FiresOn reports whether the schedule is due on the given calendar date.
// The time-of-day component of today is ignored. A malformed start or end
// date is returned as an error so the caller can skip the record.
func FiresOn(sch models.MedicationSchedule, today time.Time) (bool, error) {
	start, err := utils.ParseDate(sch.Start)
	if err != nil {
		return false, fmt.Errorf("bad start date %q: %w", sch.Start, err)
	}
	start = dateOnly(start)
	day := dateOnly(today)

	// An ongoing schedule never expires, whatever End says.
	if !sch.Ongoing && sch.End != "" {
		end, err := utils.ParseDate(sch.End)
		if err != nil {
			return false, fmt.Errorf("bad end date %q: %w", sch.End, err)
		}
		if day.After(dateOnly(end)) {
			return false, nil
		}
	}

	if day.Before(start) {
		return false, nil
	}

	freq := sch.Frequency
	if freq == "" {
		freq = models.FrequencyDaily
	}

	switch freq {
	case models.FrequencyDaily:
		return true, nil
	case models.FrequencyWeekly:
		return utils.DaysBetween(start, day)%7 == 0, nil
	case models.FrequencyMonthly:
		// Matches on the start day-of-month only; in months shorter than
		// that day the schedule does not fire at all.
		return day.Day() == start.Day(), nil
	case models.FrequencyAlternate:
		return utils.DaysBetween(start, day)%2 == 0, nil
	default:
		// Unrecognized frequency never fires.
		return false, nil
	}
}

// MatchTimes returns the entries of times whose hour and minute equal now's.
// Entries that fail to parse as "H:MM AM" are logged and skipped without
// affecting their siblings.
func MatchTimes(times []string, now time.Time) []string {
	var matched []string
	for _, entry := range times {
		t, err := utils.ParseClockTime(entry)
		if err != nil {
			log.Printf("Skipping unparseable time %q: %v", entry, err)
			continue
		}
		if t.Hour() == now.Hour() && t.Minute() == now.Minute() {
			matched = append(matched, entry)
		}
	}
	return matched
}
