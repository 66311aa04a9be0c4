package booking

import (
	"time"

	"alpsconnect/models"
)

// DayFormat is the calendar-day layout used across trip windows and
// booking requests.
const DayFormat = "2006-01-02"

// ParseDay parses a "YYYY-MM-DD" string into a UTC midnight time.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayFormat, s)
}

// Day truncates t to its calendar day at UTC midnight.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsDateAvailable reports whether candidate is a bookable start day for the
// trip, as seen from today. Window boundaries are inclusive and today itself
// is bookable. A malformed trip window makes every day unavailable.
func IsDateAvailable(trip *models.Trip, candidate, today time.Time) bool {
	from, err := ParseDay(trip.AvailableFrom)
	if err != nil {
		return false
	}
	to, err := ParseDay(trip.AvailableTo)
	if err != nil {
		return false
	}

	day := Day(candidate)
	if day.Before(from) || day.After(to) {
		return false
	}
	if day.Before(Day(today)) {
		return false
	}
	for _, wd := range trip.BlackoutWeekdays {
		if day.Weekday() == wd {
			return false
		}
	}
	return true
}
