package utils

import (
	"fmt"
	"time"

	"github.com/driplog/drip/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// MinutesOfDay returns minutes elapsed since midnight for the given time.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// DaysBetween returns the whole calendar days from a to b (both YYYY-MM-DD).
// Positive when b is after a.
func DaysBetween(a, b string) (int, error) {
	ta, err := time.Parse(constants.DateFormat, a)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", a, err)
	}
	tb, err := time.Parse(constants.DateFormat, b)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", b, err)
	}
	return int(tb.Sub(ta).Hours() / 24), nil
}

// AddDays returns the date string offset by the given number of days.
func AddDays(date string, days int) (string, error) {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t.AddDate(0, 0, days).Format(constants.DateFormat), nil
}
