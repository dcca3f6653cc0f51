package utils

import (
	"fmt"
	"time"

	"github.com/asanchezgar/rehaplan/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// "Local" or the empty string yields the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// ParseClock parses an HH:MM string into a time.Time carrying only the
// time-of-day portion.
func ParseClock(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// MinuteOfDay returns t's wall-clock position as minutes from midnight.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// FormatMinutes renders a minute-of-day value as HH:MM.
func FormatMinutes(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// AtClock returns now with its time-of-day replaced by the HH:MM string.
// Used by the what-if surfaces that resolve a context at an arbitrary time.
func AtClock(now time.Time, timeStr string) (time.Time, error) {
	t, err := ParseClock(timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", timeStr, err)
	}
	return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location()), nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}
