// Package schedule implements the schedule interpretation engine: parsing
// free-form per-day schedule strings into activity records and inferring
// current/next activity state relative to an explicit reference instant.
//
// Parsing is lenient by design. Malformed entries are dropped silently and
// never surface as errors; upstream payloads are too inconsistent for
// strict validation to do anything but blank the display.
package schedule

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/asanchezgar/rehaplan/internal/constants"
	"github.com/asanchezgar/rehaplan/internal/models"
)

// ParseActivities turns one day's raw schedule string into an ordered
// sequence of activities. Order follows the input; no sorting happens.
// An empty string, or any string containing the rest marker, yields nil.
func ParseActivities(raw string) []models.Activity {
	raw = strings.TrimSpace(raw)
	if raw == "" || isRestDay(raw) {
		return nil
	}

	var activities []models.Activity
	for _, entry := range strings.Split(raw, ",") {
		if act, ok := parseEntry(strings.TrimSpace(entry)); ok {
			activities = append(activities, act)
		}
	}
	return activities
}

// DayActivities parses the schedule for one weekday of a week schedule.
func DayActivities(week models.WeekSchedule, day string) []models.Activity {
	return ParseActivities(week.Day(day))
}

// isRestDay reports whether the day string carries the rest marker anywhere,
// which suppresses every entry in it.
func isRestDay(raw string) bool {
	return strings.Contains(strings.ToLower(raw), constants.RestMarker)
}

// parseEntry scans a single comma-delimited entry of the form
// "HH:MM-<free text>[-<room>]". The free text may itself contain hyphens.
// ok is false when the entry lacks a valid time or a non-empty name.
func parseEntry(entry string) (models.Activity, bool) {
	timeTok, description, found := strings.Cut(entry, "-")
	if !found {
		return models.Activity{}, false
	}

	timeTok = strings.TrimSpace(timeTok)
	minutes, ok := parseClock(timeTok)
	if !ok {
		return models.Activity{}, false
	}

	name, room := splitRoom(description)
	if name == "" {
		return models.Activity{}, false
	}

	full := name
	if room != "" {
		full = name + " • " + room
	}

	return models.Activity{
		Time:            timeTok,
		Minutes:         minutes,
		Description:     description,
		Name:            name,
		Room:            room,
		FullDescription: full,
	}, true
}

// splitRoom separates an optional trailing room token from the activity
// description. The room rule: re-split the description on hyphens, and if
// the last token starts with the whole word "sala" (case-insensitive), it
// is the room and the remaining tokens form the name.
func splitRoom(description string) (name, room string) {
	tokens := strings.Split(description, "-")
	last := strings.TrimSpace(tokens[len(tokens)-1])
	if len(tokens) > 1 && isRoomToken(last) {
		parts := make([]string, 0, len(tokens)-1)
		for _, tok := range tokens[:len(tokens)-1] {
			if tok = strings.TrimSpace(tok); tok != "" {
				parts = append(parts, tok)
			}
		}
		return strings.Join(parts, "-"), last
	}
	return strings.TrimSpace(description), ""
}

// isRoomToken reports whether the token starts with the room prefix as a
// whole word: "Sala A" and "sala2" qualify, "salamandra" does not.
func isRoomToken(tok string) bool {
	lower := strings.ToLower(tok)
	if !strings.HasPrefix(lower, constants.RoomPrefix) {
		return false
	}
	rest := lower[len(constants.RoomPrefix):]
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return !unicode.IsLetter(r)
}

// parseClock parses an HH:MM token into minute-of-day.
func parseClock(tok string) (int, bool) {
	t, err := time.Parse(constants.TimeFormat, tok)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
