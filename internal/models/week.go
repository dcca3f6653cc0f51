package models

import (
	"strings"

	"github.com/asanchezgar/rehaplan/internal/constants"
)

// WeekSchedule maps canonical weekday names ("Lunes".."Domingo") to raw
// day-schedule strings. A missing or empty entry means a rest day.
type WeekSchedule map[string]string

// Patient is the validated shape of a positive recognition payload.
type Patient struct {
	ID   string       `json:"id" yaml:"id"`
	Name string       `json:"name" yaml:"name"`
	Week WeekSchedule `json:"week" yaml:"week"`
}

// foldDay lower-cases a weekday name and strips the diacritics that occur
// in Spanish weekday spellings, so "MIÉRCOLES", "miercoles" and
// "Miércoles" all match the same canonical key.
func foldDay(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	replacer := strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u")
	return replacer.Replace(s)
}

// CanonicalDay maps a loosely-spelled weekday name onto its canonical form.
// The empty string is returned when the name matches no weekday.
func CanonicalDay(name string) string {
	want := foldDay(name)
	for _, d := range constants.WeekDays {
		if foldDay(d) == want {
			return d
		}
	}
	return ""
}

// Day returns the raw schedule string for the given weekday name, tolerating
// case and diacritic variance in both the argument and the map keys.
// Unknown days and nil schedules yield the empty string.
func (w WeekSchedule) Day(name string) string {
	if w == nil {
		return ""
	}
	canon := CanonicalDay(name)
	if canon == "" {
		return ""
	}
	if raw, ok := w[canon]; ok {
		return raw
	}
	want := foldDay(canon)
	for k, raw := range w {
		if foldDay(k) == want {
			return raw
		}
	}
	return ""
}

// Normalize rewrites the map onto canonical weekday keys, dropping entries
// whose key matches no weekday. Upstream payloads are loosely typed, so
// this runs once at the boundary and the rest of the program only sees
// canonical keys.
func (w WeekSchedule) Normalize() WeekSchedule {
	out := make(WeekSchedule, len(constants.WeekDays))
	for k, raw := range w {
		if canon := CanonicalDay(k); canon != "" {
			out[canon] = raw
		}
	}
	return out
}
