package models

import (
	"reflect"
	"testing"
)

func TestCanonicalDay(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Lunes", "Lunes"},
		{"lunes", "Lunes"},
		{"MIÉRCOLES", "Miércoles"},
		{"miercoles", "Miércoles"},
		{"sabado", "Sábado"},
		{" Domingo ", "Domingo"},
		{"Feriado", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := CanonicalDay(tt.in); got != tt.want {
				t.Errorf("CanonicalDay(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWeekScheduleDay(t *testing.T) {
	week := WeekSchedule{
		"Lunes":     "09:00-Fisioterapia",
		"miercoles": "10:00-Hidroterapia", // non-canonical key from upstream
	}

	tests := []struct {
		name string
		day  string
		want string
	}{
		{"canonical key, canonical lookup", "Lunes", "09:00-Fisioterapia"},
		{"canonical key, lowercase lookup", "lunes", "09:00-Fisioterapia"},
		{"folded key, accented lookup", "Miércoles", "10:00-Hidroterapia"},
		{"unconfigured day", "Viernes", ""},
		{"unknown day name", "Feriado", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := week.Day(tt.day); got != tt.want {
				t.Errorf("Day(%q) = %q, want %q", tt.day, got, tt.want)
			}
		})
	}

	var nilWeek WeekSchedule
	if got := nilWeek.Day("Lunes"); got != "" {
		t.Errorf("nil week Day() = %q, want empty", got)
	}
}

func TestWeekScheduleNormalize(t *testing.T) {
	loose := WeekSchedule{
		"lunes":     "09:00-Fisioterapia",
		"MIERCOLES": "10:00-Hidroterapia",
		"notaday":   "junk",
	}

	want := WeekSchedule{
		"Lunes":     "09:00-Fisioterapia",
		"Miércoles": "10:00-Hidroterapia",
	}

	if got := loose.Normalize(); !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %+v, want %+v", got, want)
	}
}
