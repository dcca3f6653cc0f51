package schedule

import (
	"reflect"
	"testing"
	"time"

	"github.com/asanchezgar/rehaplan/internal/models"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 8, 24, hour, min, 0, 0, time.UTC) // a Monday
}

func TestInferContextCurrentWindow(t *testing.T) {
	week := models.WeekSchedule{"Lunes": "10:00-Fisioterapia"}

	tests := []struct {
		name        string
		now         time.Time
		wantCurrent bool
		wantNext    bool
	}{
		{
			name:        "15 minutes before start is current",
			now:         at(9, 50),
			wantCurrent: true,
			wantNext:    true, // 10:00 is still strictly in the future
		},
		{
			name:        "exactly at start is current",
			now:         at(10, 0),
			wantCurrent: true,
			wantNext:    false,
		},
		{
			name:        "30 minutes after start is still current",
			now:         at(10, 30),
			wantCurrent: true,
			wantNext:    false,
		},
		{
			name:        "16 minutes before start is outside the strict window but inside the halo",
			now:         at(9, 44),
			wantCurrent: true, // fallback: distance 16 <= 120
			wantNext:    true,
		},
		{
			name:        "two hours before start only reaches via halo",
			now:         at(8, 0),
			wantCurrent: true, // distance 120, at the halo boundary
			wantNext:    true,
		},
		{
			name:        "beyond halo there is no current",
			now:         at(7, 59),
			wantCurrent: false,
			wantNext:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferContext(week, "Lunes", tt.now)
			if (got.Current != nil) != tt.wantCurrent {
				t.Errorf("Current = %+v, wantCurrent %v", got.Current, tt.wantCurrent)
			}
			if (got.Next != nil) != tt.wantNext {
				t.Errorf("Next = %+v, wantNext %v", got.Next, tt.wantNext)
			}
		})
	}
}

func TestInferContextStrictWindowIsAsymmetric(t *testing.T) {
	// ContextAt exercises the strict window without the halo masking it:
	// the single activity sits 31 minutes in the past, outside |d|<=30.
	acts := []models.Activity{{Time: "10:00", Minutes: 600, Name: "Fisioterapia"}}

	got := ContextAt(acts, 600+31)
	if got.Current == nil {
		t.Fatal("expected halo to pick up the activity 31 minutes past")
	}

	// 31 minutes past fails the strict window, so only the halo applies;
	// verify the strict rule directly.
	if inCurrentWindow(600, 631) {
		t.Error("inCurrentWindow(600, 631) = true, want false (lag is 30 minutes)")
	}
	if !inCurrentWindow(600, 585) {
		t.Error("inCurrentWindow(600, 585) = false, want true (lead is 15 minutes)")
	}
	if inCurrentWindow(600, 584) {
		t.Error("inCurrentWindow(600, 584) = true, want false (16 minutes early)")
	}
}

func TestInferContextFallbackHalo(t *testing.T) {
	week := models.WeekSchedule{"Lunes": "09:00-Fisioterapia, 14:00-Comida"}

	// Past both activities, no window hit: closest is 14:00 at distance 120.
	got := InferContext(week, "Lunes", at(16, 0))
	if got.Current == nil || got.Current.Name != "Comida" {
		t.Fatalf("expected closest activity Comida as current, got %+v", got.Current)
	}
	if got.Next != nil {
		t.Errorf("expected no next activity, got %+v", got.Next)
	}

	// Distance 180 exceeds the halo.
	got = InferContext(week, "Lunes", at(17, 0))
	if got.Current != nil {
		t.Errorf("expected no current activity at distance 180, got %+v", got.Current)
	}
}

func TestInferContextFallbackTieBreak(t *testing.T) {
	// 10:00 and 12:00 are both 60 minutes from 11:00, outside the strict
	// window. The earlier activity wins the tie.
	acts := []models.Activity{
		{Time: "10:00", Minutes: 600, Name: "Primera"},
		{Time: "12:00", Minutes: 720, Name: "Segunda"},
	}
	got := ContextAt(acts, 660)
	if got.Current == nil || got.Current.Name != "Primera" {
		t.Errorf("tie should keep schedule order, got %+v", got.Current)
	}
}

func TestInferContextFirstMatchWins(t *testing.T) {
	// Both activities fall inside the strict window at 10:15; the first in
	// schedule order is kept even though the second is closer.
	acts := []models.Activity{
		{Time: "10:00", Minutes: 600, Name: "Primera"},
		{Time: "10:20", Minutes: 620, Name: "Segunda"},
	}
	got := ContextAt(acts, 615)
	if got.Current == nil || got.Current.Name != "Primera" {
		t.Errorf("expected first matching activity, got %+v", got.Current)
	}
	if got.Next == nil || got.Next.Name != "Segunda" {
		t.Errorf("expected next activity Segunda, got %+v", got.Next)
	}
}

func TestInferContextCounts(t *testing.T) {
	week := models.WeekSchedule{"Lunes": "09:00-Fisioterapia, 12:00-Comida, 17:00-Paseo"}

	tests := []struct {
		name                       string
		now                        time.Time
		total, completed, upcoming int
	}{
		{"before all", at(8, 0), 3, 0, 3},
		{"between first and second", at(10, 0), 3, 1, 2},
		{"exactly at an activity", at(12, 0), 3, 1, 1}, // 12:00 in neither bucket
		{"after all", at(23, 0), 3, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferContext(week, "Lunes", tt.now)
			if got.Total != tt.total || got.Completed != tt.completed || got.Upcoming != tt.upcoming {
				t.Errorf("counts = %d/%d/%d, want %d/%d/%d",
					got.Total, got.Completed, got.Upcoming, tt.total, tt.completed, tt.upcoming)
			}
			if got.Completed+got.Upcoming > got.Total {
				t.Errorf("completed+upcoming exceeds total: %+v", got)
			}
		})
	}
}

func TestInferContextEmptyInputs(t *testing.T) {
	zero := models.DayContext{}

	tests := []struct {
		name string
		week models.WeekSchedule
		day  string
	}{
		{"nil week", nil, "Lunes"},
		{"empty day name", models.WeekSchedule{"Lunes": "09:00-Fisioterapia"}, ""},
		{"unknown day name", models.WeekSchedule{"Lunes": "09:00-Fisioterapia"}, "Feriado"},
		{"rest day", models.WeekSchedule{"Lunes": "Descanso"}, "Lunes"},
		{"day not in map", models.WeekSchedule{"Lunes": "09:00-Fisioterapia"}, "Martes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferContext(tt.week, tt.day, at(10, 0)); !reflect.DeepEqual(got, zero) {
				t.Errorf("InferContext = %+v, want zero context", got)
			}
		})
	}
}

func TestInferContextDoesNotMutateInputs(t *testing.T) {
	week := models.WeekSchedule{"Lunes": "10:00-Fisioterapia-Sala A"}
	ctx1 := InferContext(week, "Lunes", at(10, 5))
	if ctx1.Current == nil {
		t.Fatal("expected a current activity")
	}
	ctx1.Current.Name = "mutated"

	ctx2 := InferContext(week, "Lunes", at(10, 5))
	if ctx2.Current.Name != "Fisioterapia" {
		t.Errorf("second call observed mutation: %+v", ctx2.Current)
	}
}
