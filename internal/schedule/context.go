package schedule

import (
	"time"

	"github.com/asanchezgar/rehaplan/internal/constants"
	"github.com/asanchezgar/rehaplan/internal/models"
)

// InferContext determines the current activity, next activity, and the day's
// aggregate counts for a weekday of a week schedule, relative to now.
//
// The reference instant is an explicit argument so results are deterministic
// and reproducible; nothing in this package reads the wall clock.
func InferContext(week models.WeekSchedule, day string, now time.Time) models.DayContext {
	return ContextAt(DayActivities(week, day), now.Hour()*60+now.Minute())
}

// ContextAt computes the day context for an already-parsed activity list at
// the given minute-of-day.
//
// An activity at minute t is current when |nowMin-t| <= 30 and nowMin >= t-15:
// it becomes current 15 minutes before its scheduled time and stays current
// until 30 minutes after. The next activity is the first one strictly in the
// future. Both searches honor schedule order and keep the first match; the
// scan never stops early, since a current match may sit before the next one.
func ContextAt(activities []models.Activity, nowMin int) models.DayContext {
	ctx := models.DayContext{Total: len(activities)}

	for i := range activities {
		act := &activities[i]
		switch {
		case act.Minutes < nowMin:
			ctx.Completed++
		case act.Minutes > nowMin:
			ctx.Upcoming++
		}

		if ctx.Current == nil && inCurrentWindow(act.Minutes, nowMin) {
			ctx.Current = cloneActivity(act)
		}
		if ctx.Next == nil && act.Minutes > nowMin {
			ctx.Next = cloneActivity(act)
		}
	}

	// No activity inside the strict window: promote the closest one, as
	// long as it is within a two-hour halo. This keeps "current" populated
	// between widely spaced sessions instead of flashing empty mid-day.
	if ctx.Current == nil && len(activities) > 0 {
		closest := &activities[0]
		for i := range activities {
			if distance(activities[i].Minutes, nowMin) < distance(closest.Minutes, nowMin) {
				closest = &activities[i]
			}
		}
		if distance(closest.Minutes, nowMin) <= constants.CurrentHaloMin {
			ctx.Current = cloneActivity(closest)
		}
	}

	return ctx
}

func inCurrentWindow(t, nowMin int) bool {
	return distance(t, nowMin) <= constants.CurrentLagMin && nowMin >= t-constants.CurrentLeadMin
}

func distance(t, nowMin int) int {
	if t > nowMin {
		return t - nowMin
	}
	return nowMin - t
}

// cloneActivity returns a copy so callers own their context values and never
// alias the parsed slice.
func cloneActivity(a *models.Activity) *models.Activity {
	c := *a
	return &c
}
