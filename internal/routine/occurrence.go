package routine

import (
	"time"

	"task-scheduler/internal/model"
)

// NextOccurrence returns the first planned day strictly after `after` that
// matches the routine's cadence, counting from `after` itself. The service
// never schedules this day on its own; callers use it for display and to
// pick generate-task dates.
func NextOccurrence(rt model.Routine, after time.Time) time.Time {
	day := startOfDay(after)
	switch rt.RepeatType {
	case model.RepeatWeekly:
		return day.AddDate(0, 0, 7*rt.RepeatInterval)
	case model.RepeatMonthly:
		return day.AddDate(0, rt.RepeatInterval, 0)
	default:
		return day.AddDate(0, 0, rt.RepeatInterval)
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
