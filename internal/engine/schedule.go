package engine

import (
	"time"

	"github.com/Hari569/habit-tracker/internal/model"
)

// IsDue reports whether a habit is scheduled on the given date: true
// iff the date's weekday is a member of the habit's scheduled day set.
// Total over all valid inputs; a habit with an empty day set is simply
// never due.
func IsDue(h *model.Habit, date time.Time) bool {
	day := model.WeekdayOf(date)
	for _, d := range h.ScheduledDays {
		if d == day {
			return true
		}
	}
	return false
}
