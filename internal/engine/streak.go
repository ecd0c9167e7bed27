package engine

import (
	"time"

	"github.com/Hari569/habit-tracker/internal/model"
)

// StreakResult holds the streak state of one habit as of a reference
// date. Current is the run of consecutive completed due-dates ending
// at the most recent due-date on or before the reference date; Longest
// is the best such run anywhere in the habit's history. Current never
// exceeds Longest.
type StreakResult struct {
	HabitID       int    `json:"habit_id"`
	HabitName     string `json:"habit_name"`
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
}

// Streaks walks the habit's due-dates in ascending order from its
// earliest completion up to asOf. Only due-dates matter: a non-due day
// neither breaks nor extends a run, while a missed due-date resets the
// run to zero. asOf is an explicit parameter; the engine never reads
// the wall clock.
func Streaks(h *model.Habit, ix *CompletionIndex, asOf time.Time) StreakResult {
	res := StreakResult{HabitID: h.ID, HabitName: h.Name}

	completed := ix.CompletedDatesFor(h.ID)
	if len(completed) == 0 {
		return res
	}

	end := DateOf(asOf)
	run := 0
	for d := completed[0]; !d.After(end); d = nextDay(d) {
		if !IsDue(h, d) {
			continue
		}
		if ix.IsCompleted(h.ID, d) {
			run++
			if run > res.LongestStreak {
				res.LongestStreak = run
			}
		} else {
			run = 0
		}
	}

	// After the walk, run is the streak ending at the last due-date on
	// or before asOf: exactly the current streak, zero if that
	// due-date was missed.
	res.CurrentStreak = run
	return res
}
