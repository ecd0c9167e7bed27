package engine

import (
	"math"
	"time"

	"github.com/Hari569/habit-tracker/internal/model"
)

// RateResult is the completion-rate of one habit over a window of
// days. ExpectedCompletions counts the due-dates inside the window,
// ActualCompletions the due-dates that were completed, CompletionRate
// the ratio as a percentage rounded to the nearest integer (0 when the
// window holds no due-dates).
type RateResult struct {
	HabitID             int    `json:"habit_id"`
	HabitName           string `json:"habit_name"`
	ExpectedCompletions int    `json:"expected_completions"`
	ActualCompletions   int    `json:"actual_completions"`
	CompletionRate      int    `json:"completion_rate"`
}

// SummaryResult is the global aggregate over all of a user's habits.
// CompletedToday counts habits that are both due today and completed
// today; habits not due today are excluded outright.
type SummaryResult struct {
	TotalHabits      int `json:"total_habits"`
	TotalCompletions int `json:"total_completions"`
	CompletedToday   int `json:"completed_today"`
}

// CompletionRate aggregates one habit over the inclusive window
// [endDate-windowDays+1, endDate].
func CompletionRate(h *model.Habit, ix *CompletionIndex, windowDays int, endDate time.Time) RateResult {
	res := RateResult{HabitID: h.ID, HabitName: h.Name}

	end := DateOf(endDate)
	start := end.AddDate(0, 0, -(windowDays - 1))
	for d := start; !d.After(end); d = nextDay(d) {
		if !IsDue(h, d) {
			continue
		}
		res.ExpectedCompletions++
		if ix.IsCompleted(h.ID, d) {
			res.ActualCompletions++
		}
	}

	if res.ExpectedCompletions > 0 {
		ratio := float64(res.ActualCompletions) / float64(res.ExpectedCompletions)
		res.CompletionRate = int(math.Round(ratio * 100))
	}
	return res
}

// Summary computes the global counts for a habit set. Completions for
// habit ids outside the set (e.g. records dangling after a habit was
// deleted) are not counted.
func Summary(habits []model.Habit, ix *CompletionIndex, today time.Time) SummaryResult {
	res := SummaryResult{TotalHabits: len(habits)}

	day := DateOf(today)
	for i := range habits {
		h := &habits[i]
		res.TotalCompletions += len(ix.CompletedDatesFor(h.ID))
		if IsDue(h, day) && ix.IsCompleted(h.ID, day) {
			res.CompletedToday++
		}
	}
	return res
}
