package engine

import (
	"testing"
	"time"

	"github.com/Hari569/habit-tracker/internal/model"
)

func mwfHabit() *model.Habit {
	return &model.Habit{
		ID:            1,
		Name:          "exercise",
		ScheduledDays: []model.Weekday{model.Monday, model.Wednesday, model.Friday},
	}
}

// Weeks 1-3 fully completed, week 4's Wednesday missed, completed
// again after. As of the Friday after the gap the current streak only
// counts from there backward while the longest retains the pre-gap
// run. 2026-08-03 is a Monday.
func TestStreaksGapScenario(t *testing.T) {
	habit := mwfHabit()

	var records []model.CompletionRecord
	completed := []time.Time{
		// weeks 1-3: every MON/WED/FRI
		date(2026, 8, 3), date(2026, 8, 5), date(2026, 8, 7),
		date(2026, 8, 10), date(2026, 8, 12), date(2026, 8, 14),
		date(2026, 8, 17), date(2026, 8, 19), date(2026, 8, 21),
		// week 4: Monday done, Wednesday 2026-08-26 missed, Friday done
		date(2026, 8, 24),
		date(2026, 8, 28),
	}
	for _, d := range completed {
		records = append(records, rec(1, d))
	}
	ix := NewCompletionIndex(records)

	got := Streaks(habit, ix, date(2026, 8, 28))

	if got.CurrentStreak != 1 {
		t.Errorf("current streak = %d, want 1 (only the post-gap Friday)", got.CurrentStreak)
	}
	if got.LongestStreak != 10 {
		t.Errorf("longest streak = %d, want 10 (weeks 1-3 plus week 4 Monday)", got.LongestStreak)
	}
	if got.CurrentStreak > got.LongestStreak {
		t.Error("current streak exceeds longest streak")
	}
}

func TestStreaksNoCompletions(t *testing.T) {
	got := Streaks(mwfHabit(), NewCompletionIndex(nil), date(2026, 8, 28))

	if got.CurrentStreak != 0 || got.LongestStreak != 0 {
		t.Errorf("expected {0,0}, got {%d,%d}", got.CurrentStreak, got.LongestStreak)
	}
}

func TestStreaksLatestDueDateMissed(t *testing.T) {
	habit := mwfHabit()
	// Monday and Wednesday done, Friday (the latest due-date) missed.
	ix := NewCompletionIndex([]model.CompletionRecord{
		rec(1, date(2026, 8, 3)),
		rec(1, date(2026, 8, 5)),
	})

	got := Streaks(habit, ix, date(2026, 8, 7))

	if got.CurrentStreak != 0 {
		t.Errorf("current streak = %d, want 0 after missing the latest due-date", got.CurrentStreak)
	}
	if got.LongestStreak != 2 {
		t.Errorf("longest streak = %d, want 2", got.LongestStreak)
	}
}

// A non-due day between two completed due-dates neither breaks nor
// extends the run.
func TestStreaksSkipNonDueDays(t *testing.T) {
	habit := mwfHabit()
	ix := NewCompletionIndex([]model.CompletionRecord{
		rec(1, date(2026, 8, 7)),  // Friday
		rec(1, date(2026, 8, 10)), // next Monday, weekend in between
	})

	got := Streaks(habit, ix, date(2026, 8, 10))

	if got.CurrentStreak != 2 {
		t.Errorf("current streak = %d, want 2 across the weekend", got.CurrentStreak)
	}
	if got.LongestStreak != 2 {
		t.Errorf("longest streak = %d, want 2", got.LongestStreak)
	}
}

func TestStreaksAsOfBeforeCompletions(t *testing.T) {
	habit := mwfHabit()
	ix := NewCompletionIndex([]model.CompletionRecord{
		rec(1, date(2026, 8, 10)),
	})

	// asOf predates every completion; no due-dates in range.
	got := Streaks(habit, ix, date(2026, 8, 7))

	if got.CurrentStreak != 0 || got.LongestStreak != 0 {
		t.Errorf("expected {0,0}, got {%d,%d}", got.CurrentStreak, got.LongestStreak)
	}
}

func TestStreaksCompletionOnNonDueDayIgnored(t *testing.T) {
	habit := mwfHabit()
	// Saturday completion for a MON/WED/FRI habit.
	ix := NewCompletionIndex([]model.CompletionRecord{
		rec(1, date(2026, 8, 8)),
	})

	got := Streaks(habit, ix, date(2026, 8, 10))

	if got.CurrentStreak != 0 || got.LongestStreak != 0 {
		t.Errorf("non-due completion changed streaks: {%d,%d}", got.CurrentStreak, got.LongestStreak)
	}
}

func TestStreaksNeverScheduledHabit(t *testing.T) {
	habit := &model.Habit{ID: 1, Name: "degenerate"}
	ix := NewCompletionIndex([]model.CompletionRecord{
		rec(1, date(2026, 8, 3)),
	})

	got := Streaks(habit, ix, date(2026, 8, 28))

	if got.CurrentStreak != 0 || got.LongestStreak != 0 {
		t.Errorf("habit with no schedule produced streaks: {%d,%d}", got.CurrentStreak, got.LongestStreak)
	}
}

func TestStreaksCurrentEqualsLongestWhenUnbroken(t *testing.T) {
	habit := mwfHabit()
	ix := NewCompletionIndex([]model.CompletionRecord{
		rec(1, date(2026, 8, 3)),
		rec(1, date(2026, 8, 5)),
		rec(1, date(2026, 8, 7)),
	})

	got := Streaks(habit, ix, date(2026, 8, 7))

	if got.CurrentStreak != 3 || got.LongestStreak != 3 {
		t.Errorf("expected {3,3}, got {%d,%d}", got.CurrentStreak, got.LongestStreak)
	}
}
