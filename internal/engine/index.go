package engine

import (
	"sort"
	"time"

	"github.com/Hari569/habit-tracker/internal/model"
)

// CompletionIndex is a derived, disposable view over a flat list of
// completion records: membership by (habit, date) and per-habit
// chronological iteration. It is built once per query and never
// persisted. Duplicate (habit, date) pairs in the input collapse
// silently, matching the idempotent semantics of recording a
// completion twice.
type CompletionIndex struct {
	byHabit map[int][]time.Time
}

// NewCompletionIndex builds an index from a sequence of completion
// records. Record dates are canonicalized to midnight UTC.
func NewCompletionIndex(records []model.CompletionRecord) *CompletionIndex {
	seen := make(map[int]map[time.Time]struct{})
	for _, r := range records {
		d := DateOf(r.Date)
		if seen[r.HabitID] == nil {
			seen[r.HabitID] = make(map[time.Time]struct{})
		}
		seen[r.HabitID][d] = struct{}{}
	}

	byHabit := make(map[int][]time.Time, len(seen))
	for habitID, dates := range seen {
		sorted := make([]time.Time, 0, len(dates))
		for d := range dates {
			sorted = append(sorted, d)
		}
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })
		byHabit[habitID] = sorted
	}
	return &CompletionIndex{byHabit: byHabit}
}

// IsCompleted reports whether the habit was completed on the date.
func (ix *CompletionIndex) IsCompleted(habitID int, date time.Time) bool {
	d := DateOf(date)
	dates := ix.byHabit[habitID]
	i := sort.Search(len(dates), func(i int) bool { return !dates[i].Before(d) })
	return i < len(dates) && dates[i].Equal(d)
}

// CompletedDatesFor returns the habit's completion dates in ascending
// order, deduplicated. The returned slice is shared with the index and
// must not be mutated.
func (ix *CompletionIndex) CompletedDatesFor(habitID int) []time.Time {
	return ix.byHabit[habitID]
}
