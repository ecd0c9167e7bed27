package model

import "time"

// CompletionRecord marks a habit as done on one calendar date. There
// is at most one record per (habit, date) pair; completion is a
// boolean fact per day, never a counter.
type CompletionRecord struct {
	HabitID int       `json:"habit_id"`
	Date    time.Time `json:"-"`
}
