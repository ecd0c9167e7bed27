package model

import "time"

// Habit is a recurring habit owned by a single user. ScheduledDays is
// the set of weekdays the habit is due on; Tags are display-only
// labels the analytics never look at.
type Habit struct {
	ID            int       `json:"id"`
	UserID        int       `json:"user_id"`
	Name          string    `json:"name"`
	ScheduledDays []Weekday `json:"scheduled_days"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
