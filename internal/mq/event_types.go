package mq

// Routing keys for habit domain events.
const (
	RoutingKeyHabitCreated     = "habit.created"
	RoutingKeyHabitUpdated     = "habit.updated"
	RoutingKeyHabitDeleted     = "habit.deleted"
	RoutingKeyHabitCompleted   = "habit.completed"
	RoutingKeyHabitUncompleted = "habit.uncompleted"
)

// HabitEventPayload describes a habit lifecycle event.
type HabitEventPayload struct {
	HabitID int    `json:"habit_id"`
	UserID  int    `json:"user_id"`
	Name    string `json:"name"`
}

// CompletionEventPayload describes a completion being recorded or
// removed. Date is in YYYY-MM-DD form.
type CompletionEventPayload struct {
	HabitID int    `json:"habit_id"`
	UserID  int    `json:"user_id"`
	Date    string `json:"date"`
}
