// Package service holds the application services sitting between the
// HTTP layer and the stores. The analytics engine itself is pure; the
// services own snapshot loading, ownership scoping, validation, event
// publishing and result caching.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/Hari569/habit-tracker/internal/model"
)

var (
	// ErrNotFound marks a habit or completion that does not exist or
	// belongs to another user. Both cases are indistinguishable to the
	// caller on purpose.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput marks a request rejected by validation.
	ErrInvalidInput = errors.New("invalid input")
)

// HabitStore is the persistence surface the services need for habits.
type HabitStore interface {
	Insert(ctx context.Context, h *model.Habit) (int, error)
	FindByID(ctx context.Context, id int) (*model.Habit, error)
	ListByUser(ctx context.Context, userID int) ([]model.Habit, error)
	Update(ctx context.Context, h *model.Habit) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// CompletionStore is the persistence surface for completion records.
type CompletionStore interface {
	Insert(ctx context.Context, rec model.CompletionRecord) (bool, error)
	Delete(ctx context.Context, habitID int, date time.Time) (bool, error)
	ListByUser(ctx context.Context, userID int) ([]model.CompletionRecord, error)
	ListByHabit(ctx context.Context, habitID int) ([]model.CompletionRecord, error)
}

// EventPublisher publishes domain events to the broker.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

// ResultCache caches computed analytics per user.
type ResultCache interface {
	Get(ctx context.Context, userID int, kind, params string, v any) bool
	Set(ctx context.Context, userID int, kind, params string, v any)
	Invalidate(ctx context.Context, userID int)
}
