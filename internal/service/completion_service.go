package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Hari569/habit-tracker/internal/engine"
	"github.com/Hari569/habit-tracker/internal/model"
	"github.com/Hari569/habit-tracker/internal/mq"
	"github.com/Hari569/habit-tracker/pkg/metrics"
)

type CompletionService struct {
	habits      HabitStore
	completions CompletionStore
	pub         EventPublisher
	cache       ResultCache
	logger      *zap.Logger
}

func NewCompletionService(
	habits HabitStore,
	completions CompletionStore,
	pub EventPublisher,
	cache ResultCache,
	logger *zap.Logger,
) *CompletionService {
	return &CompletionService{
		habits:      habits,
		completions: completions,
		pub:         pub,
		cache:       cache,
		logger:      logger,
	}
}

// ownedHabit resolves a habit and enforces owner scoping.
func (s *CompletionService) ownedHabit(ctx context.Context, userID, habitID int) (*model.Habit, error) {
	h, err := s.habits.FindByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if h.UserID != userID {
		return nil, ErrNotFound
	}
	return h, nil
}

// Complete records a completion for one of the user's habits on the
// given date. Completing an already-completed day is an idempotent
// success: same state, no event, no error.
func (s *CompletionService) Complete(ctx context.Context, userID, habitID int, date time.Time) (model.CompletionRecord, error) {
	rec := model.CompletionRecord{HabitID: habitID, Date: engine.DateOf(date)}

	if _, err := s.ownedHabit(ctx, userID, habitID); err != nil {
		return rec, err
	}

	created, err := s.completions.Insert(ctx, rec)
	if err != nil {
		return rec, err
	}
	if !created {
		metrics.IncrementCompletions("duplicate")
		s.logger.Debug("completion already recorded",
			zap.Int("habit_id", habitID),
			zap.String("date", engine.FormatDate(rec.Date)),
		)
		return rec, nil
	}

	metrics.IncrementCompletions("recorded")
	s.cache.Invalidate(ctx, userID)
	s.publish(mq.RoutingKeyHabitCompleted, mq.CompletionEventPayload{
		HabitID: habitID,
		UserID:  userID,
		Date:    engine.FormatDate(rec.Date),
	})
	return rec, nil
}

// Uncomplete removes a completion record. Returns ErrNotFound when no
// record exists for the (habit, date) pair.
func (s *CompletionService) Uncomplete(ctx context.Context, userID, habitID int, date time.Time) error {
	day := engine.DateOf(date)

	if _, err := s.ownedHabit(ctx, userID, habitID); err != nil {
		return err
	}

	removed, err := s.completions.Delete(ctx, habitID, day)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}

	metrics.IncrementCompletions("removed")
	s.cache.Invalidate(ctx, userID)
	s.publish(mq.RoutingKeyHabitUncompleted, mq.CompletionEventPayload{
		HabitID: habitID,
		UserID:  userID,
		Date:    engine.FormatDate(day),
	})
	return nil
}

// ListForUser returns every completion record across the user's habits.
func (s *CompletionService) ListForUser(ctx context.Context, userID int) ([]model.CompletionRecord, error) {
	return s.completions.ListByUser(ctx, userID)
}

// ListForHabit returns one habit's completion records, ascending.
func (s *CompletionService) ListForHabit(ctx context.Context, userID, habitID int) ([]model.CompletionRecord, error) {
	if _, err := s.ownedHabit(ctx, userID, habitID); err != nil {
		return nil, err
	}
	return s.completions.ListByHabit(ctx, habitID)
}

func (s *CompletionService) publish(routingKey string, payload any) {
	if err := s.pub.Publish(routingKey, payload); err != nil {
		metrics.IncrementEventPublished(routingKey, "failed")
		s.logger.Warn("failed to publish event",
			zap.String("routing_key", routingKey),
			zap.Error(err),
		)
		return
	}
	metrics.IncrementEventPublished(routingKey, "success")
}
