package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Hari569/habit-tracker/internal/engine"
	"github.com/Hari569/habit-tracker/internal/model"
	"github.com/Hari569/habit-tracker/internal/mq"
	"github.com/Hari569/habit-tracker/pkg/metrics"
)

// HabitInput carries the caller-supplied habit fields for create and
// update. Update is a full replace of name, days and tags.
type HabitInput struct {
	Name          string
	ScheduledDays []string
	Tags          []string
}

type HabitService struct {
	habits HabitStore
	pub    EventPublisher
	cache  ResultCache
	logger *zap.Logger
}

func NewHabitService(habits HabitStore, pub EventPublisher, cache ResultCache, logger *zap.Logger) *HabitService {
	return &HabitService{
		habits: habits,
		pub:    pub,
		cache:  cache,
		logger: logger,
	}
}

func (in HabitInput) validate() (string, []model.Weekday, []string, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return "", nil, nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	days, err := model.ParseWeekdays(in.ScheduledDays)
	if err != nil {
		return "", nil, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	tags := make([]string, 0, len(in.Tags))
	for _, t := range in.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return name, days, tags, nil
}

func (s *HabitService) Create(ctx context.Context, userID int, in HabitInput) (*model.Habit, error) {
	name, days, tags, err := in.validate()
	if err != nil {
		return nil, err
	}

	h := &model.Habit{
		UserID:        userID,
		Name:          name,
		ScheduledDays: days,
		Tags:          tags,
	}
	if _, err := s.habits.Insert(ctx, h); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, userID)
	s.publish(mq.RoutingKeyHabitCreated, mq.HabitEventPayload{
		HabitID: h.ID,
		UserID:  userID,
		Name:    h.Name,
	})
	return h, nil
}

func (s *HabitService) List(ctx context.Context, userID int) ([]model.Habit, error) {
	return s.habits.ListByUser(ctx, userID)
}

// Get returns the habit iff it exists and belongs to the user.
func (s *HabitService) Get(ctx context.Context, userID, habitID int) (*model.Habit, error) {
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

func (s *HabitService) Update(ctx context.Context, userID, habitID int, in HabitInput) (*model.Habit, error) {
	name, days, tags, err := in.validate()
	if err != nil {
		return nil, err
	}

	h, err := s.Get(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}

	h.Name = name
	h.ScheduledDays = days
	h.Tags = tags
	ok, err := s.habits.Update(ctx, h)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	s.cache.Invalidate(ctx, userID)
	s.publish(mq.RoutingKeyHabitUpdated, mq.HabitEventPayload{
		HabitID: h.ID,
		UserID:  userID,
		Name:    h.Name,
	})
	return h, nil
}

// Delete removes the habit and, through the store's cascade, every
// completion record referencing it.
func (s *HabitService) Delete(ctx context.Context, userID, habitID int) error {
	h, err := s.Get(ctx, userID, habitID)
	if err != nil {
		return err
	}

	ok, err := s.habits.Delete(ctx, habitID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	s.cache.Invalidate(ctx, userID)
	s.publish(mq.RoutingKeyHabitDeleted, mq.HabitEventPayload{
		HabitID: habitID,
		UserID:  userID,
		Name:    h.Name,
	})
	return nil
}

// DueOn returns the user's habits scheduled on the given date.
func (s *HabitService) DueOn(ctx context.Context, userID int, date time.Time) ([]model.Habit, error) {
	habits, err := s.habits.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	due := make([]model.Habit, 0, len(habits))
	for i := range habits {
		if engine.IsDue(&habits[i], date) {
			due = append(due, habits[i])
		}
	}
	return due, nil
}

// publish sends a domain event; broker trouble is logged, never
// surfaced to the caller.
func (s *HabitService) publish(routingKey string, payload any) {
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
