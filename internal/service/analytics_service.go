package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Hari569/habit-tracker/internal/engine"
	"github.com/Hari569/habit-tracker/internal/model"
	"github.com/Hari569/habit-tracker/pkg/metrics"
)

// AnalyticsService loads a consistent snapshot of the user's habits
// and completions, hands it to the pure engine, and caches the result.
// The engine never sees the wall clock; "today" is resolved here and
// folded into the cache key so entries stay correct across midnight.
type AnalyticsService struct {
	habits      HabitStore
	completions CompletionStore
	cache       ResultCache
	logger      *zap.Logger

	// now is swappable in tests.
	now func() time.Time
}

func NewAnalyticsService(
	habits HabitStore,
	completions CompletionStore,
	cache ResultCache,
	logger *zap.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		habits:      habits,
		completions: completions,
		cache:       cache,
		logger:      logger,
		now:         time.Now,
	}
}

// snapshot loads the user's habits (optionally narrowed to one id) and
// the completion index over all their records. A filter id that
// matches nothing yields an empty habit set, never an error: analytics
// for an unknown habit are an empty result, not a failure.
func (s *AnalyticsService) snapshot(ctx context.Context, userID int, habitID *int) ([]model.Habit, *engine.CompletionIndex, error) {
	habits, err := s.habits.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if habitID != nil {
		filtered := habits[:0:0]
		for i := range habits {
			if habits[i].ID == *habitID {
				filtered = append(filtered, habits[i])
			}
		}
		habits = filtered
	}

	records, err := s.completions.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	return habits, engine.NewCompletionIndex(records), nil
}

func (s *AnalyticsService) today() time.Time {
	return engine.DateOf(s.now().UTC())
}

// CompletionRates computes the rate over the last windowDays for one
// habit or for all of the user's habits.
func (s *AnalyticsService) CompletionRates(ctx context.Context, userID int, habitID *int, windowDays int) ([]engine.RateResult, error) {
	end := s.today()
	params := fmt.Sprintf("%s:%d:%d", engine.FormatDate(end), filterID(habitID), windowDays)

	var cached []engine.RateResult
	if s.cache.Get(ctx, userID, "rate", params, &cached) {
		metrics.IncrementCacheLookup("rate", "hit")
		return cached, nil
	}
	metrics.IncrementCacheLookup("rate", "miss")

	habits, ix, err := s.snapshot(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}

	results := make([]engine.RateResult, 0, len(habits))
	for i := range habits {
		results = append(results, engine.CompletionRate(&habits[i], ix, windowDays, end))
	}

	s.cache.Set(ctx, userID, "rate", params, results)
	return results, nil
}

// Streaks computes current and longest streaks for one habit or all.
func (s *AnalyticsService) Streaks(ctx context.Context, userID int, habitID *int) ([]engine.StreakResult, error) {
	asOf := s.today()
	params := fmt.Sprintf("%s:%d", engine.FormatDate(asOf), filterID(habitID))

	var cached []engine.StreakResult
	if s.cache.Get(ctx, userID, "streaks", params, &cached) {
		metrics.IncrementCacheLookup("streaks", "hit")
		return cached, nil
	}
	metrics.IncrementCacheLookup("streaks", "miss")

	habits, ix, err := s.snapshot(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}

	results := make([]engine.StreakResult, 0, len(habits))
	for i := range habits {
		results = append(results, engine.Streaks(&habits[i], ix, asOf))
	}

	s.cache.Set(ctx, userID, "streaks", params, results)
	return results, nil
}

// Summary computes the user's global counts.
func (s *AnalyticsService) Summary(ctx context.Context, userID int) (engine.SummaryResult, error) {
	today := s.today()
	params := engine.FormatDate(today)

	var cached engine.SummaryResult
	if s.cache.Get(ctx, userID, "summary", params, &cached) {
		metrics.IncrementCacheLookup("summary", "hit")
		return cached, nil
	}
	metrics.IncrementCacheLookup("summary", "miss")

	habits, ix, err := s.snapshot(ctx, userID, nil)
	if err != nil {
		return engine.SummaryResult{}, err
	}

	result := engine.Summary(habits, ix, today)
	s.cache.Set(ctx, userID, "summary", params, result)
	return result, nil
}

func filterID(habitID *int) int {
	if habitID == nil {
		return 0
	}
	return *habitID
}
