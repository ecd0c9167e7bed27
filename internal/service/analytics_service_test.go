package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Hari569/habit-tracker/internal/engine"
	"github.com/Hari569/habit-tracker/internal/model"
)

// fixedClock pins "today" to Tuesday 2026-09-01.
var fixedToday = time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)

func newAnalyticsFixture(t *testing.T) (*AnalyticsService, *mockHabitStore, *mockCompletionStore) {
	t.Helper()

	habits := newMockHabitStore()
	completions := newMockCompletionStore(habits)
	svc := NewAnalyticsService(habits, completions, &mockCache{}, zap.NewNop())
	svc.now = func() time.Time { return fixedToday }
	return svc, habits, completions
}

func seedHabit(t *testing.T, habits *mockHabitStore, userID int, name string, days ...model.Weekday) *model.Habit {
	t.Helper()
	h := &model.Habit{UserID: userID, Name: name, ScheduledDays: days}
	if _, err := habits.Insert(context.Background(), h); err != nil {
		t.Fatalf("seed habit failed: %v", err)
	}
	return h
}

func seedCompletion(t *testing.T, completions *mockCompletionStore, habitID int, d time.Time) {
	t.Helper()
	if _, err := completions.Insert(context.Background(), model.CompletionRecord{HabitID: habitID, Date: d}); err != nil {
		t.Fatalf("seed completion failed: %v", err)
	}
}

func TestAnalyticsStreaksAllHabits(t *testing.T) {
	svc, habits, completions := newAnalyticsFixture(t)
	ctx := context.Background()

	// Tuesday-only habit completed the last two Tuesdays including today.
	h := seedHabit(t, habits, 1, "tuesdays", model.Tuesday)
	seedCompletion(t, completions, h.ID, time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC))
	seedCompletion(t, completions, h.ID, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	// Another user's habit must not show up.
	seedHabit(t, habits, 2, "foreign", model.Tuesday)

	results, err := svc.Streaks(ctx, 1, nil)
	if err != nil {
		t.Fatalf("Streaks failed: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].CurrentStreak != 2 || results[0].LongestStreak != 2 {
		t.Errorf("streaks = {%d,%d}, want {2,2}", results[0].CurrentStreak, results[0].LongestStreak)
	}
	if results[0].HabitName != "tuesdays" {
		t.Errorf("habit name = %q", results[0].HabitName)
	}
}

func TestAnalyticsUnknownHabitIsEmptyResult(t *testing.T) {
	svc, habits, _ := newAnalyticsFixture(t)
	ctx := context.Background()

	seedHabit(t, habits, 1, "real", model.Tuesday)

	unknown := 999
	streaks, err := svc.Streaks(ctx, 1, &unknown)
	if err != nil {
		t.Fatalf("Streaks failed: %v", err)
	}
	if len(streaks) != 0 {
		t.Errorf("unknown habit returned %d streak results, want 0", len(streaks))
	}

	rates, err := svc.CompletionRates(ctx, 1, &unknown, 30)
	if err != nil {
		t.Fatalf("CompletionRates failed: %v", err)
	}
	if len(rates) != 0 {
		t.Errorf("unknown habit returned %d rate results, want 0", len(rates))
	}
}

func TestAnalyticsForeignHabitFilterIsEmpty(t *testing.T) {
	svc, habits, _ := newAnalyticsFixture(t)
	ctx := context.Background()

	foreign := seedHabit(t, habits, 2, "foreign", model.Tuesday)

	results, err := svc.Streaks(ctx, 1, &foreign.ID)
	if err != nil {
		t.Fatalf("Streaks failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("foreign habit leaked %d results", len(results))
	}
}

func TestAnalyticsCompletionRateSaturdayWindow(t *testing.T) {
	svc, habits, completions := newAnalyticsFixture(t)
	ctx := context.Background()

	h := seedHabit(t, habits, 1, "weekly review", model.Saturday)
	seedCompletion(t, completions, h.ID, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC))

	results, err := svc.CompletionRates(ctx, 1, &h.ID, 7)
	if err != nil {
		t.Fatalf("CompletionRates failed: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].CompletionRate != 100 {
		t.Errorf("rate = %d, want 100", results[0].CompletionRate)
	}
}

func TestAnalyticsSummary(t *testing.T) {
	svc, habits, completions := newAnalyticsFixture(t)
	ctx := context.Background()

	done := seedHabit(t, habits, 1, "due and done", model.Tuesday)
	seedHabit(t, habits, 1, "due not done", model.Tuesday)
	mon := seedHabit(t, habits, 1, "mondays", model.Monday)

	seedCompletion(t, completions, done.ID, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	seedCompletion(t, completions, done.ID, time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC))
	seedCompletion(t, completions, mon.ID, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))

	got, err := svc.Summary(ctx, 1)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}

	want := engine.SummaryResult{TotalHabits: 3, TotalCompletions: 3, CompletedToday: 1}
	if got != want {
		t.Errorf("summary = %+v, want %+v", got, want)
	}
}

// cacheWithValue fakes a warm cache entry for one kind.
type cacheWithValue struct {
	mockCache
	kind  string
	value any
	hits  int
}

func (c *cacheWithValue) Get(_ context.Context, _ int, kind, _ string, v any) bool {
	if kind != c.kind {
		return false
	}
	c.hits++
	switch dst := v.(type) {
	case *[]engine.StreakResult:
		*dst = c.value.([]engine.StreakResult)
	case *engine.SummaryResult:
		*dst = c.value.(engine.SummaryResult)
	}
	return true
}

func TestAnalyticsCacheHitSkipsCompute(t *testing.T) {
	habits := newMockHabitStore()
	completions := newMockCompletionStore(habits)
	cached := []engine.StreakResult{{HabitID: 42, HabitName: "cached", CurrentStreak: 5, LongestStreak: 9}}
	cache := &cacheWithValue{kind: "streaks", value: cached}

	svc := NewAnalyticsService(habits, completions, cache, zap.NewNop())
	svc.now = func() time.Time { return fixedToday }

	got, err := svc.Streaks(context.Background(), 1, nil)
	if err != nil {
		t.Fatalf("Streaks failed: %v", err)
	}

	if cache.hits != 1 {
		t.Errorf("cache hits = %d, want 1", cache.hits)
	}
	if len(got) != 1 || got[0].HabitID != 42 {
		t.Errorf("cached value not returned: %+v", got)
	}
}
