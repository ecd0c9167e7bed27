package service

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Hari569/habit-tracker/internal/engine"
	"github.com/Hari569/habit-tracker/internal/model"
)

// In-memory fakes for the store, publisher and cache interfaces.

type mockHabitStore struct {
	habits map[int]model.Habit
	nextID int
}

func newMockHabitStore() *mockHabitStore {
	return &mockHabitStore{habits: make(map[int]model.Habit), nextID: 1}
}

func (m *mockHabitStore) Insert(_ context.Context, h *model.Habit) (int, error) {
	h.ID = m.nextID
	m.nextID++
	h.CreatedAt = time.Now()
	h.UpdatedAt = h.CreatedAt
	m.habits[h.ID] = *h
	return h.ID, nil
}

func (m *mockHabitStore) FindByID(_ context.Context, id int) (*model.Habit, error) {
	h, ok := m.habits[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &h, nil
}

func (m *mockHabitStore) ListByUser(_ context.Context, userID int) ([]model.Habit, error) {
	var out []model.Habit
	for _, h := range m.habits {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockHabitStore) Update(_ context.Context, h *model.Habit) (bool, error) {
	if _, ok := m.habits[h.ID]; !ok {
		return false, nil
	}
	m.habits[h.ID] = *h
	return true, nil
}

func (m *mockHabitStore) Delete(_ context.Context, id int) (bool, error) {
	if _, ok := m.habits[id]; !ok {
		return false, nil
	}
	delete(m.habits, id)
	return true, nil
}

type completionKey struct {
	habitID int
	date    string
}

type mockCompletionStore struct {
	records map[completionKey]model.CompletionRecord
	habits  *mockHabitStore
}

func newMockCompletionStore(habits *mockHabitStore) *mockCompletionStore {
	return &mockCompletionStore{
		records: make(map[completionKey]model.CompletionRecord),
		habits:  habits,
	}
}

func (m *mockCompletionStore) key(habitID int, date time.Time) completionKey {
	return completionKey{habitID: habitID, date: engine.FormatDate(date)}
}

func (m *mockCompletionStore) Insert(_ context.Context, rec model.CompletionRecord) (bool, error) {
	k := m.key(rec.HabitID, rec.Date)
	if _, ok := m.records[k]; ok {
		return false, nil
	}
	m.records[k] = rec
	return true, nil
}

func (m *mockCompletionStore) Delete(_ context.Context, habitID int, date time.Time) (bool, error) {
	k := m.key(habitID, date)
	if _, ok := m.records[k]; !ok {
		return false, nil
	}
	delete(m.records, k)
	return true, nil
}

func (m *mockCompletionStore) ListByUser(_ context.Context, userID int) ([]model.CompletionRecord, error) {
	var out []model.CompletionRecord
	for _, rec := range m.records {
		h, ok := m.habits.habits[rec.HabitID]
		if ok && h.UserID == userID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (m *mockCompletionStore) ListByHabit(_ context.Context, habitID int) ([]model.CompletionRecord, error) {
	var out []model.CompletionRecord
	for _, rec := range m.records {
		if rec.HabitID == habitID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

type publishedEvent struct {
	routingKey string
	payload    any
}

type mockPublisher struct {
	events []publishedEvent
	err    error
}

func (m *mockPublisher) Publish(routingKey string, payload any) error {
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, publishedEvent{routingKey: routingKey, payload: payload})
	return nil
}

type mockCache struct {
	invalidations int
	gets          int
	sets          int
}

func (m *mockCache) Get(context.Context, int, string, string, any) bool {
	m.gets++
	return false
}

func (m *mockCache) Set(context.Context, int, string, string, any) {
	m.sets++
}

func (m *mockCache) Invalidate(context.Context, int) {
	m.invalidations++
}
