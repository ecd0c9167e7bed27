package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Hari569/habit-tracker/internal/model"
)

// CompletionRepository persists completion records. The table's
// primary key is (habit_id, completion_date), so the at-most-one
// record per habit per day invariant is enforced by the store itself.
type CompletionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCompletionRepository(db *pgxpool.Pool, logger *zap.Logger) *CompletionRepository {
	return &CompletionRepository{db: db, logger: logger}
}

// Insert records a completion. Returns false when the (habit, date)
// pair was already recorded; inserting a duplicate is a no-op.
func (r *CompletionRepository) Insert(ctx context.Context, rec model.CompletionRecord) (bool, error) {
	query := `
        INSERT INTO completions (habit_id, completion_date)
        VALUES ($1, $2)
        ON CONFLICT (habit_id, completion_date) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, rec.HabitID, rec.Date)
	if err != nil {
		r.logger.Error("Failed to insert completion",
			zap.Int("habit_id", rec.HabitID),
			zap.Error(err),
		)
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a completion. Returns false when no record existed.
func (r *CompletionRepository) Delete(ctx context.Context, habitID int, date time.Time) (bool, error) {
	query := `
        DELETE FROM completions
        WHERE habit_id = $1 AND completion_date = $2
    `
	tag, err := r.db.Exec(ctx, query, habitID, date)
	if err != nil {
		r.logger.Error("Failed to delete completion",
			zap.Int("habit_id", habitID),
			zap.Error(err),
		)
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListByUser returns every completion record belonging to the user's
// habits, ordered chronologically.
func (r *CompletionRepository) ListByUser(ctx context.Context, userID int) ([]model.CompletionRecord, error) {
	query := `
        SELECT c.habit_id, c.completion_date
        FROM completions c
        JOIN habits h ON h.id = c.habit_id
        WHERE h.user_id = $1
        ORDER BY c.completion_date, c.habit_id
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list completions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []model.CompletionRecord
	for rows.Next() {
		var rec model.CompletionRecord
		if err := rows.Scan(&rec.HabitID, &rec.Date); err != nil {
			r.logger.Error("Failed to scan completion", zap.Error(err))
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ListByHabit returns the habit's completion records in ascending
// date order.
func (r *CompletionRepository) ListByHabit(ctx context.Context, habitID int) ([]model.CompletionRecord, error) {
	query := `
        SELECT habit_id, completion_date
        FROM completions
        WHERE habit_id = $1
        ORDER BY completion_date
    `
	rows, err := r.db.Query(ctx, query, habitID)
	if err != nil {
		r.logger.Error("Failed to list habit completions",
			zap.Int("habit_id", habitID),
			zap.Error(err),
		)
		return nil, err
	}
	defer rows.Close()

	var records []model.CompletionRecord
	for rows.Next() {
		var rec model.CompletionRecord
		if err := rows.Scan(&rec.HabitID, &rec.Date); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
