package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Hari569/habit-tracker/internal/model"
)

// HabitRepository persists habits. Scheduled days are stored in their
// comma-separated form ("MONDAY,WEDNESDAY,..."), tags likewise.
type HabitRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewHabitRepository(db *pgxpool.Pool, logger *zap.Logger) *HabitRepository {
	return &HabitRepository{db: db, logger: logger}
}

func (r *HabitRepository) Insert(ctx context.Context, h *model.Habit) (int, error) {
	r.logger.Debug("Inserting habit",
		zap.Int("user_id", h.UserID),
		zap.String("name", h.Name),
	)

	query := `
        INSERT INTO habits (user_id, name, scheduled_days, tags)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		h.UserID,
		h.Name,
		model.FormatWeekdays(h.ScheduledDays),
		strings.Join(h.Tags, ","),
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)

	if err != nil {
		r.logger.Error("Failed to insert habit", zap.Error(err))
		return 0, err
	}

	r.logger.Info("Habit inserted successfully",
		zap.Int("id", h.ID),
		zap.Int("user_id", h.UserID),
	)
	return h.ID, nil
}

func (r *HabitRepository) FindByID(ctx context.Context, id int) (*model.Habit, error) {
	query := `
        SELECT id, user_id, name, scheduled_days, tags, created_at, updated_at
        FROM habits
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	return scanHabit(row)
}

func (r *HabitRepository) ListByUser(ctx context.Context, userID int) ([]model.Habit, error) {
	query := `
        SELECT id, user_id, name, scheduled_days, tags, created_at, updated_at
        FROM habits
        WHERE user_id = $1
        ORDER BY created_at
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list habits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var habits []model.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			r.logger.Error("Failed to scan habit", zap.Error(err))
			return nil, err
		}
		habits = append(habits, *h)
	}

	r.logger.Debug("Listed habits",
		zap.Int("user_id", userID),
		zap.Int("count", len(habits)),
	)
	return habits, rows.Err()
}

func (r *HabitRepository) Update(ctx context.Context, h *model.Habit) (bool, error) {
	query := `
        UPDATE habits
        SET name = $1, scheduled_days = $2, tags = $3, updated_at = NOW()
        WHERE id = $4
    `
	tag, err := r.db.Exec(ctx, query,
		h.Name,
		model.FormatWeekdays(h.ScheduledDays),
		strings.Join(h.Tags, ","),
		h.ID,
	)
	if err != nil {
		r.logger.Error("Failed to update habit", zap.Int("id", h.ID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a habit; its completion records go with it via the
// ON DELETE CASCADE foreign key.
func (r *HabitRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM habits WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete habit", zap.Int("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (*model.Habit, error) {
	var (
		h       model.Habit
		daysRaw string
		tagsRaw string
	)
	if err := row.Scan(
		&h.ID,
		&h.UserID,
		&h.Name,
		&daysRaw,
		&tagsRaw,
		&h.CreatedAt,
		&h.UpdatedAt,
	); err != nil {
		return nil, err
	}

	days, err := model.SplitWeekdays(daysRaw)
	if err != nil {
		return nil, err
	}
	h.ScheduledDays = days

	if tagsRaw != "" {
		h.Tags = strings.Split(tagsRaw, ",")
	}
	return &h, nil
}
