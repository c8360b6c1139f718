// Package daycompletion provides closed-day records and their storage.
package daycompletion

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/habitday/internal/habit"
	"github.com/at-ishikawa/habitday/internal/note"
)

//go:generate mockgen -source=repository.go -destination=../mocks/daycompletion/mock_repository.go -package=mock_daycompletion

// DayCompletion marks a calendar date as closed. It is never edited.
type DayCompletion struct {
	ID          int64     `db:"id" json:"id"`
	Date        string    `db:"date" json:"date"`
	CompletedAt time.Time `db:"completed_at" json:"completed_at"`
}

// Detail is the historical record of a closed day.
type Detail struct {
	Date        string                 `json:"date" yaml:"date"`
	CompletedAt time.Time              `json:"completed_at" yaml:"completed_at"`
	Habits      []habit.CompletedHabit `json:"habits" yaml:"habits"`
	Notes       []note.Note            `json:"notes" yaml:"notes"`
}

// DayCompletionRepository defines operations for managing closed days.
type DayCompletionRepository interface {
	FindAll(ctx context.Context) ([]DayCompletion, error)
	// FindByDate returns nil when date was never closed.
	FindByDate(ctx context.Context, date string) (*DayCompletion, error)
	// FindByID returns nil when the record does not exist.
	FindByID(ctx context.Context, id int64) (*DayCompletion, error)
	Create(ctx context.Context, dc *DayCompletion) error
	Delete(ctx context.Context, id int64) error
}

// DBDayCompletionRepository implements DayCompletionRepository with sqlx.
type DBDayCompletionRepository struct {
	db *sqlx.DB
}

// NewDBDayCompletionRepository creates a new DBDayCompletionRepository.
func NewDBDayCompletionRepository(db *sqlx.DB) *DBDayCompletionRepository {
	return &DBDayCompletionRepository{db: db}
}

func (r *DBDayCompletionRepository) FindAll(ctx context.Context) ([]DayCompletion, error) {
	completions := []DayCompletion{}
	if err := r.db.SelectContext(ctx, &completions,
		"SELECT id, date, completed_at FROM day_completions ORDER BY date"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(day_completions) > %w", err)
	}
	return completions, nil
}

func (r *DBDayCompletionRepository) FindByDate(ctx context.Context, date string) (*DayCompletion, error) {
	return r.get(ctx, "SELECT id, date, completed_at FROM day_completions WHERE date = ?", date)
}

func (r *DBDayCompletionRepository) FindByID(ctx context.Context, id int64) (*DayCompletion, error) {
	return r.get(ctx, "SELECT id, date, completed_at FROM day_completions WHERE id = ?", id)
}

func (r *DBDayCompletionRepository) get(ctx context.Context, query string, arg any) (*DayCompletion, error) {
	var dc DayCompletion
	err := r.db.GetContext(ctx, &dc, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(day_completion %v) > %w", arg, err)
	}
	return &dc, nil
}

func (r *DBDayCompletionRepository) Create(ctx context.Context, dc *DayCompletion) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO day_completions (date, completed_at) VALUES (?, ?)",
		dc.Date, dc.CompletedAt)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert day_completion) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	dc.ID = id
	return nil
}

func (r *DBDayCompletionRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM day_completions WHERE id = ?", id); err != nil {
		return fmt.Errorf("db.ExecContext(delete day_completion %d) > %w", id, err)
	}
	return nil
}
