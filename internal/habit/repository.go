package habit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/habitday/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/habit/mock_repository.go -package=mock_habit

// HabitRepository defines operations for managing habits.
type HabitRepository interface {
	// FindAll returns every habit with its completion state on date.
	FindAll(ctx context.Context, date string) ([]Habit, error)
	// FindByID returns nil when the habit does not exist.
	FindByID(ctx context.Context, id int64, date string) (*Habit, error)
	Create(ctx context.Context, h *Habit) error
	Update(ctx context.Context, h *Habit) error
	// Delete removes the habit together with all of its checkmarks.
	Delete(ctx context.Context, id int64) error
}

// CheckmarkRepository defines operations for managing daily checkmarks.
type CheckmarkRepository interface {
	// Mark sets the checkmark of a habit on date. A nil completed toggles the
	// stored state, a missing checkmark counting as not completed.
	Mark(ctx context.Context, habitID int64, date string, completed *bool, at time.Time) (*Checkmark, error)
	DeleteByDate(ctx context.Context, date string) error
	FindCompleted(ctx context.Context, date string) ([]CompletedHabit, error)
}

const selectHabitsForDate = `SELECT h.id, h.title, h.description, h.time, h.created_at, h.updated_at,
	COALESCE(c.completed, 0) AS completed, c.completed_at
FROM habits h
LEFT JOIN checkmarks c ON c.habit_id = h.id AND c.date = ?`

// DBHabitRepository implements HabitRepository and CheckmarkRepository with sqlx.
type DBHabitRepository struct {
	db *sqlx.DB
}

// NewDBHabitRepository creates a new DBHabitRepository.
func NewDBHabitRepository(db *sqlx.DB) *DBHabitRepository {
	return &DBHabitRepository{db: db}
}

func (r *DBHabitRepository) FindAll(ctx context.Context, date string) ([]Habit, error) {
	habits := []Habit{}
	if err := r.db.SelectContext(ctx, &habits, selectHabitsForDate+" ORDER BY h.id", date); err != nil {
		return nil, fmt.Errorf("db.SelectContext(habits) > %w", err)
	}
	return habits, nil
}

func (r *DBHabitRepository) FindByID(ctx context.Context, id int64, date string) (*Habit, error) {
	var h Habit
	err := r.db.GetContext(ctx, &h, selectHabitsForDate+" WHERE h.id = ?", date, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(habit %d) > %w", id, err)
	}
	return &h, nil
}

func (r *DBHabitRepository) Create(ctx context.Context, h *Habit) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO habits (title, description, time, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		h.Title, h.Description, h.Time, h.CreatedAt, h.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert habit) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	h.ID = id
	return nil
}

func (r *DBHabitRepository) Update(ctx context.Context, h *Habit) error {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE habits SET title = ?, description = ?, time = ?, updated_at = ? WHERE id = ?",
		h.Title, h.Description, h.Time, h.UpdatedAt, h.ID,
	); err != nil {
		return fmt.Errorf("db.ExecContext(update habit %d) > %w", h.ID, err)
	}
	return nil
}

func (r *DBHabitRepository) Delete(ctx context.Context, id int64) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM checkmarks WHERE habit_id = ?", id); err != nil {
			return fmt.Errorf("tx.ExecContext(delete checkmarks of habit %d) > %w", id, err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM habits WHERE id = ?", id); err != nil {
			return fmt.Errorf("tx.ExecContext(delete habit %d) > %w", id, err)
		}
		return nil
	})
}

func (r *DBHabitRepository) Mark(ctx context.Context, habitID int64, date string, completed *bool, at time.Time) (*Checkmark, error) {
	var result *Checkmark
	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		var existing Checkmark
		err := tx.GetContext(ctx, &existing,
			"SELECT id, habit_id, date, completed, completed_at FROM checkmarks WHERE habit_id = ? AND date = ?",
			habitID, date)
		found := true
		if errors.Is(err, sql.ErrNoRows) {
			found = false
		} else if err != nil {
			return fmt.Errorf("tx.GetContext(checkmark) > %w", err)
		}

		next := Checkmark{ID: existing.ID, HabitID: habitID, Date: date}
		if completed != nil {
			next.Completed = *completed
		} else {
			next.Completed = !existing.Completed
		}
		if next.Completed {
			stamp := at
			next.CompletedAt = &stamp
		}

		if !found {
			res, err := tx.ExecContext(ctx,
				"INSERT INTO checkmarks (habit_id, date, completed, completed_at) VALUES (?, ?, ?, ?)",
				next.HabitID, next.Date, next.Completed, next.CompletedAt)
			if err != nil {
				return fmt.Errorf("tx.ExecContext(insert checkmark) > %w", err)
			}
			if next.ID, err = res.LastInsertId(); err != nil {
				return fmt.Errorf("result.LastInsertId() > %w", err)
			}
		} else if _, err := tx.ExecContext(ctx,
			"UPDATE checkmarks SET completed = ?, completed_at = ? WHERE id = ?",
			next.Completed, next.CompletedAt, next.ID); err != nil {
			return fmt.Errorf("tx.ExecContext(update checkmark %d) > %w", next.ID, err)
		}
		result = &next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *DBHabitRepository) DeleteByDate(ctx context.Context, date string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM checkmarks WHERE date = ?", date); err != nil {
		return fmt.Errorf("db.ExecContext(delete checkmarks of %s) > %w", date, err)
	}
	return nil
}

func (r *DBHabitRepository) FindCompleted(ctx context.Context, date string) ([]CompletedHabit, error) {
	habits := []CompletedHabit{}
	if err := r.db.SelectContext(ctx, &habits,
		`SELECT h.id, h.title, h.time, c.completed_at
FROM checkmarks c
JOIN habits h ON h.id = c.habit_id
WHERE c.date = ? AND c.completed = ?
ORDER BY h.id`, date, true); err != nil {
		return nil, fmt.Errorf("db.SelectContext(completed habits of %s) > %w", date, err)
	}
	return habits, nil
}
