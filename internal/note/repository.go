// Package note provides free-text day notes and their storage.
package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/note/mock_repository.go -package=mock_note

// Note is a free-text annotation. It is not tied to any habit.
type Note struct {
	ID        int64     `db:"id" json:"id" yaml:"id"`
	Content   string    `db:"content" json:"content" yaml:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at" yaml:"-"`
}

// NoteRepository defines operations for managing notes.
type NoteRepository interface {
	// FindAll returns every note, newest first.
	FindAll(ctx context.Context) ([]Note, error)
	// FindByID returns nil when the note does not exist.
	FindByID(ctx context.Context, id int64) (*Note, error)
	// FindCreatedBetween returns notes with start <= created_at < end, oldest first.
	FindCreatedBetween(ctx context.Context, start, end time.Time) ([]Note, error)
	Create(ctx context.Context, n *Note) error
	Update(ctx context.Context, n *Note) error
	Delete(ctx context.Context, id int64) error
}

// DBNoteRepository implements NoteRepository with sqlx.
type DBNoteRepository struct {
	db *sqlx.DB
}

// NewDBNoteRepository creates a new DBNoteRepository.
func NewDBNoteRepository(db *sqlx.DB) *DBNoteRepository {
	return &DBNoteRepository{db: db}
}

func (r *DBNoteRepository) FindAll(ctx context.Context) ([]Note, error) {
	notes := []Note{}
	if err := r.db.SelectContext(ctx, &notes,
		"SELECT id, content, created_at, updated_at FROM notes ORDER BY created_at DESC, id DESC"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(notes) > %w", err)
	}
	return notes, nil
}

func (r *DBNoteRepository) FindByID(ctx context.Context, id int64) (*Note, error) {
	var n Note
	err := r.db.GetContext(ctx, &n, "SELECT id, content, created_at, updated_at FROM notes WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(note %d) > %w", id, err)
	}
	return &n, nil
}

func (r *DBNoteRepository) FindCreatedBetween(ctx context.Context, start, end time.Time) ([]Note, error) {
	notes := []Note{}
	if err := r.db.SelectContext(ctx, &notes,
		"SELECT id, content, created_at, updated_at FROM notes WHERE created_at >= ? AND created_at < ? ORDER BY created_at, id",
		start.UTC(), end.UTC()); err != nil {
		return nil, fmt.Errorf("db.SelectContext(notes between) > %w", err)
	}
	return notes, nil
}

func (r *DBNoteRepository) Create(ctx context.Context, n *Note) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO notes (content, created_at, updated_at) VALUES (?, ?, ?)",
		n.Content, n.CreatedAt.UTC(), n.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert note) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	n.ID = id
	return nil
}

func (r *DBNoteRepository) Update(ctx context.Context, n *Note) error {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE notes SET content = ?, updated_at = ? WHERE id = ?",
		n.Content, n.UpdatedAt.UTC(), n.ID); err != nil {
		return fmt.Errorf("db.ExecContext(update note %d) > %w", n.ID, err)
	}
	return nil
}

func (r *DBNoteRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id); err != nil {
		return fmt.Errorf("db.ExecContext(delete note %d) > %w", id, err)
	}
	return nil
}
