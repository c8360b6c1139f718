package tracker

import (
	"context"
	"strings"

	"github.com/at-ishikawa/habitday/internal/note"
)

// ListNotes returns every note, newest first.
func (s *Service) ListNotes(ctx context.Context) ([]note.Note, error) {
	notes, err := s.notes.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range notes {
		s.localNote(&notes[i])
	}
	return notes, nil
}

// CreateNote stores a note created now.
func (s *Service) CreateNote(ctx context.Context, content string) (*note.Note, error) {
	content, err := validateContent(content)
	if err != nil {
		return nil, err
	}
	now := s.now()
	n := &note.Note{Content: content, CreatedAt: now, UpdatedAt: now}
	if err := s.notes.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// UpdateNote replaces the content of note id.
func (s *Service) UpdateNote(ctx context.Context, id int64, content string) (*note.Note, error) {
	content, err := validateContent(content)
	if err != nil {
		return nil, err
	}
	n, err := s.notes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, notFound("note", id)
	}
	n.Content = content
	n.UpdatedAt = s.now()
	if err := s.notes.Update(ctx, n); err != nil {
		return nil, err
	}
	s.localNote(n)
	return n, nil
}

// DeleteNote removes note id.
func (s *Service) DeleteNote(ctx context.Context, id int64) error {
	n, err := s.notes.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if n == nil {
		return notFound("note", id)
	}
	return s.notes.Delete(ctx, id)
}

func validateContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", invalid("content", "is required")
	}
	return content, nil
}
