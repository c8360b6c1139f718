package tracker

import (
	"context"
	"log/slog"

	"github.com/at-ishikawa/habitday/internal/daycompletion"
	"github.com/at-ishikawa/habitday/internal/daystate"
	"github.com/at-ishikawa/habitday/internal/habit"
)

// CloseDay records today as completed. Every habit must be checked and the
// day must not be closed yet.
func (s *Service) CloseDay(ctx context.Context) (*daycompletion.DayCompletion, error) {
	now := s.now()
	today := now.Format(habit.DateLayout)

	habits, err := s.habits.FindAll(ctx, today)
	if err != nil {
		return nil, err
	}
	if len(habits) == 0 {
		return nil, ErrNoHabits
	}
	if !daystate.CanCloseDay(habits) {
		return nil, ErrHabitsIncomplete
	}

	existing, err := s.completions.FindByDate(ctx, today)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDayAlreadyClosed
	}

	dc := &daycompletion.DayCompletion{Date: today, CompletedAt: now}
	if err := s.completions.Create(ctx, dc); err != nil {
		return nil, err
	}
	slog.Default().InfoContext(ctx, "day closed", "date", today, "habits", len(habits))
	return dc, nil
}

// ListDayCompletions returns every closed day ordered by date.
func (s *Service) ListDayCompletions(ctx context.Context) ([]daycompletion.DayCompletion, error) {
	completions, err := s.completions.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range completions {
		completions[i].CompletedAt = completions[i].CompletedAt.In(s.loc)
	}
	return completions, nil
}

// DayCompletionDetail returns the record of a closed date: its completed
// habits and the notes created on that local date.
func (s *Service) DayCompletionDetail(ctx context.Context, date string) (*daycompletion.Detail, error) {
	start, end, err := s.dayBounds(date)
	if err != nil {
		return nil, err
	}

	dc, err := s.completions.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if dc == nil {
		return nil, notFound("day completion", date)
	}

	habits, err := s.checkmarks.FindCompleted(ctx, date)
	if err != nil {
		return nil, err
	}
	for i := range habits {
		if habits[i].CompletedAt != nil {
			t := habits[i].CompletedAt.In(s.loc)
			habits[i].CompletedAt = &t
		}
	}

	notes, err := s.notes.FindCreatedBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	for i := range notes {
		s.localNote(&notes[i])
	}

	return &daycompletion.Detail{
		Date:        dc.Date,
		CompletedAt: dc.CompletedAt.In(s.loc),
		Habits:      habits,
		Notes:       notes,
	}, nil
}

// DeleteDayCompletion removes the record id. Checkmarks and notes of that
// date are kept.
func (s *Service) DeleteDayCompletion(ctx context.Context, id int64) error {
	dc, err := s.completions.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if dc == nil {
		return notFound("day completion", id)
	}
	return s.completions.Delete(ctx, id)
}
