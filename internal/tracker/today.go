package tracker

import (
	"context"

	"github.com/at-ishikawa/habitday/internal/daystate"
	"github.com/at-ishikawa/habitday/internal/habit"
)

// Today derives the view of the current instant from freshly loaded data.
func (s *Service) Today(ctx context.Context) (daystate.View, error) {
	now := s.now()
	today := now.Format(habit.DateLayout)

	habits, err := s.ListHabits(ctx)
	if err != nil {
		return daystate.View{}, err
	}
	notes, err := s.ListNotes(ctx)
	if err != nil {
		return daystate.View{}, err
	}
	closed, err := s.completions.FindByDate(ctx, today)
	if err != nil {
		return daystate.View{}, err
	}

	return daystate.Build(daystate.Snapshot{
		Habits: habits,
		Notes:  notes,
		Closed: closed != nil,
	}, now), nil
}
