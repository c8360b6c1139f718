package tracker

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/at-ishikawa/habitday/internal/habit"
)

// HabitInput is the body of a create request.
type HabitInput struct {
	Title       string
	Description string
	Time        string
}

// HabitPatch is the body of an update request. Nil fields are left unchanged.
type HabitPatch struct {
	Title       *string
	Description *string
	Time        *string
}

// ListHabits returns every habit with today's completion state.
func (s *Service) ListHabits(ctx context.Context) ([]habit.Habit, error) {
	habits, err := s.habits.FindAll(ctx, s.today())
	if err != nil {
		return nil, err
	}
	for i := range habits {
		s.localHabit(&habits[i])
	}
	return habits, nil
}

// CreateHabit validates and stores a new habit.
func (s *Service) CreateHabit(ctx context.Context, in HabitInput) (*habit.Habit, error) {
	title, err := validateTitle(in.Title)
	if err != nil {
		return nil, err
	}
	description, err := validateDescription(in.Description)
	if err != nil {
		return nil, err
	}
	clock, err := validateTime(in.Time)
	if err != nil {
		return nil, err
	}

	now := s.now()
	h := &habit.Habit{
		Title:       title,
		Description: description,
		Time:        clock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.habits.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// UpdateHabit applies patch to the habit id.
func (s *Service) UpdateHabit(ctx context.Context, id int64, patch HabitPatch) (*habit.Habit, error) {
	h, err := s.habits.FindByID(ctx, id, s.today())
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, notFound("habit", id)
	}

	if patch.Title != nil {
		if h.Title, err = validateTitle(*patch.Title); err != nil {
			return nil, err
		}
	}
	if patch.Description != nil {
		if h.Description, err = validateDescription(*patch.Description); err != nil {
			return nil, err
		}
	}
	if patch.Time != nil {
		if h.Time, err = validateTime(*patch.Time); err != nil {
			return nil, err
		}
	}
	h.UpdatedAt = s.now()

	if err := s.habits.Update(ctx, h); err != nil {
		return nil, err
	}
	s.localHabit(h)
	return h, nil
}

// DeleteHabit removes a habit and its checkmarks.
func (s *Service) DeleteHabit(ctx context.Context, id int64) error {
	h, err := s.habits.FindByID(ctx, id, s.today())
	if err != nil {
		return err
	}
	if h == nil {
		return notFound("habit", id)
	}
	return s.habits.Delete(ctx, id)
}

// ResetHabits clears today's checkmarks. Closed days keep their records.
func (s *Service) ResetHabits(ctx context.Context) error {
	return s.checkmarks.DeleteByDate(ctx, s.today())
}

// SetCheckmark sets or, with a nil completed, toggles the checkmark of a
// habit on date. An empty date means today.
func (s *Service) SetCheckmark(ctx context.Context, habitID int64, date string, completed *bool) (*habit.Checkmark, error) {
	if date == "" {
		date = s.today()
	} else if _, _, err := s.dayBounds(date); err != nil {
		return nil, err
	}

	h, err := s.habits.FindByID(ctx, habitID, date)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, notFound("habit", habitID)
	}

	c, err := s.checkmarks.Mark(ctx, habitID, date, completed, s.now())
	if err != nil {
		return nil, err
	}
	return c, nil
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", invalid("title", "is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", invalid("title", fmt.Sprintf("must be at most %d characters", maxTitleLength))
	}
	return title, nil
}

func validateDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return "", invalid("description", fmt.Sprintf("must be at most %d characters", maxDescriptionLength))
	}
	return description, nil
}

func validateTime(value string) (habit.ClockTime, error) {
	clock, err := habit.ParseClockTime(strings.TrimSpace(value))
	if err != nil {
		return habit.ClockTime{}, invalid("time", "must be HH:MM")
	}
	return clock, nil
}
