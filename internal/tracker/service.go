// Package tracker implements the use cases behind the habit tracking API.
package tracker

import (
	"time"

	"github.com/at-ishikawa/habitday/internal/daycompletion"
	"github.com/at-ishikawa/habitday/internal/habit"
	"github.com/at-ishikawa/habitday/internal/note"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 200
)

// Service evaluates every request against "today" in its location.
type Service struct {
	habits      habit.HabitRepository
	checkmarks  habit.CheckmarkRepository
	notes       note.NoteRepository
	completions daycompletion.DayCompletionRepository
	loc         *time.Location
	clock       func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// NewService creates a Service. A nil loc means time.Local.
func NewService(
	habits habit.HabitRepository,
	checkmarks habit.CheckmarkRepository,
	notes note.NoteRepository,
	completions daycompletion.DayCompletionRepository,
	loc *time.Location,
	opts ...Option,
) *Service {
	if loc == nil {
		loc = time.Local
	}
	s := &Service{
		habits:      habits,
		checkmarks:  checkmarks,
		notes:       notes,
		completions: completions,
		loc:         loc,
		clock:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Location returns the timezone "today" is evaluated in.
func (s *Service) Location() *time.Location {
	return s.loc
}

func (s *Service) now() time.Time {
	return s.clock().In(s.loc)
}

func (s *Service) today() string {
	return s.now().Format(habit.DateLayout)
}

func (s *Service) localHabit(h *habit.Habit) {
	h.CreatedAt = h.CreatedAt.In(s.loc)
	h.UpdatedAt = h.UpdatedAt.In(s.loc)
	if h.CompletedAt != nil {
		t := h.CompletedAt.In(s.loc)
		h.CompletedAt = &t
	}
}

func (s *Service) localNote(n *note.Note) {
	n.CreatedAt = n.CreatedAt.In(s.loc)
	n.UpdatedAt = n.UpdatedAt.In(s.loc)
}

// dayBounds returns the first instant of date and of the following date in s.loc.
func (s *Service) dayBounds(date string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(habit.DateLayout, date, s.loc)
	if err != nil {
		return time.Time{}, time.Time{}, invalid("date", "must be YYYY-MM-DD")
	}
	return start, start.AddDate(0, 0, 1), nil
}
