package tracker

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a habit, note or day completion does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNoHabits is returned when closing a day without any habit.
	ErrNoHabits = errors.New("no habits found")
	// ErrHabitsIncomplete is returned when closing a day with a pending habit.
	ErrHabitsIncomplete = errors.New("not all habits are completed for today")
	// ErrDayAlreadyClosed is returned when closing a day twice.
	ErrDayAlreadyClosed = errors.New("day already completed")
)

// ValidationError reports invalid user input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func notFound(kind string, key any) error {
	return fmt.Errorf("%s %v: %w", kind, key, ErrNotFound)
}
