package daystate

import (
	"errors"
	"fmt"
)

// Phase is the close-out state of a day.
type Phase string

const (
	// PhaseOpen accepts checkmark changes.
	PhaseOpen Phase = "open"
	// PhaseClosing has a close-day command in flight.
	PhaseClosing Phase = "closing"
	// PhaseClosed has its record persisted. It is terminal.
	PhaseClosed Phase = "closed"
)

// ErrInvalidTransition is returned for a phase change the lifecycle forbids.
var ErrInvalidTransition = errors.New("invalid day transition")

// Day tracks the phase of one calendar date.
type Day struct {
	Date  string `json:"date"`
	Phase Phase  `json:"phase"`
}

// NewDay returns the day for date, closed if a record for it already exists.
func NewDay(date string, closed bool) Day {
	if closed {
		return Day{Date: date, Phase: PhaseClosed}
	}
	return Day{Date: date, Phase: PhaseOpen}
}

// BeginClose moves an open day to closing.
func (d Day) BeginClose() (Day, error) {
	return d.transition(PhaseOpen, PhaseClosing)
}

// CompleteClose moves a closing day to closed.
func (d Day) CompleteClose() (Day, error) {
	return d.transition(PhaseClosing, PhaseClosed)
}

// AbortClose returns a closing day to open after a failed command.
func (d Day) AbortClose() (Day, error) {
	return d.transition(PhaseClosing, PhaseOpen)
}

func (d Day) transition(from, to Phase) (Day, error) {
	if d.Phase != from {
		return d, fmt.Errorf("%w: %s is %s, cannot move to %s", ErrInvalidTransition, d.Date, d.Phase, to)
	}
	d.Phase = to
	return d, nil
}
