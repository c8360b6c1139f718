package daystate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay_Transitions(t *testing.T) {
	day := NewDay("2025-06-10", false)
	assert.Equal(t, PhaseOpen, day.Phase)

	closing, err := day.BeginClose()
	require.NoError(t, err)
	assert.Equal(t, PhaseClosing, closing.Phase)
	assert.Equal(t, PhaseOpen, day.Phase, "transitions return a new value")

	reopened, err := closing.AbortClose()
	require.NoError(t, err)
	assert.Equal(t, PhaseOpen, reopened.Phase)

	closed, err := closing.CompleteClose()
	require.NoError(t, err)
	assert.Equal(t, PhaseClosed, closed.Phase)
}

func TestDay_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name  string
		day   Day
		apply func(Day) (Day, error)
	}{
		{name: "complete an open day", day: NewDay("d", false), apply: Day.CompleteClose},
		{name: "abort an open day", day: NewDay("d", false), apply: Day.AbortClose},
		{name: "close twice", day: Day{Date: "d", Phase: PhaseClosing}, apply: Day.BeginClose},
		{name: "reopen a closed day", day: NewDay("d", true), apply: Day.AbortClose},
		{name: "begin closing a closed day", day: NewDay("d", true), apply: Day.BeginClose},
		{name: "complete a closed day", day: NewDay("d", true), apply: Day.CompleteClose},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.apply(tt.day)
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, tt.day, got)
		})
	}
}
