package daystate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/habitday/internal/habit"
	"github.com/at-ishikawa/habitday/internal/note"
)

func TestBuildSnapshot(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	now := time.Date(2025, 3, 10, 21, 0, 0, 0, loc)
	doneAt := time.Date(2025, 3, 10, 7, 3, 0, 0, loc)

	habits := []habit.Habit{
		{ID: 1, Title: "Run", Time: habit.MustClockTime("07:00"), Completed: true, CompletedAt: &doneAt},
		{ID: 2, Title: "Read", Time: habit.MustClockTime("22:00")},
	}
	notes := []note.Note{
		// 00:10 local on the same date, stored in UTC
		{ID: 1, Content: "early", CreatedAt: time.Date(2025, 3, 10, 3, 10, 0, 0, time.UTC)},
		// 23:59 local the day before, under 24h ago
		{ID: 2, Content: "yesterday", CreatedAt: time.Date(2025, 3, 10, 2, 59, 0, 0, time.UTC)},
		{ID: 3, Content: "tonight", CreatedAt: time.Date(2025, 3, 10, 20, 30, 0, 0, loc)},
		// next calendar day
		{ID: 4, Content: "tomorrow", CreatedAt: time.Date(2025, 3, 11, 0, 5, 0, 0, loc)},
	}

	got := BuildSnapshot(habits, notes, now)

	assert.Equal(t, "2025-03-10", got.Date)
	assert.Equal(t, now, got.CompletedAt)
	assert.Equal(t, []habit.CompletedHabit{
		{ID: 1, Title: "Run", Time: habit.MustClockTime("07:00"), CompletedAt: &doneAt},
	}, got.Habits)
	var ids []int64
	for _, n := range got.Notes {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []int64{1, 3}, ids)
}

func TestBuildSnapshot_Empty(t *testing.T) {
	got := BuildSnapshot(nil, nil, at(12, 0))
	assert.Equal(t, "2025-06-10", got.Date)
	assert.NotNil(t, got.Habits)
	assert.Empty(t, got.Habits)
	assert.NotNil(t, got.Notes)
	assert.Empty(t, got.Notes)
}
