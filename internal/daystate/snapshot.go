package daystate

import (
	"time"

	"github.com/at-ishikawa/habitday/internal/daycompletion"
	"github.com/at-ishikawa/habitday/internal/habit"
	"github.com/at-ishikawa/habitday/internal/note"
)

// Snapshot is the data a view is derived from, as loaded at one point in time.
// Closed tells whether today was already closed.
type Snapshot struct {
	Habits []habit.Habit
	Notes  []note.Note
	Closed bool
}

// BuildSnapshot previews the record closing the day at now would produce:
// the completed habits and the notes created on now's calendar date.
// Dates are compared in now's location, so a note from 23:59 yesterday is
// excluded even though it is only minutes old.
func BuildSnapshot(habits []habit.Habit, notes []note.Note, now time.Time) daycompletion.Detail {
	today := now.Format(habit.DateLayout)
	detail := daycompletion.Detail{
		Date:        today,
		CompletedAt: now,
		Habits:      []habit.CompletedHabit{},
		Notes:       []note.Note{},
	}
	for _, h := range habits {
		if !h.Completed {
			continue
		}
		detail.Habits = append(detail.Habits, habit.CompletedHabit{
			ID:          h.ID,
			Title:       h.Title,
			Time:        h.Time,
			CompletedAt: h.CompletedAt,
		})
	}
	for _, n := range notes {
		if n.CreatedAt.In(now.Location()).Format(habit.DateLayout) == today {
			detail.Notes = append(detail.Notes, n)
		}
	}
	return detail
}
