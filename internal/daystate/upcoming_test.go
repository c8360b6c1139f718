package daystate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/habitday/internal/habit"
)

func TestSelectUpcoming(t *testing.T) {
	h := func(id int64, clock string, completed bool) habit.Habit {
		return habit.Habit{ID: id, Time: habit.MustClockTime(clock), Completed: completed}
	}

	tests := []struct {
		name   string
		habits []habit.Habit
		limit  int
		want   []int64
	}{
		{name: "empty input", habits: nil, want: []int64{}},
		{
			name:   "all completed",
			habits: []habit.Habit{h(1, "11:00", true), h(2, "12:00", true)},
			want:   []int64{},
		},
		{
			name:   "drops completed and past, sorts ascending",
			habits: []habit.Habit{h(1, "20:00", false), h(2, "09:00", false), h(3, "11:00", false), h(4, "10:30", true)},
			want:   []int64{3, 1},
		},
		{
			name:   "habit at now is excluded",
			habits: []habit.Habit{h(1, "10:00", false), h(2, "10:01", false)},
			want:   []int64{2},
		},
		{
			name: "truncates to default limit",
			habits: []habit.Habit{
				h(1, "23:00", false), h(2, "11:00", false), h(3, "15:00", false), h(4, "13:00", false),
			},
			want: []int64{2, 4, 3},
		},
		{
			name:   "custom limit",
			habits: []habit.Habit{h(1, "23:00", false), h(2, "11:00", false), h(3, "15:00", false)},
			limit:  1,
			want:   []int64{2},
		},
		{
			name:   "ties keep input order",
			habits: []habit.Habit{h(5, "12:00", false), h(2, "12:00", false)},
			want:   []int64{5, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectUpcoming(tt.habits, at(10, 0), tt.limit)
			ids := []int64{}
			for _, g := range got {
				assert.False(t, g.Completed)
				ids = append(ids, g.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
