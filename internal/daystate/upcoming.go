package daystate

import (
	"sort"
	"time"

	"github.com/at-ishikawa/habitday/internal/habit"
)

// DefaultUpcomingLimit is the number of upcoming habits shown by default.
const DefaultUpcomingLimit = 3

// SelectUpcoming returns the pending habits scheduled later today than now,
// earliest first, at most limit of them. A non-positive limit uses
// DefaultUpcomingLimit. An empty result means everything left for today is done.
func SelectUpcoming(habits []habit.Habit, now time.Time, limit int) []habit.Habit {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}
	current := habit.Of(now).MinuteOfDay()

	upcoming := []habit.Habit{}
	for _, h := range habits {
		if h.Completed || h.Time.MinuteOfDay() <= current {
			continue
		}
		upcoming = append(upcoming, h)
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Time.MinuteOfDay() < upcoming[j].Time.MinuteOfDay()
	})
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}
