// Package daystate derives the view of a day from a snapshot of habits and
// notes: period buckets, urgency, countdowns, upcoming habits, progress,
// statistics and the close-day snapshot. Every function is pure; callers
// pass the reference instant explicitly.
package daystate

import "github.com/at-ishikawa/habitday/internal/habit"

// Period is a time-of-day bucket.
type Period string

const (
	Morning   Period = "morning"
	Afternoon Period = "afternoon"
	Evening   Period = "evening"
)

// Periods lists the buckets in display order.
var Periods = []Period{Morning, Afternoon, Evening}

// Classify returns the bucket of a scheduled clock time.
// Hours before 05:00 belong to the previous evening.
func Classify(t habit.ClockTime) Period {
	switch {
	case t.Hour >= 5 && t.Hour < 12:
		return Morning
	case t.Hour >= 12 && t.Hour < 18:
		return Afternoon
	default:
		return Evening
	}
}

// Bucket is the habits of one period, in their input order.
type Bucket struct {
	Period Period        `json:"period"`
	Habits []habit.Habit `json:"habits"`
}

// GroupByPeriod partitions habits into the three periods. The partition is
// stable and every period is present, possibly empty.
func GroupByPeriod(habits []habit.Habit) []Bucket {
	index := make(map[Period]int, len(Periods))
	buckets := make([]Bucket, len(Periods))
	for i, p := range Periods {
		index[p] = i
		buckets[i] = Bucket{Period: p, Habits: []habit.Habit{}}
	}
	for _, h := range habits {
		i := index[Classify(h.Time)]
		buckets[i].Habits = append(buckets[i].Habits, h)
	}
	return buckets
}
