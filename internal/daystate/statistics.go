package daystate

import (
	"time"

	"github.com/at-ishikawa/habitday/internal/habit"
)

// WeekdayPerformance is one bar pair of the weekly chart.
type WeekdayPerformance struct {
	Weekday   time.Weekday `json:"weekday"`
	Completed int          `json:"completed"`
	Total     int          `json:"total"`
}

// Statistics feeds the hourly and weekly charts.
type Statistics struct {
	HourlyCompletions [24]int               `json:"hourly_completions"`
	WeeklyPerformance [7]WeekdayPerformance `json:"weekly_performance"`
}

// HourlyCompletions counts completed habits by the hour of completed_at in loc.
func HourlyCompletions(habits []habit.Habit, loc *time.Location) [24]int {
	var hours [24]int
	for _, h := range habits {
		if h.Completed && h.CompletedAt != nil {
			hours[h.CompletedAt.In(loc).Hour()]++
		}
	}
	return hours
}

// WeeklyPerformance counts completions per weekday of completed_at, Sunday
// first. Every habit counts toward the total of now's weekday only, since
// habits carry the state of a single day.
func WeeklyPerformance(habits []habit.Habit, now time.Time) [7]WeekdayPerformance {
	var week [7]WeekdayPerformance
	for i := range week {
		week[i].Weekday = time.Weekday(i)
	}
	for _, h := range habits {
		if h.CompletedAt != nil {
			week[h.CompletedAt.In(now.Location()).Weekday()].Completed++
		}
		week[now.Weekday()].Total++
	}
	return week
}

// ComputeStatistics builds both charts for habits at now.
func ComputeStatistics(habits []habit.Habit, now time.Time) Statistics {
	return Statistics{
		HourlyCompletions: HourlyCompletions(habits, now.Location()),
		WeeklyPerformance: WeeklyPerformance(habits, now),
	}
}
