package daystate

import (
	"time"

	"github.com/at-ishikawa/habitday/internal/habit"
)

// daysInYear is 31 days of December plus 364. The annual bar has always
// been scaled by this value and its output is kept as is.
const daysInYear = 31 + 364

// Progress is the completion state of a day.
type Progress struct {
	Completed   int     `json:"completed"`
	Total       int     `json:"total"`
	Daily       float64 `json:"daily"`
	Annual      float64 `json:"annual"`
	CanCloseDay bool    `json:"can_close_day"`
}

// DailyProgress returns the percentage of completed habits, 0 for none.
func DailyProgress(habits []habit.Habit) float64 {
	completed, total := countCompleted(habits)
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

// AnnualProgress damps daily by the fraction of the year elapsed before ref.
// It is 0 on January 1st.
func AnnualProgress(daily float64, ref time.Time) float64 {
	daysPassed := ref.YearDay() - 1
	return float64(daysPassed) / daysInYear * daily
}

// CanCloseDay reports whether there is at least one habit and all are completed.
func CanCloseDay(habits []habit.Habit) bool {
	completed, total := countCompleted(habits)
	return total > 0 && completed == total
}

// ComputeProgress aggregates every progress figure for habits at now.
func ComputeProgress(habits []habit.Habit, now time.Time) Progress {
	completed, total := countCompleted(habits)
	daily := DailyProgress(habits)
	return Progress{
		Completed:   completed,
		Total:       total,
		Daily:       daily,
		Annual:      AnnualProgress(daily, now),
		CanCloseDay: CanCloseDay(habits),
	}
}

func countCompleted(habits []habit.Habit) (completed, total int) {
	for _, h := range habits {
		if h.Completed {
			completed++
		}
	}
	return completed, len(habits)
}
