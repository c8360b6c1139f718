package daystate

import (
	"time"

	"github.com/at-ishikawa/habitday/internal/daycompletion"
	"github.com/at-ishikawa/habitday/internal/habit"
)

// HabitView is a habit annotated for display at a given instant.
type HabitView struct {
	habit.Habit
	Period   Period        `json:"period"`
	Urgent   bool          `json:"urgent"`
	TimeLeft time.Duration `json:"-"`
	// Countdown is TimeLeft as rendered text.
	Countdown string `json:"time_left"`
}

// PeriodView is a bucket of annotated habits.
type PeriodView struct {
	Period Period      `json:"period"`
	Habits []HabitView `json:"habits"`
}

// View is everything a renderer needs for one instant. It is never mutated;
// a reload builds a new one.
type View struct {
	Now        time.Time            `json:"now"`
	Day        Day                  `json:"day"`
	Periods    []PeriodView         `json:"periods"`
	Upcoming   []HabitView          `json:"upcoming"`
	AllDone    bool                 `json:"all_done"`
	Progress   Progress             `json:"progress"`
	Preview    daycompletion.Detail `json:"preview"`
	Statistics Statistics           `json:"statistics"`
}

// Build derives the view of s at now with the default upcoming limit.
func Build(s Snapshot, now time.Time) View {
	return BuildWithLimit(s, now, DefaultUpcomingLimit)
}

// BuildWithLimit is Build with a custom number of upcoming habits.
func BuildWithLimit(s Snapshot, now time.Time, limit int) View {
	buckets := GroupByPeriod(s.Habits)
	periods := make([]PeriodView, 0, len(buckets))
	for _, b := range buckets {
		pv := PeriodView{Period: b.Period, Habits: make([]HabitView, 0, len(b.Habits))}
		for _, h := range b.Habits {
			pv.Habits = append(pv.Habits, annotate(h, now))
		}
		periods = append(periods, pv)
	}

	selected := SelectUpcoming(s.Habits, now, limit)
	upcoming := make([]HabitView, 0, len(selected))
	for _, h := range selected {
		upcoming = append(upcoming, annotate(h, now))
	}

	return View{
		Now:        now,
		Day:        NewDay(now.Format(habit.DateLayout), s.Closed),
		Periods:    periods,
		Upcoming:   upcoming,
		AllDone:    len(upcoming) == 0,
		Progress:   ComputeProgress(s.Habits, now),
		Preview:    BuildSnapshot(s.Habits, s.Notes, now),
		Statistics: ComputeStatistics(s.Habits, now),
	}
}

func annotate(h habit.Habit, now time.Time) HabitView {
	left := TimeLeft(h, now)
	return HabitView{
		Habit:     h,
		Period:    Classify(h.Time),
		Urgent:    IsUrgent(h, now),
		TimeLeft:  left,
		Countdown: FormatTimeLeft(left),
	}
}
