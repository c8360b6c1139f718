package daystate

import (
	"fmt"
	"time"

	"github.com/at-ishikawa/habitday/internal/habit"
)

// UrgentWindow is how far ahead a habit counts as urgent.
const UrgentWindow = 60 // minutes

// IsUrgent reports whether h is due within the next hour of now.
// The comparison is by minute of day and does not wrap past midnight, so a
// 00:30 habit is not urgent at 23:50.
func IsUrgent(h habit.Habit, now time.Time) bool {
	d := h.Time.MinuteOfDay() - habit.Of(now).MinuteOfDay()
	return d > 0 && d <= UrgentWindow
}

// TimeLeft returns the duration until the next occurrence of h. A time at
// or before now rolls over to the same time tomorrow.
func TimeLeft(h habit.Habit, now time.Time) time.Duration {
	target := h.Time.On(now)
	if !target.After(now) {
		target = target.AddDate(0, 0, 1)
	}
	return target.Sub(now)
}

// FormatTimeLeft renders d as whole hours and minutes, "2h 5min" or "45min".
// Seconds are truncated.
func FormatTimeLeft(d time.Duration) string {
	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)
	if hours > 0 {
		return fmt.Sprintf("%dh %dmin", hours, minutes)
	}
	return fmt.Sprintf("%dmin", minutes)
}
