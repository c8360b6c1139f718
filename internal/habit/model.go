// Package habit provides habit and checkmark models and their storage.
package habit

import "time"

// Habit is a recurring daily action. Completed and CompletedAt reflect the
// checkmark of the day the habit was loaded for.
type Habit struct {
	ID          int64      `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	Time        ClockTime  `db:"time" json:"time"`
	Completed   bool       `db:"completed" json:"completed"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// Checkmark records whether a habit was completed on a date. There is at most
// one checkmark per habit and date.
type Checkmark struct {
	ID          int64      `db:"id"`
	HabitID     int64      `db:"habit_id"`
	Date        string     `db:"date"`
	Completed   bool       `db:"completed"`
	CompletedAt *time.Time `db:"completed_at"`
}

// CompletedHabit is a habit as it appears in a closed day's record.
type CompletedHabit struct {
	ID          int64      `db:"id" json:"id" yaml:"id"`
	Title       string     `db:"title" json:"title" yaml:"title"`
	Time        ClockTime  `db:"time" json:"time" yaml:"time"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at" yaml:"completed_at"`
}
