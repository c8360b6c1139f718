// Package cli implements the habitday terminal commands on top of the API client.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/at-ishikawa/habitday/internal/client"
	"github.com/at-ishikawa/habitday/internal/daycompletion"
	"github.com/at-ishikawa/habitday/internal/daystate"
	"github.com/at-ishikawa/habitday/internal/habit"
	"github.com/at-ishikawa/habitday/internal/note"
	"github.com/at-ishikawa/habitday/internal/report"
)

//go:generate mockgen -source=app.go -destination=../mocks/cli/mock_api.go -package=mock_cli API

// API is the server surface the commands use.
type API interface {
	CreateHabit(ctx context.Context, req client.HabitRequest) (*habit.Habit, error)
	UpdateHabit(ctx context.Context, id int64, req client.HabitUpdate) (*habit.Habit, error)
	DeleteHabit(ctx context.Context, id int64) error
	ResetHabits(ctx context.Context) error
	SetCheckmark(ctx context.Context, habitID int64, date string, completed *bool) (*client.Checkmark, error)
	ListNotes(ctx context.Context) ([]note.Note, error)
	CreateNote(ctx context.Context, content string) (*note.Note, error)
	UpdateNote(ctx context.Context, id int64, content string) (*note.Note, error)
	DeleteNote(ctx context.Context, id int64) error
	CloseDay(ctx context.Context) (*daycompletion.DayCompletion, error)
	ListDayCompletions(ctx context.Context) ([]daycompletion.DayCompletion, error)
	DayCompletionDetail(ctx context.Context, date string) (*daycompletion.Detail, error)
	DeleteDayCompletion(ctx context.Context, id int64) error
	Snapshot(ctx context.Context, date string) (daystate.Snapshot, error)
}

// App runs one command per call. Every mutation issues a single request and,
// when it succeeds, reloads and prints the day from fresh data.
type App struct {
	api           API
	confirm       Confirmer
	render        *Renderer
	out           io.Writer
	loc           *time.Location
	clock         func() time.Time
	upcomingLimit int
}

// Option customizes an App.
type Option func(*App)

// WithOutput redirects everything the app prints.
func WithOutput(w io.Writer) Option {
	return func(a *App) { a.out = w }
}

// WithClock replaces time.Now.
func WithClock(clock func() time.Time) Option {
	return func(a *App) { a.clock = clock }
}

// WithUpcomingLimit sets how many upcoming habits are listed.
func WithUpcomingLimit(n int) Option {
	return func(a *App) { a.upcomingLimit = n }
}

func NewApp(api API, confirm Confirmer, loc *time.Location, opts ...Option) *App {
	a := &App{
		api:           api,
		confirm:       confirm,
		out:           os.Stdout,
		loc:           loc,
		clock:         time.Now,
		upcomingLimit: daystate.DefaultUpcomingLimit,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.render = NewRenderer(a.out, loc)
	return a
}

func (a *App) now() time.Time {
	return a.clock().In(a.loc)
}

// Load fetches the canonical lists and derives the view of the current instant.
func (a *App) Load(ctx context.Context) (daystate.View, error) {
	now := a.now()
	snapshot, err := a.api.Snapshot(ctx, now.Format(habit.DateLayout))
	if err != nil {
		return daystate.View{}, fmt.Errorf("failed to load the day: %w", err)
	}
	return daystate.BuildWithLimit(snapshot, now, a.upcomingLimit), nil
}

// Today prints the current day.
func (a *App) Today(ctx context.Context) error {
	view, err := a.Load(ctx)
	if err != nil {
		return err
	}
	a.render.View(view)
	return nil
}

// Stats prints the completion charts.
func (a *App) Stats(ctx context.Context) error {
	view, err := a.Load(ctx)
	if err != nil {
		return err
	}
	a.render.Statistics(view.Statistics)
	return nil
}

func (a *App) approved(title string) (bool, error) {
	ok, err := a.confirm.Confirm(title)
	if err != nil {
		return false, err
	}
	if !ok {
		_, _ = fmt.Fprintln(a.out, "Cancelled.")
	}
	return ok, nil
}

func (a *App) reload(ctx context.Context) error {
	_, _ = fmt.Fprintln(a.out)
	return a.Today(ctx)
}

func (a *App) AddHabit(ctx context.Context, req client.HabitRequest) error {
	created, err := a.api.CreateHabit(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to add habit: %w", err)
	}
	slog.Debug("habit created", "id", created.ID)
	a.render.Message("Added habit %d %q at %s", created.ID, created.Title, created.Time)
	return a.reload(ctx)
}

func (a *App) EditHabit(ctx context.Context, id int64, req client.HabitUpdate) error {
	updated, err := a.api.UpdateHabit(ctx, id, req)
	if err != nil {
		return fmt.Errorf("failed to edit habit %d: %w", id, err)
	}
	a.render.Message("Updated habit %d %q at %s", updated.ID, updated.Title, updated.Time)
	return a.reload(ctx)
}

func (a *App) RemoveHabit(ctx context.Context, id int64) error {
	ok, err := a.approved(fmt.Sprintf("Delete habit %d and its history?", id))
	if err != nil || !ok {
		return err
	}
	if err := a.api.DeleteHabit(ctx, id); err != nil {
		return fmt.Errorf("failed to delete habit %d: %w", id, err)
	}
	a.render.Message("Deleted habit %d", id)
	return a.reload(ctx)
}

// MarkHabit sets today's completion of a habit. A nil completed toggles it.
func (a *App) MarkHabit(ctx context.Context, id int64, completed *bool) error {
	mark, err := a.api.SetCheckmark(ctx, id, a.now().Format(habit.DateLayout), completed)
	if err != nil {
		return fmt.Errorf("failed to update habit %d: %w", id, err)
	}
	if mark.Completed {
		a.render.Message("Habit %d done", id)
	} else {
		a.render.Message("Habit %d not done", id)
	}
	return a.reload(ctx)
}

func (a *App) ResetHabits(ctx context.Context) error {
	ok, err := a.approved("Mark every habit as not done for today?")
	if err != nil || !ok {
		return err
	}
	if err := a.api.ResetHabits(ctx); err != nil {
		return fmt.Errorf("failed to reset habits: %w", err)
	}
	a.render.Message("Reset today's habits")
	return a.reload(ctx)
}

func (a *App) ListNotes(ctx context.Context) error {
	notes, err := a.api.ListNotes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}
	a.render.Notes(notes)
	return nil
}

func (a *App) AddNote(ctx context.Context, content string) error {
	created, err := a.api.CreateNote(ctx, content)
	if err != nil {
		return fmt.Errorf("failed to add note: %w", err)
	}
	a.render.Message("Added note %d", created.ID)
	return a.ListNotes(ctx)
}

func (a *App) EditNote(ctx context.Context, id int64, content string) error {
	if _, err := a.api.UpdateNote(ctx, id, content); err != nil {
		return fmt.Errorf("failed to edit note %d: %w", id, err)
	}
	a.render.Message("Updated note %d", id)
	return a.ListNotes(ctx)
}

func (a *App) RemoveNote(ctx context.Context, id int64) error {
	ok, err := a.approved(fmt.Sprintf("Delete note %d?", id))
	if err != nil || !ok {
		return err
	}
	if err := a.api.DeleteNote(ctx, id); err != nil {
		return fmt.Errorf("failed to delete note %d: %w", id, err)
	}
	a.render.Message("Deleted note %d", id)
	return a.ListNotes(ctx)
}

// CloseDay closes today and prints the record built from the view loaded
// before the command.
func (a *App) CloseDay(ctx context.Context) error {
	view, err := a.Load(ctx)
	if err != nil {
		return err
	}
	day, err := view.Day.BeginClose()
	if err != nil {
		return fmt.Errorf("cannot close %s: %w", view.Day.Date, err)
	}

	ok, err := a.approved(fmt.Sprintf("Close %s?", day.Date))
	if err != nil || !ok {
		return err
	}

	if _, err := a.api.CloseDay(ctx); err != nil {
		day, _ = day.AbortClose()
		slog.Debug("close day failed", "date", day.Date, "phase", day.Phase, "error", err)
		return fmt.Errorf("failed to close %s: %w", day.Date, err)
	}
	day, err = day.CompleteClose()
	if err != nil {
		return err
	}

	a.render.Message("Closed %s", day.Date)
	_, _ = fmt.Fprintln(a.out)
	a.render.Detail(view.Preview)
	return nil
}

func (a *App) History(ctx context.Context) error {
	completions, err := a.api.ListDayCompletions(ctx)
	if err != nil {
		return fmt.Errorf("failed to list closed days: %w", err)
	}
	a.render.History(completions)
	return nil
}

// ShowDay prints a closed day in format, and also writes it to pdfPath when set.
func (a *App) ShowDay(ctx context.Context, date string, format report.Format, pdfPath string) error {
	detail, err := a.api.DayCompletionDetail(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", date, err)
	}

	switch format {
	case report.FormatMarkdown:
		err = report.WriteMarkdown(a.out, *detail, a.loc)
	case report.FormatYAML:
		err = report.WriteYAML(a.out, *detail)
	default:
		a.render.Detail(*detail)
	}
	if err != nil {
		return err
	}

	if pdfPath != "" {
		path, err := report.WritePDF(pdfPath, *detail, a.loc)
		if err != nil {
			return err
		}
		a.render.Message("PDF written to %s", path)
	}
	return nil
}

func (a *App) RemoveDay(ctx context.Context, id int64) error {
	ok, err := a.approved(fmt.Sprintf("Delete closed day %d?", id))
	if err != nil || !ok {
		return err
	}
	if err := a.api.DeleteDayCompletion(ctx, id); err != nil {
		return fmt.Errorf("failed to delete closed day %d: %w", id, err)
	}
	a.render.Message("Deleted closed day %d", id)
	return a.History(ctx)
}
