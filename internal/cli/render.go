package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/at-ishikawa/habitday/internal/daycompletion"
	"github.com/at-ishikawa/habitday/internal/daystate"
	"github.com/at-ishikawa/habitday/internal/note"
)

const barWidth = 20

var periodLabels = map[daystate.Period]string{
	daystate.Morning:   "Morning",
	daystate.Afternoon: "Afternoon",
	daystate.Evening:   "Evening",
}

// Renderer writes views as colored terminal text.
type Renderer struct {
	w      io.Writer
	loc    *time.Location
	bold   *color.Color
	faint  *color.Color
	green  *color.Color
	red    *color.Color
	yellow *color.Color
}

func NewRenderer(w io.Writer, loc *time.Location) *Renderer {
	return &Renderer{
		w:      w,
		loc:    loc,
		bold:   color.New(color.Bold),
		faint:  color.New(color.Faint),
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
	}
}

func (r *Renderer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.w, format, args...)
}

// View prints the whole day: buckets, upcoming habits, progress and today's notes.
func (r *Renderer) View(v daystate.View) {
	r.printf("%s  %s\n", r.bold.Sprint(v.Day.Date), r.phase(v.Day.Phase))

	for _, p := range v.Periods {
		r.printf("\n%s\n", r.bold.Sprint(periodLabels[p.Period]))
		if len(p.Habits) == 0 {
			r.printf("  %s\n", r.faint.Sprint("no habits"))
			continue
		}
		for _, h := range p.Habits {
			r.habitLine(h)
		}
	}

	r.printf("\n%s\n", r.bold.Sprint("Up next"))
	if v.AllDone {
		r.printf("  %s\n", r.green.Sprint("All done for today!"))
	}
	for _, h := range v.Upcoming {
		r.printf("  %s %s  %s\n", h.Time, h.Title, r.countdown(h))
	}

	r.printf("\n")
	r.Progress(v.Progress)

	if len(v.Preview.Notes) > 0 {
		r.printf("\n%s\n", r.bold.Sprint("Notes"))
		for _, n := range v.Preview.Notes {
			r.printf("  %s %s\n", r.faint.Sprint(n.CreatedAt.In(r.loc).Format("15:04")), n.Content)
		}
	}
}

func (r *Renderer) habitLine(h daystate.HabitView) {
	mark := "[ ]"
	title := h.Title
	if h.Completed {
		mark = r.green.Sprint("[x]")
		title = r.faint.Sprint(h.Title)
	}
	line := fmt.Sprintf("  %s %3d  %s %s", mark, h.ID, h.Time, title)
	if h.Urgent && !h.Completed {
		line += "  " + r.countdown(h)
	}
	r.printf("%s\n", line)
}

func (r *Renderer) countdown(h daystate.HabitView) string {
	text := "in " + h.Countdown
	if h.Urgent {
		return r.red.Sprint(text)
	}
	return r.yellow.Sprint(text)
}

func (r *Renderer) phase(p daystate.Phase) string {
	switch p {
	case daystate.PhaseClosed:
		return r.green.Sprint("closed")
	case daystate.PhaseClosing:
		return r.yellow.Sprint("closing")
	}
	return r.faint.Sprint("open")
}

// Progress prints the daily and annual bars.
func (r *Renderer) Progress(p daystate.Progress) {
	r.printf("Today  %s %5.1f%% (%d/%d)\n", bar(p.Daily, barWidth), p.Daily, p.Completed, p.Total)
	r.printf("Year   %s %5.1f%%\n", bar(p.Annual, barWidth), p.Annual)
	if p.CanCloseDay {
		r.printf("%s\n", r.green.Sprint("Every habit is done. Run `habitday day close` to close the day."))
	}
}

// Statistics prints the hourly and weekday charts as text bars.
func (r *Renderer) Statistics(s daystate.Statistics) {
	r.printf("%s\n", r.bold.Sprint("Completions by hour"))
	peak := 0
	for _, n := range s.HourlyCompletions {
		peak = max(peak, n)
	}
	for hour, n := range s.HourlyCompletions {
		if n == 0 {
			continue
		}
		r.printf("  %02d:00 %s %d\n", hour, bar(float64(n)/float64(peak)*100, barWidth), n)
	}

	r.printf("\n%s\n", r.bold.Sprint("Completions by weekday"))
	for _, w := range s.WeeklyPerformance {
		pct := 0.0
		if w.Total > 0 {
			pct = float64(w.Completed) / float64(w.Total) * 100
		}
		r.printf("  %-3s %s %d/%d\n", w.Weekday.String()[:3], bar(pct, barWidth), w.Completed, w.Total)
	}
}

// Notes prints notes newest first with their ids.
func (r *Renderer) Notes(notes []note.Note) {
	if len(notes) == 0 {
		r.printf("%s\n", r.faint.Sprint("no notes"))
		return
	}
	for _, n := range notes {
		r.printf("%3d  %s  %s\n", n.ID, r.faint.Sprint(n.CreatedAt.In(r.loc).Format("2006-01-02 15:04")), n.Content)
	}
}

// History prints the closed days.
func (r *Renderer) History(completions []daycompletion.DayCompletion) {
	if len(completions) == 0 {
		r.printf("%s\n", r.faint.Sprint("no closed days"))
		return
	}
	for _, dc := range completions {
		r.printf("%3d  %s  %s\n", dc.ID, r.bold.Sprint(dc.Date), r.faint.Sprint("closed "+dc.CompletedAt.In(r.loc).Format("15:04")))
	}
}

// Detail prints a closed day's record.
func (r *Renderer) Detail(d daycompletion.Detail) {
	r.printf("%s\n", r.bold.Sprint(d.Date))
	if !d.CompletedAt.IsZero() {
		r.printf("%s\n", r.faint.Sprint("closed at "+d.CompletedAt.In(r.loc).Format("2006-01-02 15:04")))
	}

	r.printf("\n%s\n", r.bold.Sprint("Habits"))
	if len(d.Habits) == 0 {
		r.printf("  %s\n", r.faint.Sprint("none"))
	}
	for _, h := range d.Habits {
		done := ""
		if h.CompletedAt != nil {
			done = r.faint.Sprint(" done " + h.CompletedAt.In(r.loc).Format("15:04"))
		}
		r.printf("  %s %s %s%s\n", r.green.Sprint("[x]"), h.Time, h.Title, done)
	}

	r.printf("\n%s\n", r.bold.Sprint("Notes"))
	if len(d.Notes) == 0 {
		r.printf("  %s\n", r.faint.Sprint("none"))
	}
	for _, n := range d.Notes {
		r.printf("  %s %s\n", r.faint.Sprint(n.CreatedAt.In(r.loc).Format("15:04")), n.Content)
	}
}

// Message prints a one-line confirmation of a finished command.
func (r *Renderer) Message(format string, args ...any) {
	r.printf("%s\n", r.green.Sprintf(format, args...))
}

func bar(pct float64, width int) string {
	filled := int(pct / 100 * float64(width))
	filled = min(max(filled, 0), width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
