package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/at-ishikawa/habitday/internal/daystate"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	periodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Strikethrough(true)

	urgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	cardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Width(40).
			Align(lipgloss.Center)

	allDoneStyle = cardStyle.
			BorderForeground(lipgloss.Color("42")).
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Italic(true)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)

var periodTitles = map[daystate.Period]string{
	daystate.Morning:   "Morning",
	daystate.Afternoon: "Afternoon",
	daystate.Evening:   "Evening",
}

func (m Model) View() string {
	if !m.loaded {
		if m.err != nil {
			return docStyle.Render(errorStyle.Render("failed to load: "+m.err.Error()) + "\n\n" + helpStyle.Render("r reload • q quit"))
		}
		return docStyle.Render("Loading...")
	}

	v := m.view
	sections := []string{
		titleStyle.Render(fmt.Sprintf("%s  %s  %s", v.Day.Date, v.Now.Format("15:04"), v.Day.Phase)),
		m.carousel(),
		progressLine(v.Progress),
	}
	for _, p := range v.Periods {
		sections = append(sections, periodBlock(p))
	}
	if m.err != nil {
		sections = append(sections, errorStyle.Render("reload failed: "+m.err.Error()))
	}
	sections = append(sections, helpStyle.Render("r reload • q quit"))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) carousel() string {
	upcoming := m.view.Upcoming
	if len(upcoming) == 0 {
		return allDoneStyle.Render("All done for today!")
	}
	h := upcoming[m.index%len(upcoming)]
	left := "in " + h.Countdown
	if h.Urgent {
		left = urgentStyle.Render(left)
	}
	position := fmt.Sprintf("%d/%d", m.index%len(upcoming)+1, len(upcoming))
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		fmt.Sprintf("%s  %s", h.Time, h.Title),
		left,
		helpStyle.Render(position),
	))
}

func progressLine(p daystate.Progress) string {
	const width = 30
	filled := min(max(int(p.Daily/100*width), 0), width)
	return fmt.Sprintf("[%s%s] %.0f%% (%d/%d)  year %.1f%%",
		strings.Repeat("█", filled), strings.Repeat("░", width-filled),
		p.Daily, p.Completed, p.Total, p.Annual)
}

func periodBlock(p daystate.PeriodView) string {
	lines := []string{periodStyle.Render(periodTitles[p.Period])}
	if len(p.Habits) == 0 {
		lines = append(lines, helpStyle.Render("  no habits"))
	}
	for _, h := range p.Habits {
		line := fmt.Sprintf("  %s %s", h.Time, h.Title)
		switch {
		case h.Completed:
			line = doneStyle.Render(line)
		case h.Urgent:
			line += "  " + urgentStyle.Render(h.Countdown)
		}
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
