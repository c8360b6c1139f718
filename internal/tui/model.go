// Package tui implements the watch screen: the day view reloaded on a timer
// with a carousel over the upcoming habits.
package tui

import (
	"context"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/at-ishikawa/habitday/internal/daystate"
)

// LoadFunc fetches fresh data and derives the view of the current instant.
type LoadFunc func(ctx context.Context) (daystate.View, error)

type viewLoadedMsg struct {
	view daystate.View
	err  error
}

type refreshTickMsg time.Time

// carouselTickMsg advances the carousel. Ticks from an older generation are dropped.
type carouselTickMsg struct {
	generation int
}

// Model is the watch program state.
type Model struct {
	ctx              context.Context
	load             LoadFunc
	refreshInterval  time.Duration
	carouselInterval time.Duration

	view     daystate.View
	loaded   bool
	err      error
	upcoming []int64

	index      int
	generation int
}

func New(ctx context.Context, load LoadFunc, refreshInterval, carouselInterval time.Duration) Model {
	return Model{
		ctx:              ctx,
		load:             load,
		refreshInterval:  refreshInterval,
		carouselInterval: carouselInterval,
	}
}

// Run starts the watch program and blocks until the user quits or ctx ends.
func Run(ctx context.Context, load LoadFunc, refreshInterval, carouselInterval time.Duration) error {
	_, err := tea.NewProgram(
		New(ctx, load, refreshInterval, carouselInterval),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	).Run()
	return err
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		view, err := m.load(m.ctx)
		return viewLoadedMsg{view: view, err: err}
	}
}

func (m Model) refreshTick() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

func (m Model) carouselTick() tea.Cmd {
	generation := m.generation
	return tea.Tick(m.carouselInterval, func(time.Time) tea.Msg {
		return carouselTickMsg{generation: generation}
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.refreshTick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.loadCmd()
		}

	case refreshTickMsg:
		return m, tea.Batch(m.loadCmd(), m.refreshTick())

	case viewLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m.apply(msg.view)

	case carouselTickMsg:
		if msg.generation != m.generation || len(m.view.Upcoming) < 2 {
			return m, nil
		}
		m.index = (m.index + 1) % len(m.view.Upcoming)
		return m, m.carouselTick()
	}
	return m, nil
}

// apply replaces the view. A different upcoming list restarts the carousel.
func (m Model) apply(view daystate.View) (tea.Model, tea.Cmd) {
	ids := make([]int64, 0, len(view.Upcoming))
	for _, h := range view.Upcoming {
		ids = append(ids, h.ID)
	}

	m.view = view
	m.err = nil
	first := !m.loaded
	m.loaded = true
	if !first && slices.Equal(ids, m.upcoming) {
		return m, nil
	}

	m.upcoming = ids
	m.generation++
	m.index = 0
	if len(ids) < 2 {
		return m, nil
	}
	return m, m.carouselTick()
}
