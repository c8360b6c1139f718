// Package server exposes the tracker over a JSON REST API.
package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/at-ishikawa/habitday/internal/daycompletion"
	"github.com/at-ishikawa/habitday/internal/daystate"
	"github.com/at-ishikawa/habitday/internal/habit"
	"github.com/at-ishikawa/habitday/internal/note"
	"github.com/at-ishikawa/habitday/internal/tracker"
)

//go:generate mockgen -source=server.go -destination=../mocks/server/mock_server.go -package=mock_server

// Tracker is the set of use cases served by the API.
type Tracker interface {
	ListHabits(ctx context.Context) ([]habit.Habit, error)
	CreateHabit(ctx context.Context, in tracker.HabitInput) (*habit.Habit, error)
	UpdateHabit(ctx context.Context, id int64, patch tracker.HabitPatch) (*habit.Habit, error)
	DeleteHabit(ctx context.Context, id int64) error
	ResetHabits(ctx context.Context) error
	SetCheckmark(ctx context.Context, habitID int64, date string, completed *bool) (*habit.Checkmark, error)
	ListNotes(ctx context.Context) ([]note.Note, error)
	CreateNote(ctx context.Context, content string) (*note.Note, error)
	UpdateNote(ctx context.Context, id int64, content string) (*note.Note, error)
	DeleteNote(ctx context.Context, id int64) error
	CloseDay(ctx context.Context) (*daycompletion.DayCompletion, error)
	ListDayCompletions(ctx context.Context) ([]daycompletion.DayCompletion, error)
	DayCompletionDetail(ctx context.Context, date string) (*daycompletion.Detail, error)
	DeleteDayCompletion(ctx context.Context, id int64) error
	Today(ctx context.Context) (daystate.View, error)
}

// Pinger checks the database connection.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Options configures the router.
type Options struct {
	AllowedOrigins []string
	// Debug adds error details to 500 responses.
	Debug bool
}

// Handler serves the API routes.
type Handler struct {
	tracker Tracker
	db      Pinger
	debug   bool
}

// NewRouter builds the gin engine with every route and middleware.
func NewRouter(t Tracker, db Pinger, opts Options) (*gin.Engine, error) {
	if err := registerValidation(); err != nil {
		return nil, err
	}

	h := &Handler{tracker: t, db: db, debug: opts.Debug}

	r := gin.New()
	r.Use(
		requestIDMiddleware(),
		accessLogMiddleware(),
		recoveryMiddleware(),
		corsMiddleware(opts.AllowedOrigins),
	)

	r.GET("/healthz", h.health)

	api := r.Group("/api")
	{
		api.GET("/habits", h.listHabits)
		api.POST("/habits", h.createHabit)
		api.POST("/habits/reset", h.resetHabits)
		api.PUT("/habits/:id", h.updateHabit)
		api.DELETE("/habits/:id", h.deleteHabit)

		api.POST("/checkmarks", h.setCheckmark)

		api.GET("/notes", h.listNotes)
		api.POST("/notes", h.createNote)
		api.PUT("/notes/:id", h.updateNote)
		api.DELETE("/notes/:id", h.deleteNote)

		api.POST("/day-completion", h.closeDay)
		api.GET("/day-completions", h.listDayCompletions)
		api.GET("/day-completion/:date", h.dayCompletionDetail)
		api.DELETE("/day-completions/:id", h.deleteDayCompletion)

		api.GET("/today", h.today)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	return r, nil
}

func (h *Handler) health(c *gin.Context) {
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) today(c *gin.Context) {
	view, err := h.tracker.Today(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
