package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/at-ishikawa/habitday/internal/daystate"
	"github.com/at-ishikawa/habitday/internal/habit"
	"github.com/at-ishikawa/habitday/internal/tracker"
)

type habitResponse struct {
	habit.Habit
	Period daystate.Period `json:"period"`
}

type createHabitRequest struct {
	Title       string `json:"title" binding:"required,max=100"`
	Description string `json:"description" binding:"max=200"`
	Time        string `json:"time" binding:"required"`
}

type updateHabitRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=200"`
	Time        *string `json:"time"`
}

type checkmarkRequest struct {
	HabitID   int64  `json:"habit_id" binding:"required,gt=0"`
	Date      string `json:"date"`
	Completed *bool  `json:"completed"`
}

type checkmarkResponse struct {
	HabitID     int64      `json:"habit_id"`
	Date        string     `json:"date"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

func newHabitResponse(h habit.Habit) habitResponse {
	return habitResponse{Habit: h, Period: daystate.Classify(h.Time)}
}

func (h *Handler) listHabits(c *gin.Context) {
	habits, err := h.tracker.ListHabits(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	resp := make([]habitResponse, 0, len(habits))
	for _, hb := range habits {
		resp = append(resp, newHabitResponse(hb))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) createHabit(c *gin.Context) {
	var req createHabitRequest
	if !bindJSON(c, &req) {
		return
	}
	created, err := h.tracker.CreateHabit(c.Request.Context(), tracker.HabitInput{
		Title:       req.Title,
		Description: req.Description,
		Time:        req.Time,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, newHabitResponse(*created))
}

func (h *Handler) updateHabit(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	var req updateHabitRequest
	if !bindJSON(c, &req) {
		return
	}
	updated, err := h.tracker.UpdateHabit(c.Request.Context(), id, tracker.HabitPatch{
		Title:       req.Title,
		Description: req.Description,
		Time:        req.Time,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newHabitResponse(*updated))
}

func (h *Handler) deleteHabit(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	if err := h.tracker.DeleteHabit(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) resetHabits(c *gin.Context) {
	if err := h.tracker.ResetHabits(c.Request.Context()); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "habits reset"})
}

func (h *Handler) setCheckmark(c *gin.Context) {
	var req checkmarkRequest
	if !bindJSON(c, &req) {
		return
	}
	mark, err := h.tracker.SetCheckmark(c.Request.Context(), req.HabitID, req.Date, req.Completed)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, checkmarkResponse{
		HabitID:     mark.HabitID,
		Date:        mark.Date,
		Completed:   mark.Completed,
		CompletedAt: mark.CompletedAt,
	})
}
