package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) closeDay(c *gin.Context) {
	dc, err := h.tracker.CloseDay(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dc)
}

func (h *Handler) listDayCompletions(c *gin.Context) {
	completions, err := h.tracker.ListDayCompletions(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, completions)
}

func (h *Handler) dayCompletionDetail(c *gin.Context) {
	detail, err := h.tracker.DayCompletionDetail(c.Request.Context(), c.Param("date"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) deleteDayCompletion(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	if err := h.tracker.DeleteDayCompletion(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
