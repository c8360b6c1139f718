package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/habitday/internal/daystate"
	"github.com/at-ishikawa/habitday/internal/habit"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	c := New(server.URL)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestClient_ListHabits(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/habits", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"title":"Run","description":"","time":"07:00","completed":true,"completed_at":"2025-06-10T07:05:00Z","period":"morning"}]`))
	})

	got, err := c.ListHabits(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Run", got[0].Title)
	assert.Equal(t, habit.MustClockTime("07:00"), got[0].Time)
	assert.True(t, got[0].Completed)
	require.NotNil(t, got[0].CompletedAt)
	assert.Equal(t, time.Date(2025, 6, 10, 7, 5, 0, 0, time.UTC), got[0].CompletedAt.UTC())
}

func TestClient_CreateHabit(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body HabitRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, HabitRequest{Title: "Read", Description: "10 pages", Time: "21:00"}, body)
		writeJSON(t, w, http.StatusCreated, map[string]any{"id": 5, "title": "Read", "time": "21:00"})
	})

	got, err := c.CreateHabit(context.Background(), HabitRequest{Title: "Read", Description: "10 pages", Time: "21:00"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
}

func TestClient_UpdateHabit_SendsOnlySetFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/habits/5", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"time": "22:00"}, body)
		writeJSON(t, w, http.StatusOK, map[string]any{"id": 5, "title": "Read", "time": "22:00"})
	})

	newTime := "22:00"
	got, err := c.UpdateHabit(context.Background(), 5, HabitUpdate{Time: &newTime})
	require.NoError(t, err)
	assert.Equal(t, habit.MustClockTime("22:00"), got.Time)
}

func TestClient_SetCheckmark(t *testing.T) {
	tests := []struct {
		name      string
		completed *bool
		wantBody  map[string]any
	}{
		{
			name:      "explicit",
			completed: func() *bool { b := false; return &b }(),
			wantBody:  map[string]any{"habit_id": float64(3), "date": "2025-06-10", "completed": false},
		},
		{
			name:     "toggle",
			wantBody: map[string]any{"habit_id": float64(3), "date": "2025-06-10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/checkmarks", r.URL.Path)
				var body map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, tt.wantBody, body)
				writeJSON(t, w, http.StatusOK, map[string]any{"habit_id": 3, "date": "2025-06-10", "completed": true, "completed_at": nil})
			})

			got, err := c.SetCheckmark(context.Background(), 3, "2025-06-10", tt.completed)
			require.NoError(t, err)
			assert.True(t, got.Completed)
			assert.Nil(t, got.CompletedAt)
		})
	}
}

func TestClient_Deletes(t *testing.T) {
	var paths []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	ctx := context.Background()
	require.NoError(t, c.DeleteHabit(ctx, 1))
	require.NoError(t, c.DeleteNote(ctx, 2))
	require.NoError(t, c.DeleteDayCompletion(ctx, 3))
	require.NoError(t, c.ResetHabits(ctx))

	assert.Equal(t, []string{
		"DELETE /api/habits/1",
		"DELETE /api/notes/2",
		"DELETE /api/day-completions/3",
		"POST /api/habits/reset",
	}, paths)
}

func TestClient_Notes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(t, w, http.StatusOK, []map[string]any{{"id": 1, "content": "hi", "created_at": "2025-06-10T09:00:00Z"}})
		case http.MethodPost:
			writeJSON(t, w, http.StatusCreated, map[string]any{"id": 2, "content": "new"})
		case http.MethodPut:
			assert.Equal(t, "/api/notes/2", r.URL.Path)
			writeJSON(t, w, http.StatusOK, map[string]any{"id": 2, "content": "edited"})
		}
	})

	ctx := context.Background()
	notes, err := c.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "hi", notes[0].Content)

	created, err := c.CreateNote(ctx, "new")
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)

	updated, err := c.UpdateNote(ctx, 2, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
}

func TestClient_CloseDay_BusinessErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{name: "already closed", status: http.StatusConflict, body: `{"error":"day already completed"}`, wantMessage: "day already completed"},
		{name: "incomplete", status: http.StatusBadRequest, body: `{"error":"not all habits are completed for today"}`, wantMessage: "not all habits are completed for today"},
		{name: "no envelope", status: http.StatusBadGateway, body: `upstream down`, wantMessage: "Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			got, err := c.CloseDay(context.Background())
			assert.Nil(t, got)
			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, 1, calls, "a failed command is never retried")
		})
	}
}

func TestClient_DayCompletions(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/day-completions":
			writeJSON(t, w, http.StatusOK, []map[string]any{{"id": 1, "date": "2025-06-09", "completed_at": "2025-06-09T22:00:00Z"}})
		case "/api/day-completion/2025-06-09":
			writeJSON(t, w, http.StatusOK, map[string]any{
				"date":   "2025-06-09",
				"habits": []map[string]any{{"id": 1, "title": "Run", "time": "07:00"}},
				"notes":  []map[string]any{},
			})
		default:
			writeJSON(t, w, http.StatusNotFound, map[string]any{"error": "day completion 2025-06-08: not found"})
		}
	})

	ctx := context.Background()
	list, err := c.ListDayCompletions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "2025-06-09", list[0].Date)

	detail, err := c.DayCompletionDetail(ctx, "2025-06-09")
	require.NoError(t, err)
	require.Len(t, detail.Habits, 1)
	assert.Equal(t, "Run", detail.Habits[0].Title)

	_, err = c.DayCompletionDetail(ctx, "2025-06-08")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestClient_Snapshot(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/habits":
			writeJSON(t, w, http.StatusOK, []map[string]any{{"id": 1, "title": "Run", "time": "07:00"}})
		case "/api/notes":
			writeJSON(t, w, http.StatusOK, []map[string]any{})
		case "/api/day-completions":
			writeJSON(t, w, http.StatusOK, []map[string]any{{"id": 1, "date": "2025-06-10"}})
		}
	})

	snap, err := c.Snapshot(context.Background(), "2025-06-10")
	require.NoError(t, err)
	assert.Len(t, snap.Habits, 1)
	assert.Empty(t, snap.Notes)
	assert.True(t, snap.Closed)

	snap, err = c.Snapshot(context.Background(), "2025-06-11")
	require.NoError(t, err)
	assert.False(t, snap.Closed)
}

func TestClient_Today(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/today", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{"day": map[string]any{"date": "2025-06-10", "phase": "closed"}, "all_done": true})
	})

	view, err := c.Today(context.Background())
	require.NoError(t, err)
	assert.Equal(t, daystate.PhaseClosed, view.Day.Phase)
	assert.True(t, view.AllDone)
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c := New(url)
	defer c.Close()

	_, err := c.ListHabits(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
