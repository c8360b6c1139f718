// Package client talks to the habitday REST API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"resty.dev/v3"

	"github.com/at-ishikawa/habitday/internal/daycompletion"
	"github.com/at-ishikawa/habitday/internal/daystate"
	"github.com/at-ishikawa/habitday/internal/habit"
	"github.com/at-ishikawa/habitday/internal/note"
)

// APIError is a non-2xx response. Message carries the server's {error} text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Client calls every endpoint once. It never retries and sets no timeout.
type Client struct {
	httpClient *resty.Client
}

func New(baseURL string) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")
	return &Client{httpClient: client}
}

func (c *Client) Close() error {
	return c.httpClient.Close()
}

// HabitRequest is the body of a habit create.
type HabitRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
}

// HabitUpdate is the body of a partial habit update. Nil fields are left as is.
type HabitUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Time        *string `json:"time,omitempty"`
}

// Checkmark is the stored completion state of a habit on a date.
type Checkmark struct {
	HabitID     int64      `json:"habit_id"`
	Date        string     `json:"date"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

type checkmarkRequest struct {
	HabitID   int64  `json:"habit_id"`
	Date      string `json:"date,omitempty"`
	Completed *bool  `json:"completed,omitempty"`
}

type noteRequest struct {
	Content string `json:"content"`
}

func (c *Client) ListHabits(ctx context.Context) ([]habit.Habit, error) {
	var habits []habit.Habit
	if err := c.do(ctx, http.MethodGet, "/api/habits", nil, &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

func (c *Client) CreateHabit(ctx context.Context, req HabitRequest) (*habit.Habit, error) {
	var created habit.Habit
	if err := c.do(ctx, http.MethodPost, "/api/habits", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateHabit(ctx context.Context, id int64, req HabitUpdate) (*habit.Habit, error) {
	var updated habit.Habit
	if err := c.do(ctx, http.MethodPut, "/api/habits/"+idPath(id), req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteHabit(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/habits/"+idPath(id), nil, nil)
}

// ResetHabits clears today's completion of every habit.
func (c *Client) ResetHabits(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/habits/reset", nil, nil)
}

// SetCheckmark stores completed for the habit on date. A nil completed toggles
// the stored state. An empty date means the server's today.
func (c *Client) SetCheckmark(ctx context.Context, habitID int64, date string, completed *bool) (*Checkmark, error) {
	var mark Checkmark
	req := checkmarkRequest{HabitID: habitID, Date: date, Completed: completed}
	if err := c.do(ctx, http.MethodPost, "/api/checkmarks", req, &mark); err != nil {
		return nil, err
	}
	return &mark, nil
}

func (c *Client) ListNotes(ctx context.Context) ([]note.Note, error) {
	var notes []note.Note
	if err := c.do(ctx, http.MethodGet, "/api/notes", nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) CreateNote(ctx context.Context, content string) (*note.Note, error) {
	var created note.Note
	if err := c.do(ctx, http.MethodPost, "/api/notes", noteRequest{Content: content}, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateNote(ctx context.Context, id int64, content string) (*note.Note, error) {
	var updated note.Note
	if err := c.do(ctx, http.MethodPut, "/api/notes/"+idPath(id), noteRequest{Content: content}, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteNote(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/notes/"+idPath(id), nil, nil)
}

// CloseDay records today as completed.
func (c *Client) CloseDay(ctx context.Context) (*daycompletion.DayCompletion, error) {
	var dc daycompletion.DayCompletion
	if err := c.do(ctx, http.MethodPost, "/api/day-completion", nil, &dc); err != nil {
		return nil, err
	}
	return &dc, nil
}

func (c *Client) ListDayCompletions(ctx context.Context) ([]daycompletion.DayCompletion, error) {
	var completions []daycompletion.DayCompletion
	if err := c.do(ctx, http.MethodGet, "/api/day-completions", nil, &completions); err != nil {
		return nil, err
	}
	return completions, nil
}

func (c *Client) DayCompletionDetail(ctx context.Context, date string) (*daycompletion.Detail, error) {
	var detail daycompletion.Detail
	if err := c.do(ctx, http.MethodGet, "/api/day-completion/"+date, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) DeleteDayCompletion(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/day-completions/"+idPath(id), nil, nil)
}

// Today returns the view the server derived for its current instant.
func (c *Client) Today(ctx context.Context) (daystate.View, error) {
	var view daystate.View
	if err := c.do(ctx, http.MethodGet, "/api/today", nil, &view); err != nil {
		return daystate.View{}, err
	}
	return view, nil
}

// Snapshot loads the canonical habit and note lists plus whether date was
// already closed.
func (c *Client) Snapshot(ctx context.Context, date string) (daystate.Snapshot, error) {
	habits, err := c.ListHabits(ctx)
	if err != nil {
		return daystate.Snapshot{}, err
	}
	notes, err := c.ListNotes(ctx)
	if err != nil {
		return daystate.Snapshot{}, err
	}
	completions, err := c.ListDayCompletions(ctx)
	if err != nil {
		return daystate.Snapshot{}, err
	}

	closed := false
	for _, dc := range completions {
		if dc.Date == date {
			closed = true
			break
		}
	}
	return daystate.Snapshot{Habits: habits, Notes: notes, Closed: closed}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	req := c.httpClient.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	response, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s > %w", method, path, err)
	}
	if response.IsError() {
		return newAPIError(response.StatusCode(), response.String())
	}
	return nil
}

func newAPIError(status int, body string) *APIError {
	var envelope struct {
		Error string `json:"error"`
	}
	msg := http.StatusText(status)
	if err := json.Unmarshal([]byte(body), &envelope); err == nil && envelope.Error != "" {
		msg = envelope.Error
	}
	return &APIError{StatusCode: status, Message: msg}
}

func idPath(id int64) string {
	return strconv.FormatInt(id, 10)
}
