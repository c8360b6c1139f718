// Package report exports closed-day records.
package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/habitday/internal/daycompletion"
)

// Format is an export format for a day record.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatYAML     Format = "yaml"
)

// ParseFormat accepts text, markdown (or md) and yaml (or yml).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q: must be one of text, markdown, yaml", s)
}

//go:embed templates/day.md.go.tmpl
var dayTemplate string

var markdownTemplate = template.Must(template.New("day.md.go.tmpl").Parse(dayTemplate))

type markdownHabit struct {
	Time   string
	Title  string
	DoneAt string
}

type markdownNote struct {
	At      string
	Content string
}

type markdownDay struct {
	Date     string
	ClosedAt string
	Habits   []markdownHabit
	Notes    []markdownNote
}

// WriteMarkdown renders detail as a Markdown document with times in loc.
func WriteMarkdown(w io.Writer, detail daycompletion.Detail, loc *time.Location) error {
	data := markdownDay{Date: detail.Date}
	if !detail.CompletedAt.IsZero() {
		data.ClosedAt = detail.CompletedAt.In(loc).Format("2006-01-02 15:04")
	}
	for _, h := range detail.Habits {
		mh := markdownHabit{Time: h.Time.String(), Title: h.Title}
		if h.CompletedAt != nil {
			mh.DoneAt = h.CompletedAt.In(loc).Format("15:04")
		}
		data.Habits = append(data.Habits, mh)
	}
	for _, n := range detail.Notes {
		data.Notes = append(data.Notes, markdownNote{
			At:      n.CreatedAt.In(loc).Format("15:04"),
			Content: strings.ReplaceAll(strings.TrimSpace(n.Content), "\n", "\n  "),
		})
	}

	if err := markdownTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("markdownTemplate.Execute() > %w", err)
	}
	return nil
}

// WriteYAML encodes detail as YAML.
func WriteYAML(w io.Writer, detail daycompletion.Detail) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(detail); err != nil {
		return fmt.Errorf("yaml.Encode() > %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("yaml.Close() > %w", err)
	}
	return nil
}

// Markdown returns detail rendered by WriteMarkdown.
func Markdown(detail daycompletion.Detail, loc *time.Location) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteMarkdown(&buf, detail, loc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
