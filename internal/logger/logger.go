// Package logger builds the process-wide slog logger.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/at-ishikawa/habitday/internal/config"
)

// Options controls where and how much is logged.
type Options struct {
	Config config.LogConfig
	// Debug forces the debug level and reports callers.
	Debug  bool
	Prefix string
	// Output defaults to os.Stderr.
	Output io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a slog logger backed by a charmbracelet handler. When a log
// file is configured, records are also written to it with size based
// rotation. The returned closer releases the file.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	level := log.InfoLevel
	if opts.Config.Level != "" {
		parsed, err := log.ParseLevel(opts.Config.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("log.ParseLevel(%s) > %w", opts.Config.Level, err)
		}
		level = parsed
	}
	if opts.Debug {
		level = log.DebugLevel
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	var closer io.Closer = nopCloser{}
	if opts.Config.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Config.File), 0755); err != nil {
			return nil, nil, fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(opts.Config.File), err)
		}
		file := &lumberjack.Logger{
			Filename:   opts.Config.File,
			MaxSize:    opts.Config.MaxSizeMB,
			MaxBackups: opts.Config.MaxBackups,
			MaxAge:     opts.Config.MaxAgeDays,
			Compress:   true,
		}
		out = io.MultiWriter(out, file)
		closer = file
	}

	handler := log.NewWithOptions(out, log.Options{
		ReportCaller:    opts.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          opts.Prefix,
	})
	return slog.New(handler), closer, nil
}

// Setup builds a logger with New and installs it as the slog default.
func Setup(opts Options) (io.Closer, error) {
	l, closer, err := New(opts)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(l)
	return closer, nil
}
