package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/habitday/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		opts       Options
		logDebug   bool
		wantOutput []string
		wantAbsent []string
		wantErr    bool
	}{
		{
			name:       "info level hides debug",
			opts:       Options{Config: config.LogConfig{Level: "info"}},
			logDebug:   true,
			wantOutput: []string{"habit created", "id=3"},
			wantAbsent: []string{"query plan"},
		},
		{
			name:       "debug flag overrides level",
			opts:       Options{Config: config.LogConfig{Level: "error"}, Debug: true},
			logDebug:   true,
			wantOutput: []string{"habit created", "query plan"},
		},
		{
			name:       "prefix",
			opts:       Options{Prefix: "habitday-server"},
			wantOutput: []string{"habitday-server", "habit created"},
		},
		{
			name:    "unknown level",
			opts:    Options{Config: config.LogConfig{Level: "verbose"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.opts.Output = &buf

			l, closer, err := New(tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer closer.Close()

			if tt.logDebug {
				l.Debug("query plan", "table", "habits")
			}
			l.Info("habit created", "id", 3)

			for _, want := range tt.wantOutput {
				assert.Contains(t, buf.String(), want)
			}
			for _, absent := range tt.wantAbsent {
				assert.NotContains(t, buf.String(), absent)
			}
		})
	}
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "habitday.log")
	var buf bytes.Buffer

	l, closer, err := New(Options{
		Config: config.LogConfig{Level: "info", File: path, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1},
		Output: &buf,
	})
	require.NoError(t, err)
	l.Warn("database not ready", "attempt", 2)
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "database not ready")
	assert.Contains(t, buf.String(), "database not ready")
}

func TestSetup(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	closer, err := Setup(Options{Output: &buf})
	require.NoError(t, err)
	defer closer.Close()

	slog.Info("day closed", "date", "2025-06-10")
	assert.Contains(t, buf.String(), "day closed")
}
