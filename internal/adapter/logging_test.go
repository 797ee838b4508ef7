package adapter

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerWritesTaggedJSON(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "reel.log")
	cfg := &LoggingConfig{File: logPath, Level: "DEBUG"}

	logger, err := SetupLogger(cfg)
	require.NoError(t, err)

	logger.Info("session started", "route", "browse")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"app":"reel"`)
	assert.Contains(t, string(data), `"msg":"session started"`)
	assert.Contains(t, string(data), `"route":"browse"`)
}

func TestSetupLoggerEmptyPathDisablesFileLogging(t *testing.T) {
	logger, err := SetupLogger(&LoggingConfig{})
	require.NoError(t, err)
	require.NotNil(t, logger)

	// Must not panic or touch the filesystem.
	logger.Info("discarded")
}

func TestLoggingConfigSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		cfg := LoggingConfig{Level: tt.level}
		assert.Equal(t, tt.want, cfg.slogLevel(), "level %q", tt.level)
	}
}
