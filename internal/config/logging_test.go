package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerTo(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := NewLoggerTo(&stderr, &file, slog.LevelInfo)

	logger.Info("hello", "key", "value")

	assert.Contains(t, stderr.String(), "hello")
	assert.Contains(t, stderr.String(), "key=value")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(file.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "value", entry["key"])
}

func TestNewLoggerTo_LevelFilter(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := NewLoggerTo(&stderr, &file, slog.LevelWarn)

	logger.Debug("too quiet")
	logger.Info("still too quiet")

	assert.Empty(t, stderr.String())
	assert.Empty(t, file.Bytes())
}

func TestNewLogger_WritesFile(t *testing.T) {
	cfg := Config{
		LogFile:  filepath.Join(t.TempDir(), "logs", "gylr.log"),
		LogLevel: slog.LevelInfo,
	}

	logger, cleanup := NewLogger(cfg)
	logger.Info("written")
	require.NoError(t, cleanup())

	// The log directory is created on demand.
	assert.FileExists(t, cfg.LogFile)
}

func TestNewLogger_FallsBackWithoutFile(t *testing.T) {
	// A directory path cannot be opened as a log file.
	cfg := Config{LogFile: t.TempDir(), LogLevel: slog.LevelInfo}

	logger, cleanup := NewLogger(cfg)
	require.NotNil(t, logger)
	require.NoError(t, cleanup())
}

func TestNewLogger_EmptyPathIsStderrOnly(t *testing.T) {
	logger, cleanup := NewLogger(Config{LogLevel: slog.LevelInfo})
	require.NotNil(t, logger)
	require.NoError(t, cleanup())
}
