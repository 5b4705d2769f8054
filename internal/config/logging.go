package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	slogmulti "github.com/samber/slog-multi"
)

// NewLogger builds the engine logger from config: human-readable text on
// stderr plus a JSON stream appended to cfg.LogFile for later inspection.
// The file sink is best effort; if the log directory or file cannot be
// opened the logger degrades to stderr only and the returned close func
// is a no-op.
func NewLogger(cfg Config) (*slog.Logger, func() error) {
	stderr := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})
	noop := func() error { return nil }

	if cfg.LogFile == "" {
		return slog.New(stderr), noop
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		slog.Warn("cannot create log directory, logging to stderr only",
			"dir", filepath.Dir(cfg.LogFile), "error", err)
		return slog.New(stderr), noop
	}
	file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		slog.Warn("cannot open log file, logging to stderr only",
			"file", cfg.LogFile, "error", err)
		return slog.New(stderr), noop
	}

	jsonSink := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: cfg.LogLevel})
	return slog.New(slogmulti.Fanout(stderr, jsonSink)), file.Close
}

// NewLoggerTo wires the same text+JSON fanout onto arbitrary writers,
// used by tests.
func NewLoggerTo(stderr, file io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slogmulti.Fanout(
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}),
		slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level}),
	))
}
