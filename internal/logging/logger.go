// Package logging constructs the slog logger used across the tool.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Writer io.Writer
}

// New constructs a slog logger with the compact console handler.
func New(opts Options) *slog.Logger {
	levelVar := new(slog.LevelVar)
	levelVar.Set(parseLevel(opts.Level))
	return slog.New(newConsoleHandler(opts.Writer, levelVar))
}

// Discard returns a logger that drops every record. Useful in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info", "":
		return slog.LevelInfo
	default:
		return slog.LevelInfo
	}
}
