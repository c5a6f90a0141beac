package logging

import (
	"io"
	"log/slog"
)

// HTTPStatusLevel picks the log level for a finished request.
func HTTPStatusLevel(status int) slog.Level {
	switch {
	case status >= 100 && status < 400:
		return slog.LevelInfo
	case status == 499:
		return slog.LevelInfo
	case status >= 400 && status < 500:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// NewLogger builds the process logger: colored text locally, JSON elsewhere.
func NewLogger(w io.Writer, env string, level slog.Level) *slog.Logger {
	var handler slog.Handler
	if env == "local" {
		handler = NewTextHandler(w, WithLevel(level))
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}
	return slog.New(NewAttributesHandler(handler))
}
