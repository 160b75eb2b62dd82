package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// basic global logger, text to stderr so it never mixes with report output.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

func Logger() *slog.Logger {
	return logger
}

// Setup replaces the global logger with one writing to w at the named level.
func Setup(w io.Writer, level string) {
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels; anything
// else means warn.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// WithFields returns a logger with additional fields.
func WithFields(kv ...any) *slog.Logger {
	return logger.With(kv...)
}
