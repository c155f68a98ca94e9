package logger

import (
	"io"
	"log/slog"
	"strings"
)

// New builds a logger at the named level. Unknown names fall back to info.
func New(level string, handler func(level slog.Level) slog.Handler) *slog.Logger {
	lvl, _ := ParseLevel(level)
	return slog.New(handler(lvl))
}

// ParseLevel accepts slog level names, with offsets such as "warn+2", and the
// Cloud Logging spelling "warning". ok is false for unknown names.
func ParseLevel(level string) (lvl slog.Level, ok bool) {
	level = strings.TrimSpace(level)
	if level == "" {
		return slog.LevelInfo, true
	}
	if strings.EqualFold(level, "warning") {
		return slog.LevelWarn, true
	}
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo, false
	}
	return lvl, true
}

// NewTestHandler discards output; level still gates Enabled.
func NewTestHandler(level slog.Level) slog.Handler {
	return slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level})
}
