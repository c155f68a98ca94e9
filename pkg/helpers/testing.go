package helpers

import (
	"context"
	"log/slog"

	"github.com/GregMSThompson/travel-admin/pkg/logger"
)

// TestLogger discards everything below level.
func TestLogger(level slog.Level) *slog.Logger {
	return slog.New(logger.NewTestHandler(level))
}

// TestCtx returns a context carrying a quiet test logger, so store warnings
// logged on the offline paths do not clutter test output.
func TestCtx() context.Context {
	return logger.ToContext(context.Background(), TestLogger(slog.LevelWarn))
}
