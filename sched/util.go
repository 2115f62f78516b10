package sched

import (
	"context"
	"log/slog"
)

const LevelTrace slog.Level = slog.LevelDebug - 4

// Trace logs fine-grained per-cycle scheduler events. The level sits below
// Debug so the events stay out of default output.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}
