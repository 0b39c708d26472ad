// Package debug provides debug logging backed by log/slog. Logging is off
// until Init enables it.
package debug

import (
	"io"
	"log/slog"
	"sync"
)

var (
	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
	enabled bool
	mu      sync.RWMutex
)

// Init routes debug logs to w when enable is true and discards them otherwise.
func Init(w io.Writer, enable bool) {
	mu.Lock()
	defer mu.Unlock()

	enabled = enable

	if !enable || w == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}

	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Enabled returns whether debug logging is enabled.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()

	return enabled
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	return logger
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	current().Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	current().Warn(msg, args...)
}
