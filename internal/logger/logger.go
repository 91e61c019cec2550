package logger

import (
	"log/slog"
	"os"
)

// New creates the JSON slog.Logger used across the storefront.
func New() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler)
}
