package main

import (
	"log/slog"
	"os"
)

// NewLogger returns a structured JSON slog.Logger writing to stderr,
// keeping stdout free for the Tk interpreter.
func NewLogger(level slog.Leveler) *slog.Logger {
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
