package main

import (
	"io"
	"log/slog"
)

func initLogger(w io.Writer, level slog.Level) {
	// Explicitly use text handler; stdout is reserved for reports
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level, // set log level
	}))
	slog.SetDefault(logger)
}
