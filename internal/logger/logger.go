package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/polkiloo/staybook/internal/config"
)

// New creates a preconfigured slog.Logger. Output goes to stderr so the
// console menu keeps stdout to itself.
func New(cfg *config.Config) *slog.Logger {
	return newWithWriter(os.Stderr, cfg.LogLevel)
}

func newWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
