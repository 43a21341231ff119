package usecase

import (
	"io"
	"log/slog"
	"testing"

	"github.com/polkiloo/staybook/internal/storage/memory"
)

func newTestStorage(t *testing.T) *memory.Storage {
	t.Helper()
	return memory.New(memory.DefaultCatalog(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}
