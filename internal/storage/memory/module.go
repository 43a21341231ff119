package memory

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/staybook/internal/domain/repository"
)

// Module wires in-memory storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.Factory { return s },
		func(f repository.Factory) repository.UserRepository { return f.Users() },
		func(f repository.Factory) repository.PropertyRepository { return f.Properties() },
		func(f repository.Factory) repository.BookingRepository { return f.Bookings() },
		func(f repository.Factory) repository.PaymentRepository { return f.Payments() },
	),
)

func newStorage(logger *slog.Logger) *Storage {
	catalog := DefaultCatalog()
	logger.Info("catalog loaded", slog.Int("properties", len(catalog)))
	return New(catalog, logger)
}
