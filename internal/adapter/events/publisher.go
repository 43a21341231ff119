package events

import (
	"context"
	"log/slog"

	"github.com/polkiloo/staybook/internal/domain/model"
)

// Publisher delivers domain events to an external consumer.
type Publisher interface {
	Publish(ctx context.Context, ev model.Event) error
	Close() error
}

// LogPublisher writes events as structured log lines.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates LogPublisher.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs the event.
func (p *LogPublisher) Publish(ctx context.Context, ev model.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.logger.InfoContext(ctx, "domain event",
		slog.String("type", string(ev.Type)),
		slog.Int64("customer_id", ev.CustomerID),
		slog.Int64("property_id", ev.PropertyID),
		slog.Int64("booking_id", ev.BookingID),
		slog.Int64("payment_id", ev.PaymentID),
		slog.String("amount", ev.Amount.StringFixed(2)),
		slog.Time("occurred_at", ev.OccurredAt),
	)
	return nil
}

// Close is a no-op.
func (p *LogPublisher) Close() error { return nil }
