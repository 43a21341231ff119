package events

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/staybook/internal/config"
)

// Module exposes the configured event publisher to fx graph.
var Module = fx.Provide(newPublisher)

type publisherParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newPublisher(p publisherParams) Publisher {
	var pub Publisher = NewLogPublisher(p.Logger)

	if p.Config.AMQPURL != "" {
		amqpPub, err := NewAMQPPublisher(p.Config.AMQPURL, p.Config.EventsExchange)
		if err != nil {
			p.Logger.Warn("rabbitmq unavailable, logging events instead", slog.Any("error", err))
		} else {
			p.Logger.Info("publishing events to rabbitmq", slog.String("exchange", p.Config.EventsExchange))
			pub = amqpPub
		}
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return pub.Close()
		},
	})
	return pub
}
