package worker

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/staybook/internal/adapter/events"
	"github.com/polkiloo/staybook/internal/config"
	"github.com/polkiloo/staybook/internal/usecase"
)

// Module provides the event dispatcher, also as the use case event sink.
var Module = fx.Provide(
	newEventDispatcher,
	func(d *EventDispatcher) usecase.EventSink { return d },
)

type dispatcherParams struct {
	fx.In

	Publisher events.Publisher
	Config    *config.Config
	Logger    *slog.Logger
}

func newEventDispatcher(p dispatcherParams) *EventDispatcher {
	return NewEventDispatcher(p.Publisher, p.Config.EventBuffer, p.Config.EventWorkers, p.Logger)
}
