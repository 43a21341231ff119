package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/staybook/internal/adapter/events"
	"github.com/polkiloo/staybook/internal/app"
	"github.com/polkiloo/staybook/internal/config"
	"github.com/polkiloo/staybook/internal/console"
	"github.com/polkiloo/staybook/internal/logger"
	"github.com/polkiloo/staybook/internal/pkg/auth"
	"github.com/polkiloo/staybook/internal/server/http/handlers"
	"github.com/polkiloo/staybook/internal/server/http/router"
	"github.com/polkiloo/staybook/internal/storage/memory"
	"github.com/polkiloo/staybook/internal/usecase"
	"github.com/polkiloo/staybook/internal/worker"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		memory.Module,
		events.Module,
		worker.Module,
		usecase.Module,
		fx.Provide(
			func(f *app.BookingFacade) handlers.Facade { return f },
			func(f *app.BookingFacade) console.Facade { return f },
			func(m *console.Menu) app.ConsoleRunner { return m },
		),
		router.Module,
		console.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
