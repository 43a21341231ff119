package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/staybook/internal/config"
	"github.com/polkiloo/staybook/internal/worker"
)

// ConsoleRunner drives the interactive menu until the user exits.
type ConsoleRunner interface {
	Run(ctx context.Context) error
}

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewBookingFacade,
		newHTTPServer,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Console    ConsoleRunner
	Dispatcher *worker.EventDispatcher
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	var cancelConsole context.CancelFunc = func() {}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Dispatcher.Start(context.WithoutCancel(ctx))

			if p.Config.Mode == config.ModeConsole {
				p.Logger.Info("starting staybook", slog.String("mode", string(p.Config.Mode)))
				var consoleCtx context.Context
				consoleCtx, cancelConsole = context.WithCancel(context.WithoutCancel(ctx))
				go func() {
					if err := p.Console.Run(consoleCtx); err != nil && !errors.Is(err, context.Canceled) {
						p.Logger.Error("console terminated", slog.String("error", err.Error()))
					}
					_ = p.Shutdowner.Shutdown()
				}()
				return nil
			}

			p.Logger.Info("starting staybook", slog.String("mode", string(p.Config.Mode)), slog.String("addr", p.Server.Addr))
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancelConsole()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if p.Config.Mode != config.ModeConsole {
				if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
			}

			p.Dispatcher.Stop()
			p.Logger.Info("staybook stopped")
			return nil
		},
	})
}
