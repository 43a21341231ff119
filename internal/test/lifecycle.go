package test

import (
	"context"

	"go.uber.org/fx"
)

// LifecycleRecorder captures lifecycle hooks appended during tests.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append stores hook for later invocation.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub records shutdown invocations.
type ShutdownerStub struct {
	Called chan struct{}
}

// Shutdown notifies tests about graceful termination.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}

// ConsoleRunnerStub stands in for the interactive menu.
type ConsoleRunnerStub struct {
	RunFn func(context.Context) error
}

// Run delegates to RunFn or blocks until ctx is cancelled.
func (s ConsoleRunnerStub) Run(ctx context.Context) error {
	if s.RunFn != nil {
		return s.RunFn(ctx)
	}
	<-ctx.Done()
	return ctx.Err()
}
