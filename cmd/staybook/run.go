package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/fx"
)

// run starts the application and blocks until a signal arrives or a component
// requests shutdown. It returns the process exit code.
func run(ctx context.Context, app *fx.App) int {
	startCtx, cancelStart := context.WithTimeout(ctx, app.StartTimeout())
	defer cancelStart()

	if err := app.Start(startCtx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start staybook: %v\n", err)
		return 1
	}

	code := 0
	select {
	case <-ctx.Done():
	case sig := <-app.Wait():
		code = sig.ExitCode
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancelStop()

	if err := app.Stop(stopCtx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop staybook: %v\n", err)
		return 1
	}
	return code
}
