package console

import (
	"log/slog"
	"os"

	"go.uber.org/fx"
)

// Module provides the interactive menu bound to the process terminal.
var Module = fx.Provide(newMenu)

type menuParams struct {
	fx.In

	Facade Facade
	Logger *slog.Logger
}

func newMenu(p menuParams) *Menu {
	return NewMenu(p.Facade, os.Stdin, os.Stdout, p.Logger)
}
