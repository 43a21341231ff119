package router

import "go.uber.org/fx"

// Module builds the gin engine served in http mode.
var Module = fx.Provide(Setup)
