package logger

import "go.uber.org/fx"

// Module provides the stderr JSON logger shared by every component.
var Module = fx.Provide(New)
