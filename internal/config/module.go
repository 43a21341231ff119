package config

import "go.uber.org/fx"

// Module reads flags, environment and the optional dotenv file once per graph.
var Module = fx.Provide(Load)
