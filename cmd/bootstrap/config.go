package bootstrap

import (
	"library-service/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule supplies a config that was already loaded by the command,
// since the store driver decides which modules are assembled.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
	)
}
