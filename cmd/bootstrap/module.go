package bootstrap

import (
	"library-service/cmd/bootstrap/components"
	"library-service/internal/pkg/config"

	"go.uber.org/fx"
)

// CoreModule wires everything below the HTTP layer: config, logging, the
// store selected by STORE_DRIVER and the usecases.
func CoreModule(cfg config.Config) fx.Option {
	opts := []fx.Option{
		ConfigModule(cfg),
		LoggerModule,
		JWTModule,
	}
	if cfg.Store.Driver == config.StoreDriverPostgres {
		opts = append(opts, DBModule)
	}
	opts = append(opts,
		components.RepositoryModule(cfg.Store.Driver),
		components.UseCaseModule,
		fx.WithLogger(FxLogger),
	)
	return fx.Options(opts...)
}

func Module(cfg config.Config) fx.Option {
	return fx.Options(
		CoreModule(cfg),
		components.HandlerModule,
	)
}
