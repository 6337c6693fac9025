package bootstrap

import (
	"log/slog"

	"library-service/internal/handler/middleware"
	"library-service/internal/pkg/config"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}

// FxLogger routes fx lifecycle events through the application logger.
func FxLogger(logger *slog.Logger) fxevent.Logger {
	l := &fxevent.SlogLogger{Logger: logger}
	l.UseLogLevel(slog.LevelDebug)
	return l
}
