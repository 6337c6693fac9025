package components

import (
	"library-service/internal/handler"
	"library-service/internal/handler/api"
	"library-service/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCheckableHandler,
		api.NewLibraryHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
