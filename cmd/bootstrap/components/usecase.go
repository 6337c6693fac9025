package components

import (
	"library-service/internal/pkg/clock"
	"library-service/internal/seed"
	"library-service/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewCheckableService,
		usecase.NewLibraryService,
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
		seed.NewSeeder,
	),
)
