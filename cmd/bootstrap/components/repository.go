package components

import (
	"library-service/internal/infra/db"
	"library-service/internal/infra/memstore"
	"library-service/internal/infra/repository"
	"library-service/internal/pkg/config"
	"library-service/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

func RepositoryModule(driver string) fx.Option {
	if driver == config.StoreDriverMemory {
		return memoryRepositoryModule
	}
	return postgresRepositoryModule
}

var postgresRepositoryModule = fx.Module("repository/postgres",
	fx.Provide(
		NewDBTX,
		NewPool,
		fx.Annotate(
			repository.NewCheckableRepository,
			fx.As(new(usecase.CheckableRepository)),
		),
		fx.Annotate(
			repository.NewLibraryRepository,
			fx.As(new(usecase.LibraryRepository)),
		),
		fx.Annotate(
			repository.NewStaffRepository,
			fx.As(new(usecase.StaffRepository)),
		),
	),
)

var memoryRepositoryModule = fx.Module("repository/memory",
	fx.Provide(
		fx.Annotate(
			memstore.NewCheckableStore,
			fx.As(new(usecase.CheckableRepository)),
		),
		fx.Annotate(
			memstore.NewLibraryStore,
			fx.As(new(usecase.LibraryRepository)),
		),
		fx.Annotate(
			memstore.NewStaffStore,
			fx.As(new(usecase.StaffRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewPool(pool *pgxpool.Pool) db.Pool {
	return pool
}
