package command

import (
	"errors"

	"library-service/internal/infra/db"
	"library-service/internal/pkg/config"

	"github.com/spf13/cobra"
)

var errMigrateNeedsPostgres = errors.New("migrate requires STORE_DRIVER=postgres")

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or inspect the database schema migrations",
	Long: `Run the embedded goose migrations against the database described by
the DB_* environment variables.`,
}

func init() {
	for _, c := range []struct {
		name  string
		short string
	}{
		{db.MigrateUp, "Apply all pending migrations"},
		{db.MigrateDown, "Roll back the most recent migration"},
		{db.MigrateStatus, "Print the state of every migration"},
	} {
		migrateCmd.AddCommand(&cobra.Command{
			Use:   c.name,
			Short: c.short,
			Args:  cobra.NoArgs,
			RunE:  runMigrate,
		})
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Store.Driver != config.StoreDriverPostgres {
		return errMigrateNeedsPostgres
	}
	return db.Migrate(cmd.Context(), cfg.DB.BuildDSN(), cmd.Name())
}
