// Package command holds the cobra commands of the library binary.
//
//	library serve [--seed fixtures/seed.yaml]
//	library migrate up|down|status
//	library seed [--file fixtures/seed.yaml]
//
// Settings come from the environment, see internal/pkg/config.
package command

import (
	"fmt"
	"os"

	"library-service/internal/pkg/config"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "library",
	Short:         "Library catalogue and checkout service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

func loadConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
