package command

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"library-service/cmd/bootstrap"
	"library-service/internal/pkg/config"
	"library-service/internal/seed"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const shutdownTimeout = 10 * time.Second

var serveSeedFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API on PORT using the store selected by STORE_DRIVER.
With --seed the fixture file is loaded before the server accepts requests,
which is the usual way to give the memory store some data.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveSeedFile, "seed", "", "fixture file to load on startup")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := []fx.Option{
		bootstrap.Module(cfg),
		fx.Provide(func() *gin.Engine {
			return gin.New()
		}),
	}
	if serveSeedFile != "" {
		// registered before startServer so the data is in place before listening
		opts = append(opts, fx.Invoke(seedOnStart(serveSeedFile)))
	}
	opts = append(opts, fx.Invoke(startServer))

	app := fx.New(opts...)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start application", "error", err)
		return err
	}

	<-app.Done()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.Stop(ctx); err != nil {
		slog.Error("failed to stop application", "error", err)
	}

	slog.Info("application stopped")
	return nil
}

func seedOnStart(path string) func(fx.Lifecycle, *seed.Seeder, *slog.Logger) {
	return func(lc fx.Lifecycle, seeder *seed.Seeder, logger *slog.Logger) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				fixture, err := seed.LoadFile(path)
				if err != nil {
					return err
				}
				report, err := seeder.Run(ctx, fixture)
				if err != nil {
					return err
				}
				logSeedReport(logger, path, report)
				return nil
			},
		})
	}
}

func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			logger.Info("starting server", "address", srv.Addr, "mode", gin.Mode(), "store", cfg.Store.Driver)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server stopped unexpectedly", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			return srv.Shutdown(ctx)
		},
	})
}
