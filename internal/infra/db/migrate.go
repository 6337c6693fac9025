package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"library-service/migrations"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/pressly/goose/v3"
)

const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
)

// slogGooseLogger forwards goose output to slog and never exits the process.
type slogGooseLogger struct {
	logger *slog.Logger
}

func (l *slogGooseLogger) Printf(format string, v ...any) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

func (l *slogGooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

// Migrate runs a goose command against dsn using the embedded migrations.
func Migrate(ctx context.Context, dsn, command string) error {
	logger := slog.Default().With("component", "migrations", "command", command)

	goose.SetLogger(&slogGooseLogger{logger: logger})
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Warn("failed to close migration connection", "error", err)
		}
	}()

	start := time.Now()
	switch command {
	case MigrateUp:
		err = goose.UpContext(ctx, sqlDB, ".")
	case MigrateDown:
		err = goose.DownContext(ctx, sqlDB, ".")
	case MigrateStatus:
		err = goose.StatusContext(ctx, sqlDB, ".")
	default:
		return fmt.Errorf("unknown migrate command %q (want up, down or status)", command)
	}
	if err != nil {
		return fmt.Errorf("goose %s failed: %w", command, err)
	}

	logger.Info("migration finished", "duration_ms", time.Since(start).Milliseconds())
	return nil
}
