package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"shortlink/internal/config"
	"shortlink/internal/lib/logger/slogcute"

	"github.com/golang-migrate/migrate/v4"

	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	directionUp   = "up"
	directionDown = "down"
)

func main() {
	var direction string

	flag.StringVar(&direction, "direction", directionUp, "Direction to migrate (up or down)")
	cfg := config.MustLoad()

	log := setupLogger()

	log.Info("starting migrator",
		slog.String("env", cfg.Env),
		slog.String("storage_path", cfg.StoragePath),
		slog.String("migrations_path", cfg.Migrations.MigrationsPath),
		slog.String("migration_table", cfg.Migrations.MigrationTable),
		slog.String("direction", direction),
	)

	if err := run(log, cfg, direction); err != nil {
		log.Error("migration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("migrations completed successfully")
}

func setupLogger() *slog.Logger {
	opts := slogcute.CuteHandlerOptions{
		SlogOptions: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	return slog.New(opts.NewCuteHandler(os.Stdout))
}

func run(log *slog.Logger, cfg *config.Config, direction string) error {
	sourceURL := fmt.Sprintf("file://%s", cfg.Migrations.MigrationsPath)
	databaseURL := fmt.Sprintf("sqlite3://%s?x-migrations-table=%s", cfg.StoragePath, cfg.Migrations.MigrationTable)

	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		sourceErr, dbErr := m.Close()
		if sourceErr != nil {
			log.Error("failed to close migration source", slog.String("error", sourceErr.Error()))
		}
		if dbErr != nil {
			log.Error("failed to close database", slog.String("error", dbErr.Error()))
		}
	}()

	switch direction {
	case directionUp:
		err = m.Up()
	case directionDown:
		err = m.Down()
	default:
		return fmt.Errorf("invalid direction %q, must be %q or %q", direction, directionUp, directionDown)
	}

	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("no migrations to apply")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
