// Command migrate applies or inspects the PostgreSQL schema migrations.
//
// Usage:
//
//	migrate [up|down|status]
//
// Connection settings come from the same config file and environment as the
// server. The SQLite driver migrates itself on open and needs no command.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/heartmarshall/wordflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordflow-backend/internal/app"
	"github.com/heartmarshall/wordflow-backend/internal/config"
)

func main() {
	timeout := pflag.Duration("timeout", 2*time.Minute, "overall deadline for the command")
	pflag.Parse()

	command := "up"
	if pflag.NArg() > 0 {
		command = pflag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Storage.Driver != config.DriverPostgres {
		log.Fatalf("migrate only manages the %s driver, configured: %s", config.DriverPostgres, cfg.Storage.Driver)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, command, cfg.Database, logger); err != nil {
		logger.Error("migrate failed", slog.String("command", command), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, cfg config.DatabaseConfig, logger *slog.Logger) error {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	provider, closeDB, err := postgres.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer closeDB() //nolint:errcheck

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return err
		}
		for _, r := range results {
			logger.Info("migration applied", slog.Int64("version", r.Source.Version), slog.Duration("duration", r.Duration))
		}
		if len(results) == 0 {
			logger.Info("schema up to date")
		}
	case "down":
		r, err := provider.Down(ctx)
		if err != nil {
			return err
		}
		logger.Info("migration rolled back", slog.Int64("version", r.Source.Version))
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			applied := "pending"
			if !s.AppliedAt.IsZero() {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("%-6d %-40s %s\n", s.Source.Version, s.Source.Path, applied)
		}
	default:
		return fmt.Errorf("unknown command %q (want up, down or status)", command)
	}
	return nil
}
