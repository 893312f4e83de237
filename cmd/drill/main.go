// Command drill runs a review session in the terminal against a wordflow
// server.
//
// Usage:
//
//	drill [--config=drill.yaml] [--server_url=URL] [--token=JWT] [--seed=N]
//
// Settings come from the YAML file, DRILL_* environment variables and
// flags, with flags winning.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/heartmarshall/wordflow-backend/internal/app"
	"github.com/heartmarshall/wordflow-backend/internal/client"
	"github.com/heartmarshall/wordflow-backend/internal/config"
	"github.com/heartmarshall/wordflow-backend/internal/drill"
	"github.com/heartmarshall/wordflow-backend/internal/session"
)

func main() {
	fs := pflag.NewFlagSet("drill", pflag.ExitOnError)
	drill.Flags(fs)
	_ = fs.Parse(os.Args[1:])

	cfg, err := drill.LoadConfig(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "drill: %v\n", err)
		os.Exit(2)
	}

	logger := app.NewLogger(config.LogConfig{Level: cfg.LogLevel, Format: "text"})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "drill: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *drill.Config, logger *slog.Logger) error {
	api := client.New(cfg.ServerURL, cfg.Token, logger,
		client.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	scfg := session.DefaultConfig()
	scfg.MatchingEvery = cfg.MatchingEvery
	scfg.FeedLimit = cfg.FeedLimit

	orch := session.New(logger, api, scfg, seed)
	stats, err := drill.NewRunner(orch, os.Stdin, os.Stdout).Run(ctx)

	logger.Info("session ended",
		slog.String("session_id", orch.SessionID().String()),
		slog.Int("graded", stats.Graded),
		slog.Int("skipped", stats.Skipped),
		slog.Int("refetches", stats.Refetches),
	)

	if errors.Is(err, drill.ErrQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
