// Command reset makes a user's flashcards due now without grading them.
// It is the operator counterpart of the reset endpoints, for re-drilling a
// user's queue after a data fix.
//
// Usage:
//
//	reset --user=<uuid> [--card=<uuid>] [--limit=50]
//
// With --card only that flashcard is reset; otherwise the most recently
// reviewed --limit flashcards are. Uses the server's storage config.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/heartmarshall/wordflow-backend/internal/app"
	"github.com/heartmarshall/wordflow-backend/internal/config"
	"github.com/heartmarshall/wordflow-backend/internal/service/study"
	"github.com/heartmarshall/wordflow-backend/pkg/ctxutil"
)

func main() {
	user := pflag.String("user", "", "owner id of the flashcards to reset")
	card := pflag.String("card", "", "reset only this flashcard")
	limit := pflag.Int("limit", 0, "how many recently reviewed flashcards to reset, 0..500 (0 = configured default)")
	pflag.Parse()

	userID, err := uuid.Parse(*user)
	if err != nil || userID == uuid.Nil {
		fmt.Fprintln(os.Stderr, "Usage: reset --user=<uuid> [--card=<uuid>] [--limit=N]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	svc, closeStore, err := app.OpenStudyService(ctx, cfg, logger)
	if err != nil {
		logger.Error("open study service", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	ctx = ctxutil.WithUserID(ctx, userID)

	if err := run(ctx, svc, *card, *limit); err != nil {
		logger.Error("reset failed", slog.String("user_id", userID.String()), slog.String("error", err.Error()))
		closeStore()
		os.Exit(1)
	}
}

// run resets one card when cardArg is set and the recent reviews otherwise.
// The service logs what it changed.
func run(ctx context.Context, svc *study.Service, cardArg string, limit int) error {
	if cardArg == "" {
		_, err := svc.ResetRecent(ctx, study.ResetRecentInput{Limit: limit})
		return err
	}

	cardID, err := uuid.Parse(cardArg)
	if err != nil {
		return fmt.Errorf("invalid --card: %w", err)
	}
	_, err = svc.ResetCard(ctx, cardID)
	return err
}
