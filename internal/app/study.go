package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordflow-backend/internal/config"
	"github.com/heartmarshall/wordflow-backend/internal/service/study"
)

func studyConfig(cfg config.GradingConfig) study.Config {
	return study.Config{
		TxTimeout:          cfg.TxTimeout,
		ResetRecentDefault: cfg.ResetRecentDefault,
		MaxBatchSize:       cfg.MaxBatchSize,
		DueFeedLimit:       cfg.DueFeedLimit,
	}
}

// OpenStudyService builds the study service on the configured storage for
// operator commands. It runs without the replay cache. The returned close
// function releases the storage.
func OpenStudyService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*study.Service, func(), error) {
	store, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}

	svc := study.NewService(logger, store.cards, store.attempts, store.vocab, nil, store.tx, studyConfig(cfg.Grading))
	return svc, store.close, nil
}
