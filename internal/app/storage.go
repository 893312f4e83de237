package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordflow-backend/internal/adapter/postgres/attempt"
	"github.com/heartmarshall/wordflow-backend/internal/adapter/postgres/flashcard"
	"github.com/heartmarshall/wordflow-backend/internal/adapter/postgres/vocabulary"
	"github.com/heartmarshall/wordflow-backend/internal/adapter/redis/replaycache"
	"github.com/heartmarshall/wordflow-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/wordflow-backend/internal/config"
	"github.com/heartmarshall/wordflow-backend/internal/domain"
	"github.com/heartmarshall/wordflow-backend/internal/transport/rest"
)

// The union of what the services need from each store. Both drivers
// implement all of it.

type flashcardStore interface {
	Create(ctx context.Context, c *domain.Flashcard) (*domain.Flashcard, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Flashcard, error)
	GetByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Flashcard, error)
	GetForUpdate(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Flashcard, error)
	GetDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.Flashcard, error)
	UpdateSchedule(ctx context.Context, userID, id uuid.UUID, upd domain.SchedulingUpdate) error
	ResetDue(ctx context.Context, userID, id uuid.UUID, now time.Time) (*domain.Flashcard, error)
	ResetRecentlyReviewed(ctx context.Context, userID uuid.UUID, limit int, now time.Time) (int, error)
}

type attemptStore interface {
	Insert(ctx context.Context, a *domain.ReviewAttempt) (bool, error)
	GetByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.ReviewAttempt, error)
	GetByBatch(ctx context.Context, userID, batchID uuid.UUID) ([]domain.ReviewAttempt, error)
	ListByFlashcard(ctx context.Context, userID, flashcardID uuid.UUID, limit int) ([]domain.ReviewAttempt, error)
}

type vocabularyStore interface {
	Create(ctx context.Context, item *domain.VocabularyItem) (*domain.VocabularyItem, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.VocabularyItem, error)
	SetKnown(ctx context.Context, userID, id uuid.UUID, known bool) (*domain.VocabularyItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.VocabularyItem, error)
	Find(ctx context.Context, userID uuid.UUID, filter domain.VocabularyFilter) ([]domain.VocabularyItem, int, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// storage is one opened persistence backend.
type storage struct {
	cards    flashcardStore
	attempts attemptStore
	vocab    vocabularyStore
	tx       txRunner
	pinger   rest.Pinger
	close    func()
}

func openStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		return openSQLite(ctx, cfg.Storage, logger)
	default:
		return openPostgres(ctx, cfg.Database, logger)
	}
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*storage, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	logger.Info("storage ready",
		slog.String("driver", config.DriverPostgres),
		slog.Int("max_conns", int(cfg.MaxConns)),
	)

	return &storage{
		cards:    flashcard.New(pool),
		attempts: attempt.New(pool),
		vocab:    vocabulary.New(pool),
		tx:       postgres.NewTxManager(pool),
		pinger:   pool,
		close:    pool.Close,
	}, nil
}

func openSQLite(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*storage, error) {
	db, err := sqlite.Open(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, err
	}

	logger.Info("storage ready",
		slog.String("driver", config.DriverSQLite),
		slog.String("path", cfg.SQLitePath),
	)

	return &storage{
		cards:    sqlite.NewFlashcardRepo(db),
		attempts: sqlite.NewAttemptRepo(db),
		vocab:    sqlite.NewVocabularyRepo(db),
		tx:       sqlite.NewTxManager(db),
		pinger:   rest.PingFunc(db.PingContext),
		close:    func() { _ = db.Close() },
	}, nil
}

// replayStore is the study service's view of the replay cache.
type replayStore interface {
	Get(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.ReviewAttempt, error)
	Put(ctx context.Context, attempts []domain.ReviewAttempt) error
}

// openReplayCache dials Redis when configured. With no address it returns
// a nil store, which the study service treats as "no cache".
func openReplayCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (replayStore, *rest.Component, func(), error) {
	if !cfg.Redis.Enabled() {
		logger.Info("replay cache disabled")
		return nil, nil, func() {}, nil
	}

	rdb, err := replaycache.Dial(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, nil, err
	}

	logger.Info("replay cache ready",
		slog.String("addr", cfg.Redis.Addr),
		slog.Duration("ttl", cfg.Grading.ReplayTTL),
	)

	component := &rest.Component{
		Name:     "replay_cache",
		Pinger:   rest.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() }),
		Optional: true,
	}
	return replaycache.New(rdb, cfg.Grading.ReplayTTL), component, func() { _ = rdb.Close() }, nil
}
