package study

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type flashcardRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Flashcard, error)
	// GetForUpdate locks and returns the caller's flashcards among ids, in id
	// order. Ids that do not exist or belong to someone else are omitted.
	GetForUpdate(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Flashcard, error)
	UpdateSchedule(ctx context.Context, userID, id uuid.UUID, upd domain.SchedulingUpdate) error
	GetDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.Flashcard, error)
	ResetDue(ctx context.Context, userID, id uuid.UUID, now time.Time) (*domain.Flashcard, error)
	ResetRecentlyReviewed(ctx context.Context, userID uuid.UUID, limit int, now time.Time) (int, error)
}

type attemptRepo interface {
	GetByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.ReviewAttempt, error)
	// GetByBatch returns every attempt written under batchID.
	GetByBatch(ctx context.Context, userID, batchID uuid.UUID) ([]domain.ReviewAttempt, error)
	// Insert appends an attempt. It reports false, without error, when an
	// attempt with the same id already exists.
	Insert(ctx context.Context, a *domain.ReviewAttempt) (bool, error)
	ListByFlashcard(ctx context.Context, userID, flashcardID uuid.UUID, limit int) ([]domain.ReviewAttempt, error)
}

type vocabularyRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.VocabularyItem, error)
}

type replayCache interface {
	Get(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.ReviewAttempt, error)
	Put(ctx context.Context, attempts []domain.ReviewAttempt) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds grading limits and defaults.
type Config struct {
	TxTimeout          time.Duration
	ResetRecentDefault int
	MaxBatchSize       int
	DueFeedLimit       int
}

// DefaultConfig returns the settings used when none are configured.
func DefaultConfig() Config {
	return Config{
		TxTimeout:          5 * time.Second,
		ResetRecentDefault: 50,
		MaxBatchSize:       20,
		DueFeedLimit:       100,
	}
}

// Service implements flashcard grading, resets and the due-card feed.
type Service struct {
	cards    flashcardRepo
	attempts attemptRepo
	vocab    vocabularyRepo
	replays  replayCache
	tx       txManager
	log      *slog.Logger
	cfg      Config
	now      func() time.Time
}

// NewService creates a new Study service. replays may be nil, in which case
// idempotency rests on the attempt log alone.
func NewService(
	log *slog.Logger,
	cards flashcardRepo,
	attempts attemptRepo,
	vocab vocabularyRepo,
	replays replayCache,
	tx txManager,
	cfg Config,
) *Service {
	return &Service{
		cards:    cards,
		attempts: attempts,
		vocab:    vocab,
		replays:  replays,
		tx:       tx,
		log:      log.With("service", "study"),
		cfg:      cfg,
		now:      time.Now,
	}
}
