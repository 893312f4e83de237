package vocabulary

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

type vocabularyRepo interface {
	Create(ctx context.Context, item *domain.VocabularyItem) (*domain.VocabularyItem, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.VocabularyItem, error)
	Find(ctx context.Context, userID uuid.UUID, filter domain.VocabularyFilter) ([]domain.VocabularyItem, int, error)
	SetKnown(ctx context.Context, userID, id uuid.UUID, known bool) (*domain.VocabularyItem, error)
}

type flashcardRepo interface {
	Create(ctx context.Context, card *domain.Flashcard) (*domain.Flashcard, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service captures vocabulary saved while reading and keeps each item's
// flashcard alongside it.
type Service struct {
	items vocabularyRepo
	cards flashcardRepo
	tx    txManager
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a new Vocabulary service.
func NewService(log *slog.Logger, items vocabularyRepo, cards flashcardRepo, tx txManager) *Service {
	return &Service{
		items: items,
		cards: cards,
		tx:    tx,
		log:   log.With("service", "vocabulary"),
		now:   time.Now,
	}
}
