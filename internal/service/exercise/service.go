package exercise

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
	"github.com/heartmarshall/wordflow-backend/pkg/ctxutil"
)

type flashcardRepo interface {
	GetByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Flashcard, error)
}

type vocabularyRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.VocabularyItem, error)
}

// Service generates exercises for stored flashcards.
type Service struct {
	cards flashcardRepo
	vocab vocabularyRepo
	cfg   Config
	log   *slog.Logger
	seed  func() uint64
}

// NewService creates a new Exercise service.
func NewService(log *slog.Logger, cards flashcardRepo, vocab vocabularyRepo, cfg Config) *Service {
	return &Service{
		cards: cards,
		vocab: vocab,
		cfg:   cfg,
		log:   log.With("service", "exercise"),
		seed:  rand.Uint64,
	}
}

// GenerateInput selects the flashcards an exercise is built for. One id
// yields a single-item exercise; several ids yield matching pairs.
type GenerateInput struct {
	FlashcardIDs []uuid.UUID
	Type         *domain.ExerciseType
	Seed         *uint64
}

// Validate checks all fields and collects all errors.
func (i *GenerateInput) Validate(matchingSize int) error {
	var errs []domain.FieldError

	switch n := len(i.FlashcardIDs); {
	case n == 0:
		errs = append(errs, domain.FieldError{Field: "flashcard_ids", Message: "at least one required"})
	case n > matchingSize:
		errs = append(errs, domain.FieldError{Field: "flashcard_ids", Message: "too many flashcards"})
	}
	for _, id := range i.FlashcardIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "flashcard_ids", Message: "must not contain empty ids"})
			break
		}
	}
	if i.Type != nil {
		switch {
		case !i.Type.IsValid():
			errs = append(errs, domain.FieldError{Field: "type", Message: "unknown exercise type"})
		case *i.Type == domain.ExerciseMatchingPairs && len(i.FlashcardIDs) < 2:
			errs = append(errs, domain.FieldError{Field: "type", Message: "matching needs several flashcards"})
		case *i.Type != domain.ExerciseMatchingPairs && len(i.FlashcardIDs) > 1:
			errs = append(errs, domain.FieldError{Field: "type", Message: "single-item exercise takes one flashcard"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Generate builds an exercise for the requested flashcards. When every
// generator fails it returns domain.ErrGenerationFailed, which the caller can
// retry with another seed or skip.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*domain.Exercise, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MatchingSize); err != nil {
		return nil, err
	}

	cards, err := s.cards.GetByIDs(ctx, userID, input.FlashcardIDs)
	if err != nil {
		return nil, fmt.Errorf("get flashcards: %w", err)
	}
	if missing := missingIDs(input.FlashcardIDs, cards); len(missing) > 0 {
		return nil, &domain.MissingCardsError{IDs: missing}
	}

	pool, err := s.vocab.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list vocabulary: %w", err)
	}
	byID := make(map[uuid.UUID]domain.VocabularyItem, len(pool))
	for _, v := range pool {
		byID[v.ID] = v
	}

	seed := s.seed()
	if input.Seed != nil {
		seed = *input.Seed
	}
	gen := NewGenerator(s.cfg, seed)

	var (
		ex    *domain.Exercise
		built bool
	)
	if len(cards) > 1 {
		batch := make([]domain.VocabularyItem, 0, len(cards))
		for _, c := range cards {
			if v, found := byID[c.VocabularyID]; found {
				batch = append(batch, v)
			}
		}
		ex, built = gen.GenerateMatching(batch)
	} else {
		target, found := byID[cards[0].VocabularyID]
		if !found {
			return nil, fmt.Errorf("vocabulary for flashcard %s: %w", cards[0].ID, domain.ErrNotFound)
		}
		var typ domain.ExerciseType
		if input.Type != nil {
			typ = *input.Type
		}
		ex, built = gen.Generate(target, pool, typ, cards[0].Stage())
	}
	if !built {
		s.log.InfoContext(ctx, "exercise generation exhausted",
			slog.String("user_id", userID.String()),
			slog.Int("flashcards", len(cards)),
			slog.Uint64("seed", seed),
		)
		return nil, domain.ErrGenerationFailed
	}

	return ex, nil
}

func missingIDs(want []uuid.UUID, got []domain.Flashcard) []uuid.UUID {
	have := make(map[uuid.UUID]struct{}, len(got))
	for _, c := range got {
		have[c.ID] = struct{}{}
	}
	var missing []uuid.UUID
	for _, id := range want {
		if _, ok := have[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
