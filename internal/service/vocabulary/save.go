package vocabulary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
	"github.com/heartmarshall/wordflow-backend/internal/textnorm"
	"github.com/heartmarshall/wordflow-backend/pkg/ctxutil"
)

// SaveResult is a saved item together with its new flashcard.
type SaveResult struct {
	Item *domain.VocabularyItem
	Card *domain.Flashcard
}

// Save stores a term selected while reading and creates its flashcard in the
// same transaction. Saving the same term twice from one document fails with
// domain.ErrAlreadyExists.
func (s *Service) Save(ctx context.Context, input SaveInput) (*SaveResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	term := strings.TrimSpace(input.Term)
	normalized := textnorm.NormalizeBase(term)
	if normalized == "" {
		return nil, domain.NewValidationError("term", "must contain letters")
	}

	kind := domain.VocabularyKindWord
	if textnorm.WordCount(term) > 1 {
		kind = domain.VocabularyKindPhrase
	}

	snippet := strings.TrimSpace(input.Context)
	if snippet == "" {
		snippet = term
	}

	now := s.now().UTC()
	item := &domain.VocabularyItem{
		ID:             uuid.New(),
		UserID:         userID,
		DocumentID:     input.DocumentID,
		Term:           term,
		TermNormalized: normalized,
		Translation:    strings.TrimSpace(input.Translation),
		Context:        snippet,
		Kind:           kind,
		Page:           input.Page,
		CreatedAt:      now,
	}

	var result SaveResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, err := s.items.Create(txCtx, item)
		if err != nil {
			return fmt.Errorf("create vocabulary item: %w", err)
		}

		card := domain.NewFlashcard(userID, created.ID, now)
		createdCard, err := s.cards.Create(txCtx, &card)
		if err != nil {
			return fmt.Errorf("create flashcard: %w", err)
		}

		result = SaveResult{Item: created, Card: createdCard}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "vocabulary saved",
		slog.String("user_id", userID.String()),
		slog.String("vocabulary_id", result.Item.ID.String()),
		slog.String("kind", string(kind)),
	)

	return &result, nil
}
