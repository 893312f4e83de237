package study

import (
	"context"
	"fmt"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
	"github.com/heartmarshall/wordflow-backend/pkg/ctxutil"
)

const defaultHistoryLimit = 50

// CardHistory returns the attempt log of one flashcard, newest first.
func (s *Service) CardHistory(ctx context.Context, input HistoryInput) ([]domain.ReviewAttempt, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultHistoryLimit
	}

	if _, err := s.cards.GetByID(ctx, userID, input.FlashcardID); err != nil {
		return nil, fmt.Errorf("get flashcard: %w", err)
	}

	attempts, err := s.attempts.ListByFlashcard(ctx, userID, input.FlashcardID, limit)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	return attempts, nil
}
