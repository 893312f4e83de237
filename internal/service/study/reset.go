package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
	"github.com/heartmarshall/wordflow-backend/pkg/ctxutil"
)

// ResetCard makes one flashcard due now. The scheduling state is kept and
// no attempt is logged.
func (s *Service) ResetCard(ctx context.Context, flashcardID uuid.UUID) (*domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if flashcardID == uuid.Nil {
		return nil, domain.NewValidationError("flashcard_id", "required")
	}

	card, err := s.cards.ResetDue(ctx, userID, flashcardID, s.now())
	if err != nil {
		return nil, fmt.Errorf("reset flashcard: %w", err)
	}

	s.log.InfoContext(ctx, "flashcard reset",
		slog.String("user_id", userID.String()),
		slog.String("flashcard_id", flashcardID.String()),
	)

	return card, nil
}

// ResetRecent makes the most recently reviewed flashcards due now, for
// deliberate re-drilling. It returns how many cards were reset.
func (s *Service) ResetRecent(ctx context.Context, input ResetRecentInput) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.ResetRecentDefault
	}

	n, err := s.cards.ResetRecentlyReviewed(ctx, userID, limit, s.now())
	if err != nil {
		return 0, fmt.Errorf("reset recent flashcards: %w", err)
	}

	s.log.InfoContext(ctx, "recent flashcards reset",
		slog.String("user_id", userID.String()),
		slog.Int("limit", limit),
		slog.Int("reset", n),
	)

	return n, nil
}
