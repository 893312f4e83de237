package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
	"github.com/heartmarshall/wordflow-backend/pkg/ctxutil"
)

// DueFeed is the set of due flashcards together with the owner's whole
// vocabulary pool, which exercise generation draws distractors from.
type DueFeed struct {
	Cards []domain.DueCard
	Pool  []domain.VocabularyItem
}

// DueCards returns the owner's due flashcards, oldest due first and least
// recently reviewed first among equals, paired with their vocabulary items.
func (s *Service) DueCards(ctx context.Context, input DueCardsInput) (*DueFeed, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.DueFeedLimit
	}

	var (
		cards []domain.Flashcard
		pool  []domain.VocabularyItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cards, err = s.cards.GetDue(gctx, userID, s.now(), limit)
		if err != nil {
			return fmt.Errorf("get due flashcards: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		pool, err = s.vocab.ListByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("list vocabulary: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*domain.VocabularyItem, len(pool))
	for i := range pool {
		byID[pool[i].ID] = &pool[i]
	}

	due := make([]domain.DueCard, 0, len(cards))
	for _, c := range cards {
		item, ok := byID[c.VocabularyID]
		if !ok {
			// Saved after the pool snapshot; it will show up next fetch.
			continue
		}
		due = append(due, domain.DueCard{Card: c, Vocabulary: *item})
	}

	s.log.InfoContext(ctx, "due feed generated",
		slog.String("user_id", userID.String()),
		slog.Int("due_count", len(due)),
		slog.Int("pool_size", len(pool)),
	)

	return &DueFeed{Cards: due, Pool: pool}, nil
}
