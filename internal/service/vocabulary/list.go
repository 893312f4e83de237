package vocabulary

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
	"github.com/heartmarshall/wordflow-backend/internal/textnorm"
	"github.com/heartmarshall/wordflow-backend/pkg/ctxutil"
)

// ListResult is one page of vocabulary plus the total matching count.
type ListResult struct {
	Items []domain.VocabularyItem
	Total int
}

// List returns the caller's vocabulary, newest first.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.VocabularyFilter{
		DocumentID: input.DocumentID,
		Known:      input.Known,
		Kind:       input.Kind,
		Limit:      input.Limit,
		Offset:     input.Offset,
	}
	if filter.Limit == 0 {
		filter.Limit = 50
	}
	if input.Search != nil {
		if n := textnorm.NormalizeBase(*input.Search); n != "" {
			filter.Search = &n
		}
	}

	items, total, err := s.items.Find(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("find vocabulary: %w", err)
	}

	return &ListResult{Items: items, Total: total}, nil
}

// MarkKnown sets or clears the known flag of one item. Known items stay
// scheduled; the flag only hides them from future lookups.
func (s *Service) MarkKnown(ctx context.Context, input MarkKnownInput) (*domain.VocabularyItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	item, err := s.items.SetKnown(ctx, userID, input.ID, input.Known)
	if err != nil {
		return nil, fmt.Errorf("set known: %w", err)
	}
	return item, nil
}

// Get returns one of the caller's vocabulary items.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.VocabularyItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	item, err := s.items.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get vocabulary item: %w", err)
	}
	return item, nil
}
