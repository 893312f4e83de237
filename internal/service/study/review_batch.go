package study

import (
	"context"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
	"github.com/heartmarshall/wordflow-backend/pkg/ctxutil"
)

// GradeBatch grades several flashcards all-or-nothing.
//
// A missing card rejects the batch with a *domain.MissingCardsError and a
// card graded after SessionStart rejects it with a *domain.SessionConflictError;
// in both cases nothing is written. Resending a batch id returns the stored
// per-item results unchanged.
func (s *Service) GradeBatch(ctx context.Context, input GradeBatchInput) (*BatchResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxBatchSize); err != nil {
		return nil, err
	}

	items := make([]gradeItem, len(input.Items))
	for i, it := range input.Items {
		items[i] = gradeItem{
			attemptID:      batchAttemptID(input.BatchID, it.FlashcardID),
			flashcardID:    it.FlashcardID,
			quality:        it.Quality,
			responseTimeMs: it.ResponseTimeMs,
			exerciseType:   it.ExerciseType,
		}
	}

	batchID := input.BatchID
	sessionStart := input.SessionStart
	results, replayed, err := s.applyGrades(ctx, gradeRequest{
		userID:       userID,
		batchID:      &batchID,
		sessionID:    input.SessionID,
		sessionStart: &sessionStart,
		items:        items,
	})
	if err != nil {
		return nil, err
	}

	return &BatchResult{
		BatchID:  input.BatchID,
		Results:  results,
		Replayed: replayed,
	}, nil
}
