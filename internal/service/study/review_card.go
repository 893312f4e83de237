package study

import (
	"context"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
	"github.com/heartmarshall/wordflow-backend/pkg/ctxutil"
)

// GradeCard applies one quality grade to one flashcard.
//
// Grading a card whose attempt id was already applied returns the stored
// result with Replayed set and leaves the card untouched. When SessionStart
// is given and the card was graded after it, the call fails with a
// *domain.SessionConflictError.
func (s *Service) GradeCard(ctx context.Context, input GradeCardInput) (*GradeResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	results, _, err := s.applyGrades(ctx, gradeRequest{
		userID:       userID,
		sessionID:    input.SessionID,
		sessionStart: input.SessionStart,
		items: []gradeItem{{
			attemptID:      input.AttemptID,
			flashcardID:    input.FlashcardID,
			quality:        input.Quality,
			responseTimeMs: input.ResponseTimeMs,
			exerciseType:   input.ExerciseType,
		}},
	})
	if err != nil {
		return nil, err
	}

	return &results[0], nil
}
