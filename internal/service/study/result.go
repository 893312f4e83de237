package study

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
)

// GradeResult is the outcome of grading one flashcard. Replayed is set when
// the attempt had already been applied and the stored outcome is returned.
type GradeResult struct {
	AttemptID    uuid.UUID
	FlashcardID  uuid.UUID
	VocabularyID uuid.UUID
	Quality      domain.Quality
	Previous     domain.CardSnapshot
	Next         domain.CardSnapshot
	DueAt        time.Time
	ReviewedAt   time.Time
	Replayed     bool
}

// BatchResult holds per-item outcomes of a batch grading, in request order.
type BatchResult struct {
	BatchID  uuid.UUID
	Results  []GradeResult
	Replayed bool
}

func resultFromAttempt(a *domain.ReviewAttempt, replayed bool) GradeResult {
	return GradeResult{
		AttemptID:    a.ID,
		FlashcardID:  a.FlashcardID,
		VocabularyID: a.VocabularyID,
		Quality:      a.Quality,
		Previous:     a.Prev,
		Next:         a.Next,
		DueAt:        a.DueAt,
		ReviewedAt:   a.ReviewedAt,
		Replayed:     replayed,
	}
}
