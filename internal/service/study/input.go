package study

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
)

const maxResponseTimeMs = 600_000

// GradeCardInput holds the parameters for grading one flashcard.
type GradeCardInput struct {
	AttemptID      uuid.UUID
	FlashcardID    uuid.UUID
	Quality        domain.Quality
	SessionStart   *time.Time
	SessionID      *uuid.UUID
	ResponseTimeMs *int
	ExerciseType   *domain.ExerciseType
}

// Validate checks all fields and collects all errors.
func (i *GradeCardInput) Validate() error {
	var errs []domain.FieldError

	if i.AttemptID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "attempt_id", Message: "required"})
	}
	if i.FlashcardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "flashcard_id", Message: "required"})
	}
	errs = appendItemErrors(errs, "", i.Quality, i.ResponseTimeMs, i.ExerciseType)
	if i.SessionStart != nil && i.SessionStart.IsZero() {
		errs = append(errs, domain.FieldError{Field: "session_start", Message: "must be a valid timestamp"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// BatchItem is one flashcard grade within a batch.
type BatchItem struct {
	FlashcardID    uuid.UUID
	Quality        domain.Quality
	ResponseTimeMs *int
	ExerciseType   *domain.ExerciseType
}

// GradeBatchInput holds the parameters for grading several flashcards as
// one atomic unit, typically the pairs of a matching exercise.
type GradeBatchInput struct {
	BatchID      uuid.UUID
	SessionStart time.Time
	SessionID    *uuid.UUID
	Items        []BatchItem
}

// Validate checks all fields and collects all errors.
func (i *GradeBatchInput) Validate(maxItems int) error {
	var errs []domain.FieldError

	if i.BatchID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "batch_id", Message: "required"})
	}
	if i.SessionStart.IsZero() {
		errs = append(errs, domain.FieldError{Field: "session_start", Message: "required"})
	}
	if len(i.Items) == 0 {
		errs = append(errs, domain.FieldError{Field: "items", Message: "at least one required"})
	}
	if maxItems > 0 && len(i.Items) > maxItems {
		errs = append(errs, domain.FieldError{Field: "items", Message: "too many items"})
	}

	seen := make(map[uuid.UUID]struct{}, len(i.Items))
	for idx, item := range i.Items {
		prefix := "items[" + strconv.Itoa(idx) + "]."
		if item.FlashcardID == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: prefix + "flashcard_id", Message: "required"})
		} else if _, dup := seen[item.FlashcardID]; dup {
			errs = append(errs, domain.FieldError{Field: prefix + "flashcard_id", Message: "duplicate flashcard in batch"})
		}
		seen[item.FlashcardID] = struct{}{}
		errs = appendItemErrors(errs, prefix, item.Quality, item.ResponseTimeMs, item.ExerciseType)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func appendItemErrors(
	errs []domain.FieldError,
	prefix string,
	q domain.Quality,
	responseMs *int,
	typ *domain.ExerciseType,
) []domain.FieldError {
	if !q.IsValid() {
		errs = append(errs, domain.FieldError{Field: prefix + "quality", Message: "must be between 0 and 5"})
	}
	if responseMs != nil && (*responseMs < 0 || *responseMs > maxResponseTimeMs) {
		errs = append(errs, domain.FieldError{Field: prefix + "response_time_ms", Message: "must be between 0 and 600000"})
	}
	if typ != nil && !typ.IsValid() {
		errs = append(errs, domain.FieldError{Field: prefix + "exercise_type", Message: "unknown exercise type"})
	}
	return errs
}

// ResetRecentInput holds the parameters for bulk-resetting recent reviews.
type ResetRecentInput struct {
	Limit int // 0 means the configured default
}

// Validate checks all fields and collects all errors.
func (i *ResetRecentInput) Validate() error {
	if i.Limit < 0 || i.Limit > 500 {
		return domain.NewValidationError("limit", "must be between 0 and 500")
	}
	return nil
}

// DueCardsInput holds the parameters for the due-card feed.
type DueCardsInput struct {
	Limit int // 0 means the configured default
}

// Validate checks all fields and collects all errors.
func (i *DueCardsInput) Validate() error {
	if i.Limit < 0 || i.Limit > 500 {
		return domain.NewValidationError("limit", "must be between 0 and 500")
	}
	return nil
}

// HistoryInput holds the parameters for a flashcard's attempt history.
type HistoryInput struct {
	FlashcardID uuid.UUID
	Limit       int
}

// Validate checks all fields and collects all errors.
func (i *HistoryInput) Validate() error {
	var errs []domain.FieldError

	if i.FlashcardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "flashcard_id", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
