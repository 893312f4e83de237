package domain

import (
	"time"

	"github.com/google/uuid"
)

// Initial scheduling state of a freshly created flashcard.
const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
	InitialInterval   = 1
)

// Flashcard holds the SM-2 scheduling state of one VocabularyItem.
type Flashcard struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	VocabularyID   uuid.UUID
	EaseFactor     float64
	IntervalDays   int
	Repetitions    int
	DueAt          time.Time
	LastReviewedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsDue returns true if the card needs review at the given time.
func (c *Flashcard) IsDue(now time.Time) bool {
	return !c.DueAt.After(now)
}

// Stage returns the learning stage derived from the repetition counter.
func (c *Flashcard) Stage() LearningStage {
	return StageForRepetitions(c.Repetitions)
}

// GradedAfter reports whether the card was reviewed strictly after t.
// This is the single-timestamp fencing token used for session conflicts.
// t comes from the client clock and LastReviewedAt from the server's, so
// skew between them can hide or invent a conflict.
func (c *Flashcard) GradedAfter(t time.Time) bool {
	return c.LastReviewedAt != nil && c.LastReviewedAt.After(t)
}

// Snapshot captures the scheduling fields that a review attempt records.
func (c *Flashcard) Snapshot() CardSnapshot {
	return CardSnapshot{
		EaseFactor:   c.EaseFactor,
		IntervalDays: c.IntervalDays,
		Repetitions:  c.Repetitions,
	}
}

// CardSnapshot is the pre- or post-grading scheduling state of a flashcard.
type CardSnapshot struct {
	EaseFactor   float64
	IntervalDays int
	Repetitions  int
}

// SchedulingUpdate holds the fields written to a flashcard after grading.
type SchedulingUpdate struct {
	EaseFactor     float64
	IntervalDays   int
	Repetitions    int
	DueAt          time.Time
	LastReviewedAt time.Time
}

// ReviewAttempt is the immutable log record of one grading event.
// ID is the client-supplied idempotency key.
type ReviewAttempt struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	FlashcardID    uuid.UUID
	VocabularyID   uuid.UUID
	BatchID        *uuid.UUID
	SessionID      *uuid.UUID
	Quality        Quality
	ResponseTimeMs *int
	ExerciseType   *ExerciseType
	Prev           CardSnapshot
	Next           CardSnapshot
	DueAt          time.Time
	ReviewedAt     time.Time
}

// NewFlashcard returns the initial card for a freshly saved vocabulary item,
// due immediately.
func NewFlashcard(userID, vocabularyID uuid.UUID, now time.Time) Flashcard {
	return Flashcard{
		ID:           uuid.New(),
		UserID:       userID,
		VocabularyID: vocabularyID,
		EaseFactor:   DefaultEaseFactor,
		IntervalDays: InitialInterval,
		Repetitions:  0,
		DueAt:        now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
