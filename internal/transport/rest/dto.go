package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
	"github.com/heartmarshall/wordflow-backend/internal/service/study"
)

// ---------------------------------------------------------------------------
// Vocabulary
// ---------------------------------------------------------------------------

// SaveVocabularyRequest is the body of POST /api/vocabulary.
type SaveVocabularyRequest struct {
	DocumentID  uuid.UUID `json:"document_id" validate:"required"`
	Term        string    `json:"term"        validate:"required,max=200"`
	Translation string    `json:"translation" validate:"required,max=500"`
	Context     string    `json:"context"     validate:"max=2000"`
	Page        *int      `json:"page,omitempty" validate:"omitempty,min=0"`
}

// MarkKnownRequest is the body of POST /api/vocabulary/{id}/known.
type MarkKnownRequest struct {
	Known *bool `json:"known" validate:"required"`
}

// listVocabularyQuery holds the raw query parameters of GET /api/vocabulary.
type listVocabularyQuery struct {
	DocumentID string `json:"document_id" validate:"omitempty,uuid"`
	Known      string `json:"known"       validate:"omitempty,boolean"`
	Kind       string `json:"kind"        validate:"omitempty,oneof=WORD PHRASE"`
	Search     string `json:"search"      validate:"max=200"`
	Limit      string `json:"limit"       validate:"omitempty,number"`
	Offset     string `json:"offset"      validate:"omitempty,number"`
}

// VocabularyItem is the wire form of domain.VocabularyItem.
type VocabularyItem struct {
	ID          uuid.UUID `json:"id"`
	DocumentID  uuid.UUID `json:"document_id"`
	Term        string    `json:"term"`
	Translation string    `json:"translation"`
	Context     string    `json:"context"`
	Kind        string    `json:"kind"`
	Page        *int      `json:"page,omitempty"`
	IsKnown     bool      `json:"is_known"`
	CreatedAt   time.Time `json:"created_at"`
}

// SaveVocabularyResponse is the item just saved and its new flashcard.
type SaveVocabularyResponse struct {
	Item      VocabularyItem `json:"item"`
	Flashcard Flashcard      `json:"flashcard"`
}

// VocabularyPage is one page of a vocabulary listing.
type VocabularyPage struct {
	Items []VocabularyItem `json:"items"`
	Total int              `json:"total"`
}

func toVocabularyItem(v *domain.VocabularyItem) VocabularyItem {
	return VocabularyItem{
		ID:          v.ID,
		DocumentID:  v.DocumentID,
		Term:        v.Term,
		Translation: v.Translation,
		Context:     v.Context,
		Kind:        v.Kind.String(),
		Page:        v.Page,
		IsKnown:     v.IsKnown,
		CreatedAt:   v.CreatedAt,
	}
}

func toVocabularyItems(items []domain.VocabularyItem) []VocabularyItem {
	out := make([]VocabularyItem, len(items))
	for i := range items {
		out[i] = toVocabularyItem(&items[i])
	}
	return out
}

// FromVocabularyItem converts the wire form back into the domain type.
func FromVocabularyItem(v VocabularyItem) domain.VocabularyItem {
	return domain.VocabularyItem{
		ID:          v.ID,
		DocumentID:  v.DocumentID,
		Term:        v.Term,
		Translation: v.Translation,
		Context:     v.Context,
		Kind:        domain.VocabularyKind(v.Kind),
		Page:        v.Page,
		IsKnown:     v.IsKnown,
		CreatedAt:   v.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Study
// ---------------------------------------------------------------------------

// Flashcard is the wire form of domain.Flashcard.
type Flashcard struct {
	ID             uuid.UUID  `json:"id"`
	VocabularyID   uuid.UUID  `json:"vocabulary_id"`
	EaseFactor     float64    `json:"ease_factor"`
	IntervalDays   int        `json:"interval_days"`
	Repetitions    int        `json:"repetitions"`
	Stage          string     `json:"stage"`
	DueAt          time.Time  `json:"due_at"`
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
}

func toFlashcard(c *domain.Flashcard) Flashcard {
	return Flashcard{
		ID:             c.ID,
		VocabularyID:   c.VocabularyID,
		EaseFactor:     c.EaseFactor,
		IntervalDays:   c.IntervalDays,
		Repetitions:    c.Repetitions,
		Stage:          c.Stage().String(),
		DueAt:          c.DueAt,
		LastReviewedAt: c.LastReviewedAt,
	}
}

// FromFlashcard converts the wire form back into the domain type.
func FromFlashcard(c Flashcard) domain.Flashcard {
	return domain.Flashcard{
		ID:             c.ID,
		VocabularyID:   c.VocabularyID,
		EaseFactor:     c.EaseFactor,
		IntervalDays:   c.IntervalDays,
		Repetitions:    c.Repetitions,
		DueAt:          c.DueAt,
		LastReviewedAt: c.LastReviewedAt,
	}
}

// DueCard pairs a due flashcard with its vocabulary item.
type DueCard struct {
	Flashcard  Flashcard      `json:"flashcard"`
	Vocabulary VocabularyItem `json:"vocabulary"`
}

// DueFeed is the response of GET /api/study/due.
type DueFeed struct {
	Cards []DueCard        `json:"cards"`
	Pool  []VocabularyItem `json:"pool"`
}

func toDueFeed(f *study.DueFeed) DueFeed {
	cards := make([]DueCard, len(f.Cards))
	for i := range f.Cards {
		cards[i] = DueCard{
			Flashcard:  toFlashcard(&f.Cards[i].Card),
			Vocabulary: toVocabularyItem(&f.Cards[i].Vocabulary),
		}
	}
	return DueFeed{Cards: cards, Pool: toVocabularyItems(f.Pool)}
}

// GradeRequest is the body of POST /api/study/grade.
type GradeRequest struct {
	AttemptID      uuid.UUID  `json:"attempt_id"   validate:"required"`
	FlashcardID    uuid.UUID  `json:"flashcard_id" validate:"required"`
	Quality        *int       `json:"quality"      validate:"required,min=0,max=5"`
	SessionStart   *time.Time `json:"session_start,omitempty"`
	SessionID      *uuid.UUID `json:"session_id,omitempty"`
	ResponseTimeMs *int       `json:"response_time_ms,omitempty" validate:"omitempty,min=0,max=600000"`
	ExerciseType   *string    `json:"exercise_type,omitempty"    validate:"omitempty,oneof=MEANING_IN_CONTEXT CLOZE_BLANK REVERSE_MCQ MATCHING_PAIRS"`
}

// GradeBatchItem is one flashcard grade of a batch.
type GradeBatchItem struct {
	FlashcardID    uuid.UUID `json:"flashcard_id" validate:"required"`
	Quality        *int      `json:"quality"      validate:"required,min=0,max=5"`
	ResponseTimeMs *int      `json:"response_time_ms,omitempty" validate:"omitempty,min=0,max=600000"`
	ExerciseType   *string   `json:"exercise_type,omitempty"    validate:"omitempty,oneof=MEANING_IN_CONTEXT CLOZE_BLANK REVERSE_MCQ MATCHING_PAIRS"`
}

// GradeBatchRequest is the body of POST /api/study/grade-batch.
type GradeBatchRequest struct {
	BatchID      uuid.UUID        `json:"batch_id"      validate:"required"`
	SessionStart time.Time        `json:"session_start" validate:"required"`
	SessionID    *uuid.UUID       `json:"session_id,omitempty"`
	Items        []GradeBatchItem `json:"items"         validate:"required,min=1,dive"`
}

// Snapshot is the wire form of domain.CardSnapshot.
type Snapshot struct {
	EaseFactor   float64 `json:"ease_factor"`
	IntervalDays int     `json:"interval_days"`
	Repetitions  int     `json:"repetitions"`
}

func toSnapshot(s domain.CardSnapshot) Snapshot {
	return Snapshot{EaseFactor: s.EaseFactor, IntervalDays: s.IntervalDays, Repetitions: s.Repetitions}
}

// GradeResult is the outcome of one graded flashcard.
type GradeResult struct {
	AttemptID    uuid.UUID `json:"attempt_id"`
	FlashcardID  uuid.UUID `json:"flashcard_id"`
	VocabularyID uuid.UUID `json:"vocabulary_id"`
	Quality      int       `json:"quality"`
	Previous     Snapshot  `json:"previous"`
	Next         Snapshot  `json:"next"`
	DueAt        time.Time `json:"due_at"`
	ReviewedAt   time.Time `json:"reviewed_at"`
	Replayed     bool      `json:"replayed"`
}

func toGradeResult(r *study.GradeResult) GradeResult {
	return GradeResult{
		AttemptID:    r.AttemptID,
		FlashcardID:  r.FlashcardID,
		VocabularyID: r.VocabularyID,
		Quality:      int(r.Quality),
		Previous:     toSnapshot(r.Previous),
		Next:         toSnapshot(r.Next),
		DueAt:        r.DueAt,
		ReviewedAt:   r.ReviewedAt,
		Replayed:     r.Replayed,
	}
}

// GradeBatchResponse holds per-item results in request order.
type GradeBatchResponse struct {
	BatchID  uuid.UUID     `json:"batch_id"`
	Results  []GradeResult `json:"results"`
	Replayed bool          `json:"replayed"`
}

// ResetRecentRequest is the optional body of POST /api/study/reset-recent.
type ResetRecentRequest struct {
	Limit int `json:"limit" validate:"min=0,max=500"`
}

// ResetRecentResponse reports how many flashcards became due.
type ResetRecentResponse struct {
	Reset int `json:"reset"`
}

// Attempt is one entry of a flashcard's review history.
type Attempt struct {
	ID             uuid.UUID  `json:"id"`
	BatchID        *uuid.UUID `json:"batch_id,omitempty"`
	SessionID      *uuid.UUID `json:"session_id,omitempty"`
	Quality        int        `json:"quality"`
	ResponseTimeMs *int       `json:"response_time_ms,omitempty"`
	ExerciseType   *string    `json:"exercise_type,omitempty"`
	Previous       Snapshot   `json:"previous"`
	Next           Snapshot   `json:"next"`
	DueAt          time.Time  `json:"due_at"`
	ReviewedAt     time.Time  `json:"reviewed_at"`
}

// CardHistory is the response of GET /api/study/cards/{id}/history.
type CardHistory struct {
	FlashcardID uuid.UUID `json:"flashcard_id"`
	Attempts    []Attempt `json:"attempts"`
}

func toAttempt(a *domain.ReviewAttempt) Attempt {
	out := Attempt{
		ID:             a.ID,
		BatchID:        a.BatchID,
		SessionID:      a.SessionID,
		Quality:        int(a.Quality),
		ResponseTimeMs: a.ResponseTimeMs,
		Previous:       toSnapshot(a.Prev),
		Next:           toSnapshot(a.Next),
		DueAt:          a.DueAt,
		ReviewedAt:     a.ReviewedAt,
	}
	if a.ExerciseType != nil {
		s := a.ExerciseType.String()
		out.ExerciseType = &s
	}
	return out
}

// ---------------------------------------------------------------------------
// Exercises
// ---------------------------------------------------------------------------

// GenerateExerciseRequest is the body of POST /api/exercises.
type GenerateExerciseRequest struct {
	FlashcardIDs []uuid.UUID `json:"flashcard_ids" validate:"required,min=1,max=5,unique"`
	Type         *string     `json:"type,omitempty" validate:"omitempty,oneof=MEANING_IN_CONTEXT CLOZE_BLANK REVERSE_MCQ MATCHING_PAIRS"`
	Seed         *uint64     `json:"seed,omitempty"`
}

// MatchPair is one canonical pairing of a matching exercise.
type MatchPair struct {
	VocabularyID uuid.UUID `json:"vocabulary_id"`
	Term         string    `json:"term"`
	Translation  string    `json:"translation"`
}

// Exercise is the wire form of domain.Exercise.
type Exercise struct {
	Type          string      `json:"type"`
	Prompt        string      `json:"prompt,omitempty"`
	Context       string      `json:"context,omitempty"`
	Answer        string      `json:"answer,omitempty"`
	Options       []string    `json:"options,omitempty"`
	Pairs         []MatchPair `json:"pairs,omitempty"`
	Terms         []string    `json:"terms,omitempty"`
	Translations  []string    `json:"translations,omitempty"`
	VocabularyIDs []uuid.UUID `json:"vocabulary_ids"`
}

func toExercise(e *domain.Exercise) Exercise {
	out := Exercise{
		Type:          e.Type.String(),
		Prompt:        e.Prompt,
		Context:       e.Context,
		Answer:        e.Answer,
		Options:       e.Options,
		Terms:         e.Terms,
		Translations:  e.Translations,
		VocabularyIDs: e.VocabularyIDs,
	}
	for _, p := range e.Pairs {
		out.Pairs = append(out.Pairs, MatchPair(p))
	}
	return out
}

func exerciseTypePtr(s *string) *domain.ExerciseType {
	if s == nil {
		return nil
	}
	t := domain.ExerciseType(*s)
	return &t
}
