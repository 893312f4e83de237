// Package attempt stores the append-only review attempt log on PostgreSQL.
// The attempt id is the client's idempotency key, so inserts never overwrite.
package attempt

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/wordflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordflow-backend/internal/domain"
)

const entity = "review_attempt"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "user_id", "flashcard_id", "vocabulary_id", "batch_id", "session_id",
	"quality", "response_time_ms", "exercise_type",
	"prev_ease_factor", "prev_interval_days", "prev_repetitions",
	"next_ease_factor", "next_interval_days", "next_repetitions",
	"due_at", "reviewed_at",
}

// Repo provides review attempt persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review attempt repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID               uuid.UUID  `db:"id"`
	UserID           uuid.UUID  `db:"user_id"`
	FlashcardID      uuid.UUID  `db:"flashcard_id"`
	VocabularyID     uuid.UUID  `db:"vocabulary_id"`
	BatchID          *uuid.UUID `db:"batch_id"`
	SessionID        *uuid.UUID `db:"session_id"`
	Quality          int        `db:"quality"`
	ResponseTimeMs   *int       `db:"response_time_ms"`
	ExerciseType     *string    `db:"exercise_type"`
	PrevEaseFactor   float64    `db:"prev_ease_factor"`
	PrevIntervalDays int        `db:"prev_interval_days"`
	PrevRepetitions  int        `db:"prev_repetitions"`
	NextEaseFactor   float64    `db:"next_ease_factor"`
	NextIntervalDays int        `db:"next_interval_days"`
	NextRepetitions  int        `db:"next_repetitions"`
	DueAt            time.Time  `db:"due_at"`
	ReviewedAt       time.Time  `db:"reviewed_at"`
}

func (r row) toDomain() domain.ReviewAttempt {
	a := domain.ReviewAttempt{
		ID:             r.ID,
		UserID:         r.UserID,
		FlashcardID:    r.FlashcardID,
		VocabularyID:   r.VocabularyID,
		BatchID:        r.BatchID,
		SessionID:      r.SessionID,
		Quality:        domain.Quality(r.Quality),
		ResponseTimeMs: r.ResponseTimeMs,
		Prev: domain.CardSnapshot{
			EaseFactor:   r.PrevEaseFactor,
			IntervalDays: r.PrevIntervalDays,
			Repetitions:  r.PrevRepetitions,
		},
		Next: domain.CardSnapshot{
			EaseFactor:   r.NextEaseFactor,
			IntervalDays: r.NextIntervalDays,
			Repetitions:  r.NextRepetitions,
		},
		DueAt:      r.DueAt,
		ReviewedAt: r.ReviewedAt,
	}
	if r.ExerciseType != nil {
		et := domain.ExerciseType(*r.ExerciseType)
		a.ExerciseType = &et
	}
	return a
}

func toDomain(rows []row) []domain.ReviewAttempt {
	out := make([]domain.ReviewAttempt, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out
}

const insertSQL = `
INSERT INTO review_attempts (id, user_id, flashcard_id, vocabulary_id, batch_id, session_id,
    quality, response_time_ms, exercise_type,
    prev_ease_factor, prev_interval_days, prev_repetitions,
    next_ease_factor, next_interval_days, next_repetitions,
    due_at, reviewed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
ON CONFLICT (id) DO NOTHING`

const byBatchSQL = `
SELECT id, user_id, flashcard_id, vocabulary_id, batch_id, session_id,
       quality, response_time_ms, exercise_type,
       prev_ease_factor, prev_interval_days, prev_repetitions,
       next_ease_factor, next_interval_days, next_repetitions,
       due_at, reviewed_at
FROM review_attempts
WHERE user_id = $1 AND batch_id = $2`

const listByFlashcardSQL = `
SELECT id, user_id, flashcard_id, vocabulary_id, batch_id, session_id,
       quality, response_time_ms, exercise_type,
       prev_ease_factor, prev_interval_days, prev_repetitions,
       next_ease_factor, next_interval_days, next_repetitions,
       due_at, reviewed_at
FROM review_attempts
WHERE user_id = $1 AND flashcard_id = $2
ORDER BY reviewed_at DESC, id
LIMIT $3`

// Insert appends an attempt. It reports false, without error, when an
// attempt with the same id already exists.
func (r *Repo) Insert(ctx context.Context, a *domain.ReviewAttempt) (bool, error) {
	var exerciseType *string
	if a.ExerciseType != nil {
		s := a.ExerciseType.String()
		exerciseType = &s
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertSQL,
		a.ID, a.UserID, a.FlashcardID, a.VocabularyID, a.BatchID, a.SessionID,
		int(a.Quality), a.ResponseTimeMs, exerciseType,
		a.Prev.EaseFactor, a.Prev.IntervalDays, a.Prev.Repetitions,
		a.Next.EaseFactor, a.Next.IntervalDays, a.Next.Repetitions,
		a.DueAt, a.ReviewedAt,
	)
	if err != nil {
		return false, postgres.MapError(err, entity, a.ID)
	}
	return tag.RowsAffected() == 1, nil
}

// GetByIDs returns the owner's attempts among ids, in no particular order.
func (r *Repo) GetByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.ReviewAttempt, error) {
	if len(ids) == 0 {
		return []domain.ReviewAttempt{}, nil
	}

	query, args, err := psql.Select(columns...).
		From("review_attempts").
		Where(sq.Eq{"user_id": userID, "id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build attempts by ids query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, userID)
	}
	return toDomain(rows), nil
}

// GetByBatch returns the owner's attempts written under batchID.
func (r *Repo) GetByBatch(ctx context.Context, userID, batchID uuid.UUID) ([]domain.ReviewAttempt, error) {
	var rows []row
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, byBatchSQL, userID, batchID)
	if err != nil {
		return nil, postgres.MapError(err, entity, batchID)
	}
	return toDomain(rows), nil
}

// ListByFlashcard returns a card's attempts, newest first.
func (r *Repo) ListByFlashcard(ctx context.Context, userID, flashcardID uuid.UUID, limit int) ([]domain.ReviewAttempt, error) {
	var rows []row
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listByFlashcardSQL, userID, flashcardID, limit)
	if err != nil {
		return nil, postgres.MapError(err, entity, flashcardID)
	}
	return toDomain(rows), nil
}
