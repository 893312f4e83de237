package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
)

var attemptColumns = []string{
	"id", "user_id", "flashcard_id", "vocabulary_id", "batch_id", "session_id",
	"quality", "response_time_ms", "exercise_type",
	"prev_ease_factor", "prev_interval_days", "prev_repetitions",
	"next_ease_factor", "next_interval_days", "next_repetitions",
	"due_at", "reviewed_at",
}

type attemptRow struct {
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

func (r attemptRow) toDomain() domain.ReviewAttempt {
	a := domain.ReviewAttempt{
		ID:             r.ID,
		UserID:         r.UserID,
		FlashcardID:    r.FlashcardID,
		VocabularyID:   r.VocabularyID,
		BatchID:        r.BatchID,
		SessionID:      r.SessionID,
		Quality:        domain.Quality(r.Quality),
		ResponseTimeMs: r.ResponseTimeMs,
		Prev:           domain.CardSnapshot{EaseFactor: r.PrevEaseFactor, IntervalDays: r.PrevIntervalDays, Repetitions: r.PrevRepetitions},
		Next:           domain.CardSnapshot{EaseFactor: r.NextEaseFactor, IntervalDays: r.NextIntervalDays, Repetitions: r.NextRepetitions},
		DueAt:          r.DueAt,
		ReviewedAt:     r.ReviewedAt,
	}
	if r.ExerciseType != nil {
		et := domain.ExerciseType(*r.ExerciseType)
		a.ExerciseType = &et
	}
	return a
}

// AttemptRepo stores the review attempt log in SQLite.
type AttemptRepo struct {
	db *sql.DB
}

// NewAttemptRepo creates a new AttemptRepo.
func NewAttemptRepo(db *sql.DB) *AttemptRepo {
	return &AttemptRepo{db: db}
}

// Insert appends an attempt, reporting false if its id is already logged.
func (r *AttemptRepo) Insert(ctx context.Context, a *domain.ReviewAttempt) (bool, error) {
	var exerciseType *string
	if a.ExerciseType != nil {
		s := a.ExerciseType.String()
		exerciseType = &s
	}

	query, args, err := builder.Insert("review_attempts").
		Options("OR IGNORE").
		Columns(attemptColumns...).
		Values(a.ID, a.UserID, a.FlashcardID, a.VocabularyID, a.BatchID, a.SessionID,
			int(a.Quality), a.ResponseTimeMs, exerciseType,
			a.Prev.EaseFactor, a.Prev.IntervalDays, a.Prev.Repetitions,
			a.Next.EaseFactor, a.Next.IntervalDays, a.Next.Repetitions,
			a.DueAt.UTC(), a.ReviewedAt.UTC()).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build attempt insert: %w", err)
	}

	res, err := QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return false, mapError(err, "review_attempt", a.ID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("attempt rows affected: %w", err)
	}
	return n == 1, nil
}

// GetByIDs returns the owner's attempts among ids.
func (r *AttemptRepo) GetByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.ReviewAttempt, error) {
	if len(ids) == 0 {
		return []domain.ReviewAttempt{}, nil
	}
	return r.selectMany(ctx, builder.Select(attemptColumns...).
		From("review_attempts").
		Where(sq.Eq{"user_id": userID, "id": ids}), userID)
}

// GetByBatch returns the owner's attempts written under batchID.
func (r *AttemptRepo) GetByBatch(ctx context.Context, userID, batchID uuid.UUID) ([]domain.ReviewAttempt, error) {
	return r.selectMany(ctx, builder.Select(attemptColumns...).
		From("review_attempts").
		Where(sq.Eq{"user_id": userID, "batch_id": batchID}), batchID)
}

// ListByFlashcard returns a card's attempts, newest first.
func (r *AttemptRepo) ListByFlashcard(ctx context.Context, userID, flashcardID uuid.UUID, limit int) ([]domain.ReviewAttempt, error) {
	return r.selectMany(ctx, builder.Select(attemptColumns...).
		From("review_attempts").
		Where(sq.Eq{"user_id": userID, "flashcard_id": flashcardID}).
		OrderBy("reviewed_at DESC", "id").
		Limit(uint64(limit)), flashcardID)
}

func (r *AttemptRepo) selectMany(ctx context.Context, b sq.SelectBuilder, key any) ([]domain.ReviewAttempt, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build attempt query: %w", err)
	}

	var rows []attemptRow
	if err := sqlscan.Select(ctx, QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, mapError(err, "review_attempt", key)
	}
	out := make([]domain.ReviewAttempt, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}
