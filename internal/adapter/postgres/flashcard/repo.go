// Package flashcard implements flashcard persistence on PostgreSQL.
// Fixed-shape queries are raw SQL; id-batch queries are built with squirrel.
package flashcard

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

const entity = "flashcard"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "user_id", "vocabulary_id", "ease_factor", "interval_days", "repetitions",
	"due_at", "last_reviewed_at", "created_at", "updated_at",
}

// Repo provides flashcard persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new flashcard repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID             uuid.UUID  `db:"id"`
	UserID         uuid.UUID  `db:"user_id"`
	VocabularyID   uuid.UUID  `db:"vocabulary_id"`
	EaseFactor     float64    `db:"ease_factor"`
	IntervalDays   int        `db:"interval_days"`
	Repetitions    int        `db:"repetitions"`
	DueAt          time.Time  `db:"due_at"`
	LastReviewedAt *time.Time `db:"last_reviewed_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.Flashcard {
	return domain.Flashcard{
		ID:             r.ID,
		UserID:         r.UserID,
		VocabularyID:   r.VocabularyID,
		EaseFactor:     r.EaseFactor,
		IntervalDays:   r.IntervalDays,
		Repetitions:    r.Repetitions,
		DueAt:          r.DueAt,
		LastReviewedAt: r.LastReviewedAt,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func toDomain(rows []row) []domain.Flashcard {
	out := make([]domain.Flashcard, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const selectColumns = `id, user_id, vocabulary_id, ease_factor, interval_days, repetitions,
       due_at, last_reviewed_at, created_at, updated_at`

const createSQL = `
INSERT INTO flashcards (id, user_id, vocabulary_id, ease_factor, interval_days, repetitions,
                        due_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + selectColumns

const getByIDSQL = `
SELECT ` + selectColumns + `
FROM flashcards
WHERE user_id = $1 AND id = $2`

const updateScheduleSQL = `
UPDATE flashcards
SET ease_factor = $3, interval_days = $4, repetitions = $5,
    due_at = $6, last_reviewed_at = $7, updated_at = $7
WHERE user_id = $1 AND id = $2`

const getDueSQL = `
SELECT ` + selectColumns + `
FROM flashcards
WHERE user_id = $1 AND due_at <= $2
ORDER BY due_at ASC, last_reviewed_at ASC NULLS FIRST, id ASC
LIMIT $3`

const resetDueSQL = `
UPDATE flashcards
SET due_at = $3, updated_at = $3
WHERE user_id = $1 AND id = $2
RETURNING ` + selectColumns

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new flashcard and returns the stored row.
func (r *Repo) Create(ctx context.Context, c *domain.Flashcard) (*domain.Flashcard, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	err := pgxscan.Get(ctx, q, &out, createSQL,
		c.ID, c.UserID, c.VocabularyID, c.EaseFactor, c.IntervalDays, c.Repetitions,
		c.DueAt, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, entity, c.ID)
	}

	card := out.toDomain()
	return &card, nil
}

// UpdateSchedule writes the post-grading scheduling state of one flashcard.
func (r *Repo) UpdateSchedule(ctx context.Context, userID, id uuid.UUID, upd domain.SchedulingUpdate) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, updateScheduleSQL,
		userID, id, upd.EaseFactor, upd.IntervalDays, upd.Repetitions, upd.DueAt, upd.LastReviewedAt,
	)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// ResetDue makes one flashcard due at now without touching its scheduling state.
func (r *Repo) ResetDue(ctx context.Context, userID, id uuid.UUID, now time.Time) (*domain.Flashcard, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	if err := pgxscan.Get(ctx, q, &out, resetDueSQL, userID, id, now); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	card := out.toDomain()
	return &card, nil
}

// ResetRecentlyReviewed makes the limit most recently reviewed flashcards due
// at now and returns how many rows changed.
func (r *Repo) ResetRecentlyReviewed(ctx context.Context, userID uuid.UUID, limit int, now time.Time) (int, error) {
	recent := psql.Select("id").
		From("flashcards").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.NotEq{"last_reviewed_at": nil}).
		OrderBy("last_reviewed_at DESC").
		Limit(uint64(limit))

	query, args, err := psql.Update("flashcards").
		Set("due_at", now).
		Set("updated_at", now).
		Where(sq.Eq{"user_id": userID}).
		Where(recent.Prefix("id IN (").Suffix(")")).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build reset recent query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, entity, userID)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a flashcard by primary key filtered by owner.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Flashcard, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	if err := pgxscan.Get(ctx, q, &out, getByIDSQL, userID, id); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	card := out.toDomain()
	return &card, nil
}

// GetByIDs returns the owner's flashcards among ids. Unknown or foreign ids
// are silently absent from the result.
func (r *Repo) GetByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Flashcard, error) {
	return r.selectByIDs(ctx, userID, ids, false)
}

// GetForUpdate is GetByIDs with row locks taken in id order. It must run
// inside a transaction.
func (r *Repo) GetForUpdate(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Flashcard, error) {
	return r.selectByIDs(ctx, userID, ids, true)
}

func (r *Repo) selectByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID, lock bool) ([]domain.Flashcard, error) {
	if len(ids) == 0 {
		return []domain.Flashcard{}, nil
	}

	builder := psql.Select(columns...).
		From("flashcards").
		Where(sq.Eq{"user_id": userID, "id": ids}).
		OrderBy("id")
	if lock {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build flashcards by ids query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, userID)
	}
	return toDomain(rows), nil
}

// GetDue returns flashcards due at now, oldest due first; never-reviewed
// cards precede reviewed ones on equal due time.
func (r *Repo) GetDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.Flashcard, error) {
	var rows []row
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, getDueSQL, userID, now, limit)
	if err != nil {
		return nil, postgres.MapError(err, entity, userID)
	}
	return toDomain(rows), nil
}
