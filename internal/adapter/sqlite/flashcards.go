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

var flashcardColumns = []string{
	"id", "user_id", "vocabulary_id", "ease_factor", "interval_days", "repetitions",
	"due_at", "last_reviewed_at", "created_at", "updated_at",
}

type flashcardRow struct {
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

func (r flashcardRow) toDomain() domain.Flashcard {
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

// FlashcardRepo stores flashcards in SQLite. Row locking is unnecessary:
// the single-connection pool already serializes transactions.
type FlashcardRepo struct {
	db *sql.DB
}

// NewFlashcardRepo creates a new FlashcardRepo.
func NewFlashcardRepo(db *sql.DB) *FlashcardRepo {
	return &FlashcardRepo{db: db}
}

func (r *FlashcardRepo) selectOne(ctx context.Context, b sq.SelectBuilder, key any) (*domain.Flashcard, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build flashcard query: %w", err)
	}

	var row flashcardRow
	if err := sqlscan.Get(ctx, QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, mapError(err, "flashcard", key)
	}
	card := row.toDomain()
	return &card, nil
}

func (r *FlashcardRepo) selectMany(ctx context.Context, b sq.SelectBuilder, key any) ([]domain.Flashcard, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build flashcard query: %w", err)
	}

	var rows []flashcardRow
	if err := sqlscan.Select(ctx, QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, mapError(err, "flashcard", key)
	}
	out := make([]domain.Flashcard, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// Create inserts a new flashcard.
func (r *FlashcardRepo) Create(ctx context.Context, c *domain.Flashcard) (*domain.Flashcard, error) {
	query, args, err := builder.Insert("flashcards").
		Columns("id", "user_id", "vocabulary_id", "ease_factor", "interval_days", "repetitions",
			"due_at", "created_at", "updated_at").
		Values(c.ID, c.UserID, c.VocabularyID, c.EaseFactor, c.IntervalDays, c.Repetitions,
			c.DueAt.UTC(), c.CreatedAt.UTC(), c.UpdatedAt.UTC()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build flashcard insert: %w", err)
	}

	if _, err := QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return nil, mapError(err, "flashcard", c.ID)
	}
	return r.GetByID(ctx, c.UserID, c.ID)
}

// GetByID returns a flashcard filtered by owner.
func (r *FlashcardRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Flashcard, error) {
	return r.selectOne(ctx, builder.Select(flashcardColumns...).
		From("flashcards").
		Where(sq.Eq{"user_id": userID, "id": id}), id)
}

// GetByIDs returns the owner's flashcards among ids.
func (r *FlashcardRepo) GetByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Flashcard, error) {
	if len(ids) == 0 {
		return []domain.Flashcard{}, nil
	}
	return r.selectMany(ctx, builder.Select(flashcardColumns...).
		From("flashcards").
		Where(sq.Eq{"user_id": userID, "id": ids}).
		OrderBy("id"), userID)
}

// GetForUpdate is GetByIDs; see FlashcardRepo for why no lock is taken.
func (r *FlashcardRepo) GetForUpdate(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Flashcard, error) {
	return r.GetByIDs(ctx, userID, ids)
}

// GetDue returns due flashcards, oldest due first and never-reviewed first on ties.
func (r *FlashcardRepo) GetDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.Flashcard, error) {
	return r.selectMany(ctx, builder.Select(flashcardColumns...).
		From("flashcards").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.LtOrEq{"due_at": now.UTC()}).
		OrderBy("due_at ASC", "last_reviewed_at ASC NULLS FIRST", "id ASC").
		Limit(uint64(limit)), userID)
}

// UpdateSchedule writes the post-grading scheduling state.
func (r *FlashcardRepo) UpdateSchedule(ctx context.Context, userID, id uuid.UUID, upd domain.SchedulingUpdate) error {
	query, args, err := builder.Update("flashcards").
		Set("ease_factor", upd.EaseFactor).
		Set("interval_days", upd.IntervalDays).
		Set("repetitions", upd.Repetitions).
		Set("due_at", upd.DueAt.UTC()).
		Set("last_reviewed_at", upd.LastReviewedAt.UTC()).
		Set("updated_at", upd.LastReviewedAt.UTC()).
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build flashcard update: %w", err)
	}

	res, err := QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return mapError(err, "flashcard", id)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("flashcard %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ResetDue makes one flashcard due at now.
func (r *FlashcardRepo) ResetDue(ctx context.Context, userID, id uuid.UUID, now time.Time) (*domain.Flashcard, error) {
	query, args, err := builder.Update("flashcards").
		Set("due_at", now.UTC()).
		Set("updated_at", now.UTC()).
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build flashcard reset: %w", err)
	}

	res, err := QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "flashcard", id)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("flashcard %s: %w", id, domain.ErrNotFound)
	}
	return r.GetByID(ctx, userID, id)
}

// ResetRecentlyReviewed makes the limit most recently reviewed flashcards due at now.
func (r *FlashcardRepo) ResetRecentlyReviewed(ctx context.Context, userID uuid.UUID, limit int, now time.Time) (int, error) {
	recent := builder.Select("id").
		From("flashcards").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.NotEq{"last_reviewed_at": nil}).
		OrderBy("last_reviewed_at DESC").
		Limit(uint64(limit))

	query, args, err := builder.Update("flashcards").
		Set("due_at", now.UTC()).
		Set("updated_at", now.UTC()).
		Where(recent.Prefix("id IN (").Suffix(")")).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build reset recent query: %w", err)
	}

	res, err := QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapError(err, "flashcard", userID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reset recent rows affected: %w", err)
	}
	return int(n), nil
}
