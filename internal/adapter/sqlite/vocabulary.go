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

var vocabularyColumns = []string{
	"id", "user_id", "document_id", "term", "term_normalized", "translation",
	"context", "kind", "page", "is_known", "created_at",
}

type vocabularyRow struct {
	ID             uuid.UUID `db:"id"`
	UserID         uuid.UUID `db:"user_id"`
	DocumentID     uuid.UUID `db:"document_id"`
	Term           string    `db:"term"`
	TermNormalized string    `db:"term_normalized"`
	Translation    string    `db:"translation"`
	Context        string    `db:"context"`
	Kind           string    `db:"kind"`
	Page           *int      `db:"page"`
	IsKnown        bool      `db:"is_known"`
	CreatedAt      time.Time `db:"created_at"`
}

func (r vocabularyRow) toDomain() domain.VocabularyItem {
	return domain.VocabularyItem{
		ID:             r.ID,
		UserID:         r.UserID,
		DocumentID:     r.DocumentID,
		Term:           r.Term,
		TermNormalized: r.TermNormalized,
		Translation:    r.Translation,
		Context:        r.Context,
		Kind:           domain.VocabularyKind(r.Kind),
		Page:           r.Page,
		IsKnown:        r.IsKnown,
		CreatedAt:      r.CreatedAt,
	}
}

// VocabularyRepo stores vocabulary items in SQLite.
type VocabularyRepo struct {
	db *sql.DB
}

// NewVocabularyRepo creates a new VocabularyRepo.
func NewVocabularyRepo(db *sql.DB) *VocabularyRepo {
	return &VocabularyRepo{db: db}
}

// Create inserts an item; a duplicate normalized term in one document is
// domain.ErrAlreadyExists.
func (r *VocabularyRepo) Create(ctx context.Context, item *domain.VocabularyItem) (*domain.VocabularyItem, error) {
	query, args, err := builder.Insert("vocabulary_items").
		Columns(vocabularyColumns...).
		Values(item.ID, item.UserID, item.DocumentID, item.Term, item.TermNormalized, item.Translation,
			item.Context, string(item.Kind), item.Page, item.IsKnown, item.CreatedAt.UTC()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build vocabulary insert: %w", err)
	}

	if _, err := QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return nil, mapError(err, "vocabulary_item", item.TermNormalized)
	}
	return r.GetByID(ctx, item.UserID, item.ID)
}

// GetByID returns one item filtered by owner.
func (r *VocabularyRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.VocabularyItem, error) {
	query, args, err := builder.Select(vocabularyColumns...).
		From("vocabulary_items").
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build vocabulary query: %w", err)
	}

	var row vocabularyRow
	if err := sqlscan.Get(ctx, QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, mapError(err, "vocabulary_item", id)
	}
	item := row.toDomain()
	return &item, nil
}

// SetKnown flips the known flag of one item.
func (r *VocabularyRepo) SetKnown(ctx context.Context, userID, id uuid.UUID, known bool) (*domain.VocabularyItem, error) {
	query, args, err := builder.Update("vocabulary_items").
		Set("is_known", known).
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build vocabulary update: %w", err)
	}

	res, err := QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "vocabulary_item", id)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("vocabulary_item %s: %w", id, domain.ErrNotFound)
	}
	return r.GetByID(ctx, userID, id)
}

// ListByUser returns the owner's whole pool, newest first.
func (r *VocabularyRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.VocabularyItem, error) {
	return r.selectMany(ctx, builder.Select(vocabularyColumns...).
		From("vocabulary_items").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id"), userID)
}

// Find returns one filtered page and the total match count.
func (r *VocabularyRepo) Find(ctx context.Context, userID uuid.UUID, filter domain.VocabularyFilter) ([]domain.VocabularyItem, int, error) {
	where := sq.And{sq.Eq{"user_id": userID}}
	if filter.DocumentID != nil {
		where = append(where, sq.Eq{"document_id": *filter.DocumentID})
	}
	if filter.Known != nil {
		where = append(where, sq.Eq{"is_known": *filter.Known})
	}
	if filter.Kind != nil {
		where = append(where, sq.Eq{"kind": string(*filter.Kind)})
	}
	if filter.Search != nil && *filter.Search != "" {
		where = append(where, sq.Expr(`instr(term_normalized, ?) > 0`, *filter.Search))
	}

	countSQL, countArgs, err := builder.Select("count(*)").From("vocabulary_items").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build vocabulary count: %w", err)
	}

	var total int
	if err := QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, mapError(err, "vocabulary_item", userID)
	}
	if total == 0 {
		return []domain.VocabularyItem{}, 0, nil
	}

	items, err := r.selectMany(ctx, builder.Select(vocabularyColumns...).
		From("vocabulary_items").
		Where(where).
		OrderBy("created_at DESC", "id").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)), userID)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *VocabularyRepo) selectMany(ctx context.Context, b sq.SelectBuilder, key any) ([]domain.VocabularyItem, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build vocabulary query: %w", err)
	}

	var rows []vocabularyRow
	if err := sqlscan.Select(ctx, QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, mapError(err, "vocabulary_item", key)
	}
	out := make([]domain.VocabularyItem, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}
