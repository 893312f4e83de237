// Package vocabulary implements vocabulary item persistence on PostgreSQL.
package vocabulary

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/wordflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordflow-backend/internal/domain"
)

const entity = "vocabulary_item"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "user_id", "document_id", "term", "term_normalized", "translation",
	"context", "kind", "page", "is_known", "created_at",
}

// Repo provides vocabulary persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new vocabulary repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
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

func (r row) toDomain() domain.VocabularyItem {
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

func toDomain(rows []row) []domain.VocabularyItem {
	out := make([]domain.VocabularyItem, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const returning = `
RETURNING id, user_id, document_id, term, term_normalized, translation,
          context, kind, page, is_known, created_at`

const createSQL = `
INSERT INTO vocabulary_items (id, user_id, document_id, term, term_normalized, translation,
                              context, kind, page, is_known, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)` + returning

const setKnownSQL = `
UPDATE vocabulary_items SET is_known = $3
WHERE user_id = $1 AND id = $2` + returning

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a vocabulary item. A second save of the same normalized
// term from one document fails with domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, item *domain.VocabularyItem) (*domain.VocabularyItem, error) {
	var out row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, createSQL,
		item.ID, item.UserID, item.DocumentID, item.Term, item.TermNormalized, item.Translation,
		item.Context, string(item.Kind), item.Page, item.IsKnown, item.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, entity, item.TermNormalized)
	}

	created := out.toDomain()
	return &created, nil
}

// SetKnown flips the known flag of one item.
func (r *Repo) SetKnown(ctx context.Context, userID, id uuid.UUID, known bool) (*domain.VocabularyItem, error) {
	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, setKnownSQL, userID, id, known); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	item := out.toDomain()
	return &item, nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns one item filtered by owner.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.VocabularyItem, error) {
	query, args, err := psql.Select(columns...).
		From("vocabulary_items").
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build vocabulary by id query: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	item := out.toDomain()
	return &item, nil
}

// ListByUser returns the owner's whole pool, newest first. It is the
// distractor source for exercise generation.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.VocabularyItem, error) {
	query, args, err := psql.Select(columns...).
		From("vocabulary_items").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build vocabulary pool query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, userID)
	}
	return toDomain(rows), nil
}

// Find returns one page of the owner's items matching filter, plus the
// total match count ignoring pagination.
func (r *Repo) Find(ctx context.Context, userID uuid.UUID, filter domain.VocabularyFilter) ([]domain.VocabularyItem, int, error) {
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
		where = append(where, sq.Like{"term_normalized": "%" + escapeLike(*filter.Search) + "%"})
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := psql.Select("count(*)").From("vocabulary_items").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build vocabulary count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, entity, userID)
	}
	if total == 0 {
		return []domain.VocabularyItem{}, 0, nil
	}

	query, args, err := psql.Select(columns...).
		From("vocabulary_items").
		Where(where).
		OrderBy("created_at DESC", "id").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build vocabulary find query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, postgres.MapError(err, entity, userID)
	}
	return toDomain(rows), total, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }
