package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
)

// SeedCard inserts a vocabulary item with its initial flashcard for userID,
// due at the insertion time. Term uniqueness is guaranteed by a random suffix.
func SeedCard(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, term, translation string) (domain.VocabularyItem, domain.Flashcard) {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	suffix := uuid.New().String()[:8]
	item := domain.VocabularyItem{
		ID:             uuid.New(),
		UserID:         userID,
		DocumentID:     uuid.New(),
		Term:           term,
		TermNormalized: term + "-" + suffix,
		Translation:    translation,
		Context:        "The " + term + " was there.",
		Kind:           domain.VocabularyKindWord,
		CreatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO vocabulary_items (id, user_id, document_id, term, term_normalized, translation, context, kind, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		item.ID, item.UserID, item.DocumentID, item.Term, item.TermNormalized,
		item.Translation, item.Context, string(item.Kind), item.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCard vocabulary item: %v", err)
	}

	card := domain.NewFlashcard(userID, item.ID, now)
	_, err = pool.Exec(ctx,
		`INSERT INTO flashcards (id, user_id, vocabulary_id, ease_factor, interval_days, repetitions, due_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		card.ID, card.UserID, card.VocabularyID, card.EaseFactor, card.IntervalDays,
		card.Repetitions, card.DueAt, card.CreatedAt, card.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCard flashcard: %v", err)
	}

	return item, card
}
