// Package replaycache keeps recently written review attempts in Redis so a
// resent grading request can be answered without a database transaction.
// The database stays authoritative: a miss here only costs a transaction.
package replaycache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
)

const keyPrefix = "wordflow:attempt:"

type client interface {
	MGet(ctx context.Context, keys ...string) *goredis.SliceCmd
	Pipelined(ctx context.Context, fn func(goredis.Pipeliner) error) ([]goredis.Cmder, error)
}

// Cache is a TTL-bounded read-through cache of review attempts keyed by
// owner and attempt id.
type Cache struct {
	rdb client
	ttl time.Duration
}

// New creates a Cache. Entries expire after ttl.
func New(rdb client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

func key(userID, attemptID uuid.UUID) string {
	return keyPrefix + userID.String() + ":" + attemptID.String()
}

type snapshot struct {
	EaseFactor   float64 `json:"ease_factor"`
	IntervalDays int     `json:"interval_days"`
	Repetitions  int     `json:"repetitions"`
}

type entry struct {
	ID             uuid.UUID            `json:"id"`
	UserID         uuid.UUID            `json:"user_id"`
	FlashcardID    uuid.UUID            `json:"flashcard_id"`
	VocabularyID   uuid.UUID            `json:"vocabulary_id"`
	BatchID        *uuid.UUID           `json:"batch_id,omitempty"`
	SessionID      *uuid.UUID           `json:"session_id,omitempty"`
	Quality        int                  `json:"quality"`
	ResponseTimeMs *int                 `json:"response_time_ms,omitempty"`
	ExerciseType   *domain.ExerciseType `json:"exercise_type,omitempty"`
	Prev           snapshot             `json:"prev"`
	Next           snapshot             `json:"next"`
	DueAt          time.Time            `json:"due_at"`
	ReviewedAt     time.Time            `json:"reviewed_at"`
}

func toEntry(a *domain.ReviewAttempt) entry {
	return entry{
		ID:             a.ID,
		UserID:         a.UserID,
		FlashcardID:    a.FlashcardID,
		VocabularyID:   a.VocabularyID,
		BatchID:        a.BatchID,
		SessionID:      a.SessionID,
		Quality:        int(a.Quality),
		ResponseTimeMs: a.ResponseTimeMs,
		ExerciseType:   a.ExerciseType,
		Prev:           snapshot(a.Prev),
		Next:           snapshot(a.Next),
		DueAt:          a.DueAt,
		ReviewedAt:     a.ReviewedAt,
	}
}

func (e entry) toDomain() domain.ReviewAttempt {
	return domain.ReviewAttempt{
		ID:             e.ID,
		UserID:         e.UserID,
		FlashcardID:    e.FlashcardID,
		VocabularyID:   e.VocabularyID,
		BatchID:        e.BatchID,
		SessionID:      e.SessionID,
		Quality:        domain.Quality(e.Quality),
		ResponseTimeMs: e.ResponseTimeMs,
		ExerciseType:   e.ExerciseType,
		Prev:           domain.CardSnapshot(e.Prev),
		Next:           domain.CardSnapshot(e.Next),
		DueAt:          e.DueAt,
		ReviewedAt:     e.ReviewedAt,
	}
}

// Get returns the cached attempts among ids. Misses are absent from the
// result; an entry for another owner can never be returned.
func (c *Cache) Get(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.ReviewAttempt, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = key(userID, id)
	}

	vals, err := c.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("replay cache mget: %w", err)
	}

	out := make([]domain.ReviewAttempt, 0, len(vals))
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var e entry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			return nil, fmt.Errorf("replay cache decode %s: %w", keys[i], err)
		}
		if e.UserID != userID {
			continue
		}
		out = append(out, e.toDomain())
	}
	return out, nil
}

// Put stores attempts with the cache TTL in one round trip.
func (c *Cache) Put(ctx context.Context, attempts []domain.ReviewAttempt) error {
	if len(attempts) == 0 {
		return nil
	}

	payloads := make(map[string][]byte, len(attempts))
	for i := range attempts {
		raw, err := json.Marshal(toEntry(&attempts[i]))
		if err != nil {
			return fmt.Errorf("replay cache encode %s: %w", attempts[i].ID, err)
		}
		payloads[key(attempts[i].UserID, attempts[i].ID)] = raw
	}

	_, err := c.rdb.Pipelined(ctx, func(pipe goredis.Pipeliner) error {
		for k, raw := range payloads {
			pipe.Set(ctx, k, raw, c.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replay cache set: %w", err)
	}
	return nil
}
