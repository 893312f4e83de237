package study

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
	"github.com/heartmarshall/wordflow-backend/internal/service/study/sm2"
)

// gradeItem is one flashcard grading handled by applyGrades.
type gradeItem struct {
	attemptID      uuid.UUID
	flashcardID    uuid.UUID
	quality        domain.Quality
	responseTimeMs *int
	exerciseType   *domain.ExerciseType
}

// gradeRequest is the common shape of single and batch grading.
type gradeRequest struct {
	userID       uuid.UUID
	batchID      *uuid.UUID
	sessionID    *uuid.UUID
	sessionStart *time.Time
	items        []gradeItem
}

// batchAttemptID derives the attempt id of one batch item. The same batch id
// and flashcard always map to the same attempt, so a resent batch replays.
func batchAttemptID(batchID, flashcardID uuid.UUID) uuid.UUID {
	return uuid.NewSHA1(batchID, flashcardID[:])
}

// applyGrades is the single grading primitive behind GradeCard and GradeBatch.
//
// Inside one transaction it locks the flashcards, returns the stored outcome
// if the attempts were already applied, rejects the whole request on missing
// or conflicting cards, then advances every card and appends its attempt.
// The transaction runs detached from the caller's cancellation and bounded by
// the configured timeout; storage failures surface as domain.ErrPersistence.
func (s *Service) applyGrades(ctx context.Context, req gradeRequest) ([]GradeResult, bool, error) {
	if results, ok := s.cachedReplay(ctx, req); ok {
		return results, true, nil
	}

	txCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.TxTimeout)
	defer cancel()

	var (
		results  []GradeResult
		replayed bool
		written  []domain.ReviewAttempt
	)

	err := s.tx.RunInTx(txCtx, func(txCtx context.Context) error {
		cards, err := s.cards.GetForUpdate(txCtx, req.userID, lockOrder(req.items))
		if err != nil {
			return fmt.Errorf("lock flashcards: %w", err)
		}

		// Replay detection runs under the row locks so a concurrent resend
		// of the same request waits for the first one to commit.
		prior, err := s.priorAttempts(txCtx, req)
		if err != nil {
			return err
		}
		if len(prior) > 0 {
			replayed = true
			results, err = replayResults(req.items, prior)
			return err
		}

		byID := make(map[uuid.UUID]*domain.Flashcard, len(cards))
		for i := range cards {
			byID[cards[i].ID] = &cards[i]
		}

		var missing, conflicting []uuid.UUID
		for _, it := range req.items {
			card, ok := byID[it.flashcardID]
			switch {
			case !ok:
				missing = append(missing, it.flashcardID)
			case req.sessionStart != nil && card.GradedAfter(*req.sessionStart):
				conflicting = append(conflicting, it.flashcardID)
			}
		}
		if len(missing) > 0 {
			return &domain.MissingCardsError{IDs: missing}
		}
		if len(conflicting) > 0 {
			return &domain.SessionConflictError{IDs: conflicting}
		}

		now := s.now()
		results = make([]GradeResult, 0, len(req.items))
		written = make([]domain.ReviewAttempt, 0, len(req.items))

		for _, it := range req.items {
			card := byID[it.flashcardID]
			attempt, err := s.gradeOne(txCtx, req, it, card, now)
			if err != nil {
				return err
			}
			written = append(written, attempt)
			results = append(results, resultFromAttempt(&attempt, false))
		}
		return nil
	})
	if err != nil {
		return nil, false, classifyGradingError(err)
	}

	if !replayed {
		s.remember(txCtx, written)
	}

	s.log.InfoContext(ctx, "flashcards graded",
		slog.String("user_id", req.userID.String()),
		slog.Int("count", len(results)),
		slog.Bool("replayed", replayed),
	)

	return results, replayed, nil
}

// gradeOne advances a locked card and appends its attempt.
func (s *Service) gradeOne(
	ctx context.Context,
	req gradeRequest,
	it gradeItem,
	card *domain.Flashcard,
	now time.Time,
) (domain.ReviewAttempt, error) {
	next := sm2.Advance(sm2.State{
		EaseFactor:     card.EaseFactor,
		Interval:       card.IntervalDays,
		Repetitions:    card.Repetitions,
		DueAt:          card.DueAt,
		LastReviewedAt: card.LastReviewedAt,
	}, int(it.quality), now)

	err := s.cards.UpdateSchedule(ctx, req.userID, card.ID, domain.SchedulingUpdate{
		EaseFactor:     next.EaseFactor,
		IntervalDays:   next.Interval,
		Repetitions:    next.Repetitions,
		DueAt:          next.DueAt,
		LastReviewedAt: now,
	})
	if err != nil {
		return domain.ReviewAttempt{}, fmt.Errorf("update flashcard %s: %w", card.ID, err)
	}

	attempt := domain.ReviewAttempt{
		ID:             it.attemptID,
		UserID:         req.userID,
		FlashcardID:    card.ID,
		VocabularyID:   card.VocabularyID,
		BatchID:        req.batchID,
		SessionID:      req.sessionID,
		Quality:        it.quality,
		ResponseTimeMs: it.responseTimeMs,
		ExerciseType:   it.exerciseType,
		Prev:           card.Snapshot(),
		Next: domain.CardSnapshot{
			EaseFactor:   next.EaseFactor,
			IntervalDays: next.Interval,
			Repetitions:  next.Repetitions,
		},
		DueAt:      next.DueAt,
		ReviewedAt: now,
	}

	inserted, err := s.attempts.Insert(ctx, &attempt)
	if err != nil {
		return domain.ReviewAttempt{}, fmt.Errorf("insert attempt %s: %w", attempt.ID, err)
	}
	if !inserted {
		// The id was claimed by a grading of a different flashcard that
		// committed after our replay lookup.
		return domain.ReviewAttempt{}, errKeyReused()
	}
	return attempt, nil
}

// errKeyReused rejects an attempt or batch id that was already applied to a
// different set of flashcards. Resending it cannot succeed.
func errKeyReused() error {
	return domain.NewValidationError("attempt_id", "already used for a different grading")
}

// priorAttempts loads what was already written under the request's key. A
// batch is looked up by its batch id as a whole, so reusing the id for other
// flashcards is caught even though their derived attempt ids are new.
func (s *Service) priorAttempts(ctx context.Context, req gradeRequest) ([]domain.ReviewAttempt, error) {
	if req.batchID != nil {
		prior, err := s.attempts.GetByBatch(ctx, req.userID, *req.batchID)
		if err != nil {
			return nil, fmt.Errorf("load batch %s attempts: %w", *req.batchID, err)
		}
		return prior, nil
	}

	prior, err := s.attempts.GetByIDs(ctx, req.userID, attemptIDs(req.items))
	if err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}
	return prior, nil
}

// replayResults rebuilds the stored outcome of an already-applied request.
// A request that does not match what was stored exactly reused its key.
func replayResults(items []gradeItem, prior []domain.ReviewAttempt) ([]GradeResult, error) {
	if len(prior) != len(items) {
		return nil, errKeyReused()
	}

	byID := make(map[uuid.UUID]*domain.ReviewAttempt, len(prior))
	for i := range prior {
		byID[prior[i].ID] = &prior[i]
	}

	results := make([]GradeResult, 0, len(items))
	for _, it := range items {
		a, ok := byID[it.attemptID]
		if !ok || a.FlashcardID != it.flashcardID {
			return nil, errKeyReused()
		}
		results = append(results, resultFromAttempt(a, true))
	}
	return results, nil
}

// cachedReplay answers a resent request from the replay cache without
// opening a transaction. Any cache trouble falls through to the store.
func (s *Service) cachedReplay(ctx context.Context, req gradeRequest) ([]GradeResult, bool) {
	if s.replays == nil {
		return nil, false
	}

	cached, err := s.replays.Get(ctx, req.userID, attemptIDs(req.items))
	if err != nil {
		s.log.WarnContext(ctx, "replay cache lookup failed", slog.String("error", err.Error()))
		return nil, false
	}
	if len(cached) != len(req.items) {
		return nil, false
	}

	results, err := replayResults(req.items, cached)
	if err != nil {
		return nil, false
	}
	return results, true
}

// remember stores freshly written attempts in the replay cache.
func (s *Service) remember(ctx context.Context, written []domain.ReviewAttempt) {
	if s.replays == nil || len(written) == 0 {
		return
	}
	if err := s.replays.Put(ctx, written); err != nil {
		s.log.WarnContext(ctx, "replay cache store failed", slog.String("error", err.Error()))
	}
}

// classifyGradingError keeps caller-facing errors intact and turns
// everything else into a retryable persistence failure.
func classifyGradingError(err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrSessionConflict),
		errors.Is(err, domain.ErrUnauthorized):
		return err
	default:
		return fmt.Errorf("grading: %w: %w", domain.ErrPersistence, err)
	}
}

func attemptIDs(items []gradeItem) []uuid.UUID {
	ids := make([]uuid.UUID, len(items))
	for i, it := range items {
		ids[i] = it.attemptID
	}
	return ids
}

// lockOrder returns the flashcard ids sorted bytewise, which matches the
// store's uuid ordering, so concurrent gradings lock rows in the same order.
func lockOrder(items []gradeItem) []uuid.UUID {
	ids := make([]uuid.UUID, len(items))
	for i, it := range items {
		ids[i] = it.flashcardID
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	return ids
}
