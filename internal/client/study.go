package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
	"github.com/heartmarshall/wordflow-backend/internal/service/study"
	"github.com/heartmarshall/wordflow-backend/internal/transport/rest"
)

// DueCards fetches the due-card feed.
func (c *Client) DueCards(ctx context.Context, input study.DueCardsInput) (*study.DueFeed, error) {
	q := url.Values{}
	if input.Limit > 0 {
		q.Set("limit", strconv.Itoa(input.Limit))
	}

	var resp rest.DueFeed
	if err := c.call(ctx, http.MethodGet, "/api/study/due", q, nil, &resp); err != nil {
		return nil, err
	}

	feed := &study.DueFeed{
		Cards: make([]domain.DueCard, len(resp.Cards)),
		Pool:  make([]domain.VocabularyItem, len(resp.Pool)),
	}
	for i, dc := range resp.Cards {
		feed.Cards[i] = domain.DueCard{
			Card:       rest.FromFlashcard(dc.Flashcard),
			Vocabulary: rest.FromVocabularyItem(dc.Vocabulary),
		}
	}
	for i, v := range resp.Pool {
		feed.Pool[i] = rest.FromVocabularyItem(v)
	}
	return feed, nil
}

// GradeCard submits one flashcard grade. Resending the same AttemptID
// returns the stored outcome with Replayed set.
func (c *Client) GradeCard(ctx context.Context, input study.GradeCardInput) (*study.GradeResult, error) {
	q := int(input.Quality)
	req := rest.GradeRequest{
		AttemptID:      input.AttemptID,
		FlashcardID:    input.FlashcardID,
		Quality:        &q,
		SessionStart:   input.SessionStart,
		SessionID:      input.SessionID,
		ResponseTimeMs: input.ResponseTimeMs,
		ExerciseType:   typeString(input.ExerciseType),
	}

	var resp rest.GradeResult
	if err := c.call(ctx, http.MethodPost, "/api/study/grade", nil, req, &resp); err != nil {
		return nil, err
	}
	res := fromGradeResult(resp)
	return &res, nil
}

// GradeBatch submits several grades as one atomic unit.
func (c *Client) GradeBatch(ctx context.Context, input study.GradeBatchInput) (*study.BatchResult, error) {
	req := rest.GradeBatchRequest{
		BatchID:      input.BatchID,
		SessionStart: input.SessionStart,
		SessionID:    input.SessionID,
		Items:        make([]rest.GradeBatchItem, len(input.Items)),
	}
	for i, item := range input.Items {
		q := int(item.Quality)
		req.Items[i] = rest.GradeBatchItem{
			FlashcardID:    item.FlashcardID,
			Quality:        &q,
			ResponseTimeMs: item.ResponseTimeMs,
			ExerciseType:   typeString(item.ExerciseType),
		}
	}

	var resp rest.GradeBatchResponse
	if err := c.call(ctx, http.MethodPost, "/api/study/grade-batch", nil, req, &resp); err != nil {
		return nil, err
	}

	out := &study.BatchResult{
		BatchID:  resp.BatchID,
		Results:  make([]study.GradeResult, len(resp.Results)),
		Replayed: resp.Replayed,
	}
	for i, r := range resp.Results {
		out.Results[i] = fromGradeResult(r)
	}
	return out, nil
}

// ResetCard makes one flashcard due now.
func (c *Client) ResetCard(ctx context.Context, flashcardID uuid.UUID) (*domain.Flashcard, error) {
	var resp rest.Flashcard
	path := "/api/study/cards/" + flashcardID.String() + "/reset"
	if err := c.call(ctx, http.MethodPost, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	card := rest.FromFlashcard(resp)
	return &card, nil
}

// ResetRecent makes the most recently reviewed flashcards due now and
// reports how many were reset.
func (c *Client) ResetRecent(ctx context.Context, input study.ResetRecentInput) (int, error) {
	var resp rest.ResetRecentResponse
	req := rest.ResetRecentRequest{Limit: input.Limit}
	if err := c.call(ctx, http.MethodPost, "/api/study/reset-recent", nil, req, &resp); err != nil {
		return 0, err
	}
	return resp.Reset, nil
}

func fromGradeResult(r rest.GradeResult) study.GradeResult {
	return study.GradeResult{
		AttemptID:    r.AttemptID,
		FlashcardID:  r.FlashcardID,
		VocabularyID: r.VocabularyID,
		Quality:      domain.Quality(r.Quality),
		Previous:     fromSnapshot(r.Previous),
		Next:         fromSnapshot(r.Next),
		DueAt:        r.DueAt,
		ReviewedAt:   r.ReviewedAt,
		Replayed:     r.Replayed,
	}
}

func fromSnapshot(s rest.Snapshot) domain.CardSnapshot {
	return domain.CardSnapshot{EaseFactor: s.EaseFactor, IntervalDays: s.IntervalDays, Repetitions: s.Repetitions}
}

func typeString(t *domain.ExerciseType) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}
