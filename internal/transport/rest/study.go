package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
	"github.com/heartmarshall/wordflow-backend/internal/service/study"
	"github.com/heartmarshall/wordflow-backend/pkg/ctxutil"
)

type studyService interface {
	DueCards(ctx context.Context, input study.DueCardsInput) (*study.DueFeed, error)
	GradeCard(ctx context.Context, input study.GradeCardInput) (*study.GradeResult, error)
	GradeBatch(ctx context.Context, input study.GradeBatchInput) (*study.BatchResult, error)
	ResetCard(ctx context.Context, flashcardID uuid.UUID) (*domain.Flashcard, error)
	ResetRecent(ctx context.Context, input study.ResetRecentInput) (int, error)
	CardHistory(ctx context.Context, input study.HistoryInput) ([]domain.ReviewAttempt, error)
}

// StudyHandler serves the due feed, grading and reset endpoints.
type StudyHandler struct {
	svc studyService
	log *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, log: logger.With("handler", "study")}
}

// Due handles GET /api/study/due.
func (h *StudyHandler) Due(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	feed, err := h.svc.DueCards(r.Context(), study.DueCardsInput{Limit: limit})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDueFeed(feed))
}

// Grade handles POST /api/study/grade.
func (h *StudyHandler) Grade(w http.ResponseWriter, r *http.Request) {
	var req GradeRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	result, err := h.svc.GradeCard(r.Context(), study.GradeCardInput{
		AttemptID:      req.AttemptID,
		FlashcardID:    req.FlashcardID,
		Quality:        domain.Quality(*req.Quality),
		SessionStart:   req.SessionStart,
		SessionID:      sessionID(r, req.SessionID),
		ResponseTimeMs: req.ResponseTimeMs,
		ExerciseType:   exerciseTypePtr(req.ExerciseType),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toGradeResult(result))
}

// GradeBatch handles POST /api/study/grade-batch.
func (h *StudyHandler) GradeBatch(w http.ResponseWriter, r *http.Request) {
	var req GradeBatchRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	items := make([]study.BatchItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = study.BatchItem{
			FlashcardID:    it.FlashcardID,
			Quality:        domain.Quality(*it.Quality),
			ResponseTimeMs: it.ResponseTimeMs,
			ExerciseType:   exerciseTypePtr(it.ExerciseType),
		}
	}

	result, err := h.svc.GradeBatch(r.Context(), study.GradeBatchInput{
		BatchID:      req.BatchID,
		SessionStart: req.SessionStart,
		SessionID:    sessionID(r, req.SessionID),
		Items:        items,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := GradeBatchResponse{
		BatchID:  result.BatchID,
		Results:  make([]GradeResult, len(result.Results)),
		Replayed: result.Replayed,
	}
	for i := range result.Results {
		resp.Results[i] = toGradeResult(&result.Results[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// ResetCard handles POST /api/study/cards/{id}/reset.
func (h *StudyHandler) ResetCard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	card, err := h.svc.ResetCard(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFlashcard(card))
}

// ResetRecent handles POST /api/study/reset-recent. The body is optional.
func (h *StudyHandler) ResetRecent(w http.ResponseWriter, r *http.Request) {
	var req ResetRecentRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	n, err := h.svc.ResetRecent(r.Context(), study.ResetRecentInput{Limit: req.Limit})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, ResetRecentResponse{Reset: n})
}

// History handles GET /api/study/cards/{id}/history.
func (h *StudyHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	attempts, err := h.svc.CardHistory(r.Context(), study.HistoryInput{FlashcardID: id, Limit: limit})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := CardHistory{FlashcardID: id, Attempts: make([]Attempt, len(attempts))}
	for i := range attempts {
		resp.Attempts[i] = toAttempt(&attempts[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// sessionID prefers the id in the body and falls back to the X-Session-Id
// header.
func sessionID(r *http.Request, fromBody *uuid.UUID) *uuid.UUID {
	if fromBody != nil && *fromBody != uuid.Nil {
		return fromBody
	}
	return ctxutil.SessionIDFromCtx(r.Context())
}
