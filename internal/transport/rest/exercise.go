package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
	"github.com/heartmarshall/wordflow-backend/internal/service/exercise"
)

type exerciseService interface {
	Generate(ctx context.Context, input exercise.GenerateInput) (*domain.Exercise, error)
}

// ExerciseHandler builds exercises on the server for clients that do not
// run the generator themselves.
type ExerciseHandler struct {
	svc exerciseService
	log *slog.Logger
}

// NewExerciseHandler creates an ExerciseHandler.
func NewExerciseHandler(svc exerciseService, logger *slog.Logger) *ExerciseHandler {
	return &ExerciseHandler{svc: svc, log: logger.With("handler", "exercise")}
}

// Generate handles POST /api/exercises.
func (h *ExerciseHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateExerciseRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	ex, err := h.svc.Generate(r.Context(), exercise.GenerateInput{
		FlashcardIDs: req.FlashcardIDs,
		Type:         exerciseTypePtr(req.Type),
		Seed:         req.Seed,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toExercise(ex))
}
