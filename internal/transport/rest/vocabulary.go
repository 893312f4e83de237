package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
	"github.com/heartmarshall/wordflow-backend/internal/service/vocabulary"
)

type vocabularyService interface {
	Save(ctx context.Context, input vocabulary.SaveInput) (*vocabulary.SaveResult, error)
	List(ctx context.Context, input vocabulary.ListInput) (*vocabulary.ListResult, error)
	MarkKnown(ctx context.Context, input vocabulary.MarkKnownInput) (*domain.VocabularyItem, error)
}

// VocabularyHandler serves vocabulary capture endpoints.
type VocabularyHandler struct {
	svc vocabularyService
	log *slog.Logger
}

// NewVocabularyHandler creates a VocabularyHandler.
func NewVocabularyHandler(svc vocabularyService, logger *slog.Logger) *VocabularyHandler {
	return &VocabularyHandler{svc: svc, log: logger.With("handler", "vocabulary")}
}

// Save handles POST /api/vocabulary.
func (h *VocabularyHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveVocabularyRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Save(r.Context(), vocabulary.SaveInput{
		DocumentID:  req.DocumentID,
		Term:        req.Term,
		Translation: req.Translation,
		Context:     req.Context,
		Page:        req.Page,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, SaveVocabularyResponse{
		Item:      toVocabularyItem(result.Item),
		Flashcard: toFlashcard(result.Card),
	})
}

// List handles GET /api/vocabulary.
func (h *VocabularyHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := listVocabularyQuery{
		DocumentID: q.Get("document_id"),
		Known:      q.Get("known"),
		Kind:       strings.ToUpper(q.Get("kind")),
		Search:     q.Get("search"),
		Limit:      q.Get("limit"),
		Offset:     q.Get("offset"),
	}
	if err := validateStruct(&query); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input := vocabulary.ListInput{}
	if query.DocumentID != "" {
		id := uuid.MustParse(query.DocumentID)
		input.DocumentID = &id
	}
	if query.Known != "" {
		known, _ := strconv.ParseBool(query.Known)
		input.Known = &known
	}
	if query.Kind != "" {
		kind := domain.VocabularyKind(query.Kind)
		input.Kind = &kind
	}
	if query.Search != "" {
		input.Search = &query.Search
	}
	input.Limit, _ = strconv.Atoi(query.Limit)
	input.Offset, _ = strconv.Atoi(query.Offset)

	result, err := h.svc.List(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, VocabularyPage{
		Items: toVocabularyItems(result.Items),
		Total: result.Total,
	})
}

// MarkKnown handles POST /api/vocabulary/{id}/known.
func (h *VocabularyHandler) MarkKnown(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req MarkKnownRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	item, err := h.svc.MarkKnown(r.Context(), vocabulary.MarkKnownInput{ID: id, Known: *req.Known})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toVocabularyItem(item))
}

// pathID parses the {id} wildcard, answering 400 itself when it is invalid.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil || id == uuid.Nil {
		writeBadRequest(w, "path id must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

// queryInt reads a non-negative integer query parameter; absent means 0.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, domain.NewValidationError(name, "must be a non-negative integer")
	}
	return n, nil
}
