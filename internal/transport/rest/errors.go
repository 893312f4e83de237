package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
)

// Error codes carried in ErrorBody.Code.
const (
	CodeValidation       = "VALIDATION"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeNotFound         = "NOT_FOUND"
	CodeAlreadyExists    = "ALREADY_EXISTS"
	CodeSessionConflict  = "SESSION_CONFLICT"
	CodeGenerationFailed = "GENERATION_FAILED"
	CodePersistence      = "PERSISTENCE"
	CodeInternal         = "INTERNAL"
)

// ErrorResponse is the envelope of every non-2xx response.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody describes one failure. MissingIDs and ConflictingIDs name the
// flashcards a grading request was rejected for; Retryable tells the client
// that resending the identical request is safe.
type ErrorBody struct {
	Code           string       `json:"code"`
	Message        string       `json:"message"`
	Fields         []FieldError `json:"fields,omitempty"`
	MissingIDs     []uuid.UUID  `json:"missing_ids,omitempty"`
	ConflictingIDs []uuid.UUID  `json:"conflicting_ids,omitempty"`
	Retryable      bool         `json:"retryable,omitempty"`
}

// FieldError is one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorStatus maps a service error to its HTTP status and body.
func errorStatus(err error) (int, ErrorBody) {
	var (
		verr      *domain.ValidationError
		missing   *domain.MissingCardsError
		conflicts *domain.SessionConflictError
	)

	switch {
	case errors.As(err, &verr):
		fields := make([]FieldError, len(verr.Errors))
		for i, fe := range verr.Errors {
			fields[i] = FieldError{Field: fe.Field, Message: fe.Message}
		}
		return http.StatusBadRequest, ErrorBody{Code: CodeValidation, Message: "invalid request", Fields: fields}
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, ErrorBody{Code: CodeValidation, Message: err.Error()}
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, ErrorBody{Code: CodeUnauthorized, Message: "unauthorized"}
	case errors.As(err, &missing):
		return http.StatusNotFound, ErrorBody{Code: CodeNotFound, Message: "flashcards not found", MissingIDs: missing.IDs}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrorBody{Code: CodeNotFound, Message: "not found"}
	case errors.As(err, &conflicts):
		return http.StatusConflict, ErrorBody{
			Code:           CodeSessionConflict,
			Message:        "flashcards were graded by another session",
			ConflictingIDs: conflicts.IDs,
		}
	case errors.Is(err, domain.ErrSessionConflict):
		return http.StatusConflict, ErrorBody{Code: CodeSessionConflict, Message: "session conflict"}
	// A storage failure may wrap the driver's unique violation; it stays retryable.
	case errors.Is(err, domain.ErrPersistence),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, ErrorBody{
			Code:      CodePersistence,
			Message:   "storage temporarily unavailable",
			Retryable: true,
		}
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, ErrorBody{Code: CodeAlreadyExists, Message: "already exists"}
	case errors.Is(err, domain.ErrGenerationFailed):
		return http.StatusUnprocessableEntity, ErrorBody{
			Code:      CodeGenerationFailed,
			Message:   "could not build an exercise for these flashcards",
			Retryable: true,
		}
	default:
		return http.StatusInternalServerError, ErrorBody{Code: CodeInternal, Message: "internal server error"}
	}
}

// respondError writes the mapped error. Server-side failures are logged;
// client errors are not.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, body := errorStatus(err)
	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
	writeJSON(w, status, ErrorResponse{Error: body})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorBody{Code: CodeValidation, Message: message}})
}
