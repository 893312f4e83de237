package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
	"github.com/heartmarshall/wordflow-backend/internal/transport/rest"
)

// ErrRateLimited is returned when the server rejects a call for exceeding
// the request budget.
var ErrRateLimited = errors.New("rate limited")

// APIError is a non-2xx response. It unwraps to the domain error the server
// reported, so callers classify it with errors.Is and errors.As exactly as
// they would an in-process service error.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Retryable  bool
	RequestID  string

	err error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wordflow: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

func (e *APIError) Unwrap() error { return e.err }

func decodeError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		RequestID:  resp.Header.Get("X-Request-Id"),
	}

	var env rest.ErrorResponse
	if err := json.Unmarshal(data, &env); err != nil || env.Error.Code == "" {
		apiErr.Code = http.StatusText(resp.StatusCode)
		apiErr.Message = strings.TrimSpace(string(data))
		apiErr.Retryable = resp.StatusCode >= http.StatusInternalServerError
		return apiErr
	}

	apiErr.Code = env.Error.Code
	apiErr.Message = env.Error.Message
	apiErr.Retryable = env.Error.Retryable
	apiErr.err = toDomainError(env.Error)
	return apiErr
}

func toDomainError(body rest.ErrorBody) error {
	switch body.Code {
	case rest.CodeValidation:
		fields := make([]domain.FieldError, len(body.Fields))
		for i, f := range body.Fields {
			fields[i] = domain.FieldError{Field: f.Field, Message: f.Message}
		}
		return domain.NewValidationErrors(fields)
	case rest.CodeUnauthorized:
		return domain.ErrUnauthorized
	case rest.CodeNotFound:
		if len(body.MissingIDs) > 0 {
			return &domain.MissingCardsError{IDs: body.MissingIDs}
		}
		return domain.ErrNotFound
	case rest.CodeAlreadyExists:
		return domain.ErrAlreadyExists
	case rest.CodeSessionConflict:
		return &domain.SessionConflictError{IDs: body.ConflictingIDs}
	case rest.CodeGenerationFailed:
		return domain.ErrGenerationFailed
	case rest.CodePersistence:
		return domain.ErrPersistence
	case "RATE_LIMITED":
		return ErrRateLimited
	}
	return nil
}
