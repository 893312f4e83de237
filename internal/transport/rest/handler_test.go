package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

//go:generate moq -out vocabulary_service_mock_test.go -pkg rest . vocabularyService
//go:generate moq -out study_service_mock_test.go -pkg rest . studyService
//go:generate moq -out exercise_service_mock_test.go -pkg rest . exerciseService

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testServices struct {
	vocab    *vocabularyServiceMock
	study    *studyServiceMock
	exercise *exerciseServiceMock
}

func newTestRouter(s testServices) http.Handler {
	log := testLogger()
	if s.vocab == nil {
		s.vocab = &vocabularyServiceMock{}
	}
	if s.study == nil {
		s.study = &studyServiceMock{}
	}
	if s.exercise == nil {
		s.exercise = &exerciseServiceMock{}
	}
	return NewRouter(Handlers{
		Health:     NewHealthHandler("test", Component{Name: "storage", Pinger: PingFunc(func(context.Context) error { return nil })}),
		Vocabulary: NewVocabularyHandler(s.vocab, log),
		Study:      NewStudyHandler(s.study, log),
		Exercise:   NewExerciseHandler(s.exercise, log),
	}, nil)
}

func do(t *testing.T, h http.Handler, method, path, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	return decodeBody[ErrorResponse](t, rec).Error
}

func fieldNames(fields []FieldError) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Field
	}
	return out
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("marshal: %v", err))
	}
	return string(b)
}

var errBoom = errors.New("boom")

func newJSONRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}
