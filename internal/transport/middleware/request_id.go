package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordflow-backend/pkg/ctxutil"
)

const (
	requestIDHeader = "X-Request-Id"
	sessionIDHeader = "X-Session-Id"
)

// RequestID propagates the caller's request id or assigns a new one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}

// SessionID tags the request with the client's review session. A header
// that is not a UUID is ignored rather than rejected; the session id is
// informational and grading never depends on it.
func SessionID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(sessionIDHeader)
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(ctxutil.WithSessionID(r.Context(), id)))
	})
}
