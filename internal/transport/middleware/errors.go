package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError renders the same error envelope the REST handlers use, so a
// client sees one shape whether a request fails here or in a handler.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	})
}
