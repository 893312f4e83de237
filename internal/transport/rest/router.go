package rest

import "net/http"

// Handlers groups everything the router serves.
type Handlers struct {
	Health     *HealthHandler
	Vocabulary *VocabularyHandler
	Study      *StudyHandler
	Exercise   *ExerciseHandler
}

// NewRouter mounts the probes at the root and the API under /api/. The
// api middleware wraps only the API so probes skip auth and rate limits.
func NewRouter(h Handlers, api func(http.Handler) http.Handler) http.Handler {
	apiMux := http.NewServeMux()

	apiMux.HandleFunc("POST /api/vocabulary", h.Vocabulary.Save)
	apiMux.HandleFunc("GET /api/vocabulary", h.Vocabulary.List)
	apiMux.HandleFunc("POST /api/vocabulary/{id}/known", h.Vocabulary.MarkKnown)

	apiMux.HandleFunc("GET /api/study/due", h.Study.Due)
	apiMux.HandleFunc("POST /api/study/grade", h.Study.Grade)
	apiMux.HandleFunc("POST /api/study/grade-batch", h.Study.GradeBatch)
	apiMux.HandleFunc("POST /api/study/cards/{id}/reset", h.Study.ResetCard)
	apiMux.HandleFunc("POST /api/study/reset-recent", h.Study.ResetRecent)
	apiMux.HandleFunc("GET /api/study/cards/{id}/history", h.Study.History)

	apiMux.HandleFunc("POST /api/exercises", h.Exercise.Generate)

	root := http.NewServeMux()
	root.HandleFunc("GET /live", h.Health.Live)
	root.HandleFunc("GET /ready", h.Health.Ready)
	root.HandleFunc("GET /health", h.Health.Health)

	var apiHandler http.Handler = apiMux
	if api != nil {
		apiHandler = api(apiMux)
	}
	root.Handle("/api/", apiHandler)

	return root
}
