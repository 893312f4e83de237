// Package app wires configuration, storage, services and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/wordflow-backend/internal/auth"
	"github.com/heartmarshall/wordflow-backend/internal/config"
	"github.com/heartmarshall/wordflow-backend/internal/service/exercise"
	"github.com/heartmarshall/wordflow-backend/internal/service/study"
	"github.com/heartmarshall/wordflow-backend/internal/service/vocabulary"
	"github.com/heartmarshall/wordflow-backend/internal/transport/middleware"
	"github.com/heartmarshall/wordflow-backend/internal/transport/rest"
)

// Run is the application entry point. It serves until ctx is cancelled and
// then drains in-flight requests within the configured shutdown timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		buildAttr(),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("log_level", cfg.Log.Level),
	)

	store, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer store.close()

	replays, cacheComponent, closeCache, err := openReplayCache(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open replay cache: %w", err)
	}
	defer closeCache()

	components := []rest.Component{{Name: "storage", Pinger: store.pinger}}
	if cacheComponent != nil {
		components = append(components, *cacheComponent)
	}

	handler, stop := newHandler(cfg, logger, store, replays, components)
	defer stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// newHandler builds services and the middleware chain on top of store.
// The returned stop function releases background resources.
func newHandler(
	cfg *config.Config,
	logger *slog.Logger,
	store *storage,
	replays replayStore,
	components []rest.Component,
) (http.Handler, func()) {
	studySvc := study.NewService(logger, store.cards, store.attempts, store.vocab, replays, store.tx, studyConfig(cfg.Grading))
	vocabSvc := vocabulary.NewService(logger, store.vocab, store.cards, store.tx)
	exerciseSvc := exercise.NewService(logger, store.cards, store.vocab, exercise.Config{
		DistractorCount: cfg.Exercise.DistractorCount,
		RetryBudget:     cfg.Exercise.RetryBudget,
		MatchingSize:    cfg.Exercise.MatchingSize,
		MatchingMin:     cfg.Exercise.MatchingMin,
		PageProximity:   cfg.Exercise.PageProximity,
	})

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	var (
		limit middleware.Middleware
		stop  = func() {}
	)
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Window)
		limit, stop = limiter.Middleware(), limiter.Stop
	}

	handler := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(Version, components...),
		Vocabulary: rest.NewVocabularyHandler(vocabSvc, logger),
		Study:      rest.NewStudyHandler(studySvc, logger),
		Exercise:   rest.NewExerciseHandler(exerciseSvc, logger),
	}, middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Auth(tokens),
		middleware.SessionID,
		middleware.Logger(logger),
		limit,
	))

	return handler, stop
}

func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
