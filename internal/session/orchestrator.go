// Package session drives a review session from the client side: it pulls
// the due-card feed, builds an exercise for the current queue position,
// submits the answer to the grading API and advances.
//
// One Orchestrator serves one review session. Its methods are safe to call
// from several goroutines, but only one of Start, Submit, Skip and Retry
// runs at a time; the others fail fast with ErrInFlight.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
	"github.com/heartmarshall/wordflow-backend/internal/service/exercise"
	"github.com/heartmarshall/wordflow-backend/internal/service/study"
)

// studyAPI is the grading surface. The study service satisfies it in
// process and the HTTP client satisfies it remotely.
type studyAPI interface {
	DueCards(ctx context.Context, input study.DueCardsInput) (*study.DueFeed, error)
	GradeCard(ctx context.Context, input study.GradeCardInput) (*study.GradeResult, error)
	GradeBatch(ctx context.Context, input study.GradeBatchInput) (*study.BatchResult, error)
}

// Config tunes a review session.
type Config struct {
	Exercise exercise.Config
	// MatchingEvery offers every n-th exercise as a matching batch when
	// enough same-stage cards remain. 0 disables matching.
	MatchingEvery int
	FeedLimit     int // 0 means the server default
}

// DefaultConfig returns the standard session settings.
func DefaultConfig() Config {
	return Config{
		Exercise:      exercise.DefaultConfig(),
		MatchingEvery: 5,
	}
}

type phase int

const (
	phaseNone phase = iota
	phaseLoad
	phaseGenerate
	phaseGrade
)

// presented is the exercise awaiting an answer.
type presented struct {
	exercise  *domain.Exercise
	cards     []domain.DueCard
	token     Token
	attemptID uuid.UUID
	shownAt   time.Time
}

// Orchestrator is the review session state machine.
type Orchestrator struct {
	api   studyAPI
	gen   *exercise.Generator
	cfg   Config
	log   *slog.Logger
	now   func() time.Time
	newID func() uuid.UUID

	mu           sync.Mutex
	busy         bool
	sessionID    uuid.UUID
	sessionStart time.Time
	queue        []domain.DueCard
	pool         []domain.VocabularyItem
	pos          int
	turn         int
	current      *presented
	failed       phase
	state        State
	stats        Stats
}

// New creates an Orchestrator. seed fixes the exercise generator's choices.
func New(log *slog.Logger, api studyAPI, cfg Config, seed uint64) *Orchestrator {
	return &Orchestrator{
		api:   api,
		gen:   exercise.NewGenerator(cfg.Exercise, seed),
		cfg:   cfg,
		log:   log.With("component", "session"),
		now:   time.Now,
		newID: uuid.New,
		state: State{Status: StatusLoading},
	}
}

// State returns the current snapshot.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Stats returns the session counters.
func (o *Orchestrator) Stats() Stats {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.stats
}

// SessionID returns the id attached to every attempt of this session.
func (o *Orchestrator) SessionID() uuid.UUID {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.sessionID
}

// acquire marks the orchestrator busy. The caller must call release.
func (o *Orchestrator) acquire() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.busy {
		return ErrInFlight
	}
	o.busy = true
	return nil
}

func (o *Orchestrator) release() {
	o.mu.Lock()
	o.busy = false
	o.mu.Unlock()
}

// Start begins the session: it fetches the due feed and presents the first
// exercise.
func (o *Orchestrator) Start(ctx context.Context) (State, error) {
	if err := o.acquire(); err != nil {
		return o.State(), err
	}
	defer o.release()

	o.mu.Lock()
	o.sessionID = o.newID()
	o.mu.Unlock()

	o.refetch(ctx)
	return o.State(), nil
}

// refetch reloads the due feed and starts a new fencing window at the
// current time. Cards graded elsewhere in the meantime drop out of the feed.
func (o *Orchestrator) refetch(ctx context.Context) {
	o.mu.Lock()
	o.state = State{Status: StatusLoading}
	o.current = nil
	start := o.now()
	o.mu.Unlock()

	feed, err := o.api.DueCards(ctx, study.DueCardsInput{Limit: o.cfg.FeedLimit})

	o.mu.Lock()
	defer o.mu.Unlock()

	if err != nil {
		o.fail(phaseLoad, fmt.Errorf("load due cards: %w", err), loadRetryable(err))
		return
	}

	o.sessionStart = start
	o.queue = feed.Cards
	o.pool = feed.Pool
	o.pos = 0
	o.log.DebugContext(ctx, "due feed loaded",
		slog.String("session_id", o.sessionID.String()),
		slog.Int("cards", len(feed.Cards)),
		slog.Int("pool", len(feed.Pool)),
	)
	o.present()
}

func loadRetryable(err error) bool {
	return !errors.Is(err, domain.ErrUnauthorized) && !errors.Is(err, domain.ErrValidation)
}

// fail moves to the error state. Must hold mu.
func (o *Orchestrator) fail(p phase, err error, retryable bool) {
	o.failed = p
	o.state = State{
		Status:    StatusError,
		Position:  o.pos,
		Remaining: o.remaining(),
		Err:       err,
		Retryable: retryable,
	}
}

func (o *Orchestrator) remaining() int {
	if n := len(o.queue) - o.pos; n > 0 {
		return n
	}
	return 0
}

// present builds the exercise for the current position. Must hold mu.
func (o *Orchestrator) present() {
	o.failed = phaseNone
	if o.pos >= len(o.queue) {
		o.current = nil
		o.state = State{Status: StatusFinished, Position: o.pos}
		return
	}

	if ex, cards, ok := o.tryMatching(); ok {
		o.ready(ex, cards)
		return
	}

	dc := o.queue[o.pos]
	ex, ok := o.gen.Generate(dc.Vocabulary, o.pool, "", dc.Card.Stage())
	if !ok {
		o.current = nil
		o.fail(phaseGenerate, fmt.Errorf("flashcard %s: %w", dc.Card.ID, domain.ErrGenerationFailed), true)
		return
	}
	o.ready(ex, []domain.DueCard{dc})
}

// tryMatching builds a matching exercise when this turn is a matching slot
// and enough cards of the current card's stage remain. The covered cards are
// moved to the front of the rest of the queue so the position can advance
// past them in one step. Must hold mu.
func (o *Orchestrator) tryMatching() (*domain.Exercise, []domain.DueCard, bool) {
	every, size := o.cfg.MatchingEvery, o.cfg.Exercise.MatchingSize
	if every <= 0 || size <= 0 || (o.turn+1)%every != 0 {
		return nil, nil, false
	}

	stage := o.queue[o.pos].Card.Stage()
	batch := make([]domain.VocabularyItem, 0, size)
	for i := o.pos; i < len(o.queue) && len(batch) < size; i++ {
		if o.queue[i].Card.Stage() == stage {
			batch = append(batch, o.queue[i].Vocabulary)
		}
	}
	if len(batch) < size {
		return nil, nil, false
	}

	ex, ok := o.gen.GenerateMatching(batch)
	if !ok {
		return nil, nil, false
	}

	covered := make(map[uuid.UUID]struct{}, len(ex.VocabularyIDs))
	for _, id := range ex.VocabularyIDs {
		covered[id] = struct{}{}
	}
	n := promote(o.queue[o.pos:], covered)
	return ex, o.queue[o.pos : o.pos+n], true
}

// promote stably moves the cards whose vocabulary is in covered to the front
// of q and returns how many there are.
func promote(q []domain.DueCard, covered map[uuid.UUID]struct{}) int {
	front := make([]domain.DueCard, 0, len(covered))
	rest := make([]domain.DueCard, 0, len(q))
	for _, dc := range q {
		if _, ok := covered[dc.Vocabulary.ID]; ok {
			front = append(front, dc)
		} else {
			rest = append(rest, dc)
		}
	}
	copy(q, front)
	copy(q[len(front):], rest)
	return len(front)
}

// ready shows ex. Must hold mu.
func (o *Orchestrator) ready(ex *domain.Exercise, cards []domain.DueCard) {
	now := o.now()
	o.current = &presented{
		exercise:  ex,
		cards:     cards,
		token:     Token{Kind: ex.Type, Position: o.pos, IssuedAt: now},
		attemptID: o.newID(),
		shownAt:   now,
	}
	o.showCurrent()
}

// showCurrent sets the ready state for the current exercise. Must hold mu.
func (o *Orchestrator) showCurrent() {
	o.state = State{
		Status:    StatusReady,
		Exercise:  o.current.exercise,
		Cards:     o.current.cards,
		Token:     o.current.token,
		Position:  o.pos,
		Remaining: o.remaining(),
	}
}

// Submit grades the current exercise. tok must be the token of the state
// the answer was given in. Grading outcomes, including failures, are
// reported through the returned state; the error is reserved for calls
// that were not accepted.
//
// A submission is not cancelled by ctx once it is sent; a failed one can be
// resent with Retry and the same attempt id.
func (o *Orchestrator) Submit(ctx context.Context, tok Token, ans Answer) (State, error) {
	if err := o.acquire(); err != nil {
		return o.State(), err
	}
	defer o.release()

	o.mu.Lock()
	cur := o.current
	switch {
	case o.state.Status != StatusReady || cur == nil:
		o.mu.Unlock()
		return o.State(), ErrNotReady
	case !tok.Equal(cur.token):
		o.mu.Unlock()
		return o.State(), ErrStaleToken
	}
	for _, dc := range cur.cards {
		if q := ans.qualityFor(dc.Vocabulary.ID); !q.IsValid() {
			o.mu.Unlock()
			return o.State(), domain.NewValidationError("quality", "must be between 0 and 5")
		}
	}
	sessionID, sessionStart := o.sessionID, o.sessionStart
	elapsed := o.now().Sub(cur.shownAt)
	o.mu.Unlock()

	replayed, err := o.grade(context.WithoutCancel(ctx), cur, ans, sessionID, sessionStart, elapsed)

	switch {
	case err == nil:
		o.mu.Lock()
		o.stats.Graded += len(cur.cards)
		if replayed {
			o.stats.Replayed++
		}
		o.advance(len(cur.cards))
		o.mu.Unlock()
	case errors.Is(err, domain.ErrSessionConflict), errors.Is(err, domain.ErrNotFound):
		o.log.InfoContext(ctx, "stale review state, refetching",
			slog.String("session_id", sessionID.String()),
			slog.String("reason", err.Error()),
		)
		o.mu.Lock()
		o.stats.Refetches++
		o.mu.Unlock()
		o.refetch(ctx)
	default:
		o.log.WarnContext(ctx, "grading failed",
			slog.String("session_id", sessionID.String()),
			slog.String("attempt_id", cur.attemptID.String()),
			slog.String("error", err.Error()),
		)
		o.mu.Lock()
		o.fail(phaseGrade, err, true)
		o.mu.Unlock()
	}

	return o.State(), nil
}

func (o *Orchestrator) grade(
	ctx context.Context,
	cur *presented,
	ans Answer,
	sessionID uuid.UUID,
	sessionStart time.Time,
	elapsed time.Duration,
) (bool, error) {
	typ := cur.exercise.Type
	ms := int(min(elapsed, 10*time.Minute) / time.Millisecond)

	if len(cur.cards) == 1 && typ != domain.ExerciseMatchingPairs {
		dc := cur.cards[0]
		res, err := o.api.GradeCard(ctx, study.GradeCardInput{
			AttemptID:      cur.attemptID,
			FlashcardID:    dc.Card.ID,
			Quality:        ans.qualityFor(dc.Vocabulary.ID),
			SessionStart:   &sessionStart,
			SessionID:      &sessionID,
			ResponseTimeMs: &ms,
			ExerciseType:   &typ,
		})
		if err != nil {
			return false, err
		}
		return res.Replayed, nil
	}

	items := make([]study.BatchItem, len(cur.cards))
	for i, dc := range cur.cards {
		items[i] = study.BatchItem{
			FlashcardID:    dc.Card.ID,
			Quality:        ans.qualityFor(dc.Vocabulary.ID),
			ResponseTimeMs: &ms,
			ExerciseType:   &typ,
		}
	}
	res, err := o.api.GradeBatch(ctx, study.GradeBatchInput{
		BatchID:      cur.attemptID,
		SessionStart: sessionStart,
		SessionID:    &sessionID,
		Items:        items,
	})
	if err != nil {
		return false, err
	}
	return res.Replayed, nil
}

// advance moves past n cards and presents the next exercise. Must hold mu.
func (o *Orchestrator) advance(n int) {
	o.pos += n
	o.turn++
	o.current = nil
	o.present()
}

// Skip moves past the current exercise without grading it. It is the
// explicit acknowledgement needed to leave a card behind after a failure.
func (o *Orchestrator) Skip(ctx context.Context) (State, error) {
	if err := o.acquire(); err != nil {
		return o.State(), err
	}
	defer o.release()

	o.mu.Lock()
	defer o.mu.Unlock()

	var n int
	switch {
	case o.state.Status == StatusReady && o.current != nil:
		n = len(o.current.cards)
	case o.state.Status == StatusError && o.failed == phaseGrade && o.current != nil:
		n = len(o.current.cards)
	case o.state.Status == StatusError && o.failed == phaseGenerate:
		n = 1
	default:
		return o.state, ErrNotReady
	}

	o.log.DebugContext(ctx, "exercise skipped",
		slog.String("session_id", o.sessionID.String()),
		slog.Int("position", o.pos),
		slog.Int("cards", n),
	)
	o.stats.Skipped += n
	o.advance(n)
	return o.state, nil
}

// Retry recovers from the error state: a failed load is refetched, a failed
// generation is rebuilt with fresh random choices, and a failed grading
// shows the same exercise again under the same attempt id so resending it
// is safe.
func (o *Orchestrator) Retry(ctx context.Context) (State, error) {
	if err := o.acquire(); err != nil {
		return o.State(), err
	}
	defer o.release()

	o.mu.Lock()
	if o.state.Status != StatusError {
		o.mu.Unlock()
		return o.State(), ErrNoFailure
	}

	switch o.failed {
	case phaseLoad:
		o.mu.Unlock()
		o.refetch(ctx)
		return o.State(), nil
	case phaseGrade:
		o.current.token.IssuedAt = o.now()
		o.failed = phaseNone
		o.showCurrent()
	default:
		o.present()
	}
	st := o.state
	o.mu.Unlock()
	return st, nil
}
