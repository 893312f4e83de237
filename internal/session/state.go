package session

import (
	"errors"
	"time"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
)

// Status is the orchestrator's position in its presentation cycle.
type Status string

const (
	StatusLoading  Status = "LOADING"
	StatusReady    Status = "READY"
	StatusError    Status = "ERROR"
	StatusFinished Status = "FINISHED" // no more due cards
)

func (s Status) String() string { return string(s) }

// Errors returned for calls that do not fit the current state. They leave
// the state untouched.
var (
	ErrInFlight   = errors.New("another session operation is in flight")
	ErrStaleToken = errors.New("submission token does not match the current exercise")
	ErrNotReady   = errors.New("no exercise is awaiting an answer")
	ErrNoFailure  = errors.New("nothing to retry")
)

// Token identifies one presentation of an exercise. A submission must carry
// the token of the exercise it answers, so a second click or a late answer
// for an earlier exercise is rejected instead of graded twice.
type Token struct {
	Kind     domain.ExerciseType
	Position int
	IssuedAt time.Time
}

// Equal reports whether t and other identify the same presentation.
func (t Token) Equal(other Token) bool {
	return t.Kind == other.Kind && t.Position == other.Position && t.IssuedAt.Equal(other.IssuedAt)
}

// State is a snapshot of the orchestrator.
type State struct {
	Status Status

	// Ready: the exercise on screen and the due cards it covers.
	Exercise *domain.Exercise
	Cards    []domain.DueCard
	Token    Token

	Position  int // queue index of the first covered card
	Remaining int // cards not yet graded or skipped, including covered ones

	// Error: the cause and whether Retry can make progress.
	Err       error
	Retryable bool
}

// Stats counts what happened during a session.
type Stats struct {
	Graded    int
	Skipped   int
	Replayed  int
	Refetches int
}
