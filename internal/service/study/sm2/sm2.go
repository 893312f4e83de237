// Package sm2 implements the SM-2 spaced-repetition scheduler.
// Advance is a pure function: no I/O, no clock, no randomness.
package sm2

import (
	"math"
	"time"
)

// MinEaseFactor is the floor below which intervals would shrink unboundedly.
const MinEaseFactor = 1.3

// Fixed intervals for the first two consecutive successes.
const (
	firstInterval  = 1
	secondInterval = 6
)

// State is the scheduling state of one flashcard.
type State struct {
	EaseFactor     float64
	Interval       int // days, >= 1
	Repetitions    int // consecutive passing grades
	DueAt          time.Time
	LastReviewedAt *time.Time
}

// Advance applies a 0-5 quality grade to s at time now.
// Callers must reject out-of-range quality before calling.
func Advance(s State, quality int, now time.Time) State {
	next := State{
		EaseFactor:  nextEase(s.EaseFactor, quality),
		Repetitions: s.Repetitions,
	}

	if quality < 3 {
		next.Repetitions = 0
		next.Interval = firstInterval
	} else {
		next.Repetitions++
		switch next.Repetitions {
		case 1:
			next.Interval = firstInterval
		case 2:
			next.Interval = secondInterval
		default:
			prev := max(s.Interval, firstInterval)
			next.Interval = max(firstInterval, int(math.Round(float64(prev)*s.EaseFactor)))
		}
	}

	reviewed := now
	next.LastReviewedAt = &reviewed
	next.DueAt = now.Add(time.Duration(next.Interval) * 24 * time.Hour)

	return next
}

// nextEase is the standard SM-2 ease update, clamped at MinEaseFactor.
func nextEase(ease float64, quality int) float64 {
	d := float64(5 - quality)
	ease += 0.1 - d*(0.08+d*0.02)
	if ease < MinEaseFactor {
		return MinEaseFactor
	}
	return ease
}
