package domain

import "github.com/google/uuid"

// BlankMarker replaces the target term in a cloze prompt.
const BlankMarker = "_____"

// MatchPair is one canonical term/translation pairing of a matching exercise.
type MatchPair struct {
	VocabularyID uuid.UUID
	Term         string
	Translation  string
}

// Exercise is a generated practice question. It is never persisted.
//
// MCQ types fill Prompt, Answer and Options; matching fills Pairs plus the
// independently shuffled Terms and Translations display lists.
type Exercise struct {
	Type          ExerciseType
	Prompt        string
	Context       string
	Answer        string
	Options       []string
	Pairs         []MatchPair
	Terms         []string
	Translations  []string
	VocabularyIDs []uuid.UUID
}

// Size returns how many vocabulary items the exercise covers.
func (e *Exercise) Size() int { return len(e.VocabularyIDs) }
