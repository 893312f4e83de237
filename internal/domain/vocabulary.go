package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxPhraseWords is the longest word count accepted as a phrase.
const MaxPhraseWords = 6

// VocabularyItem is a term or short phrase a user saved while reading.
type VocabularyItem struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	DocumentID     uuid.UUID
	Term           string
	TermNormalized string
	Translation    string
	Context        string
	Kind           VocabularyKind
	Page           *int
	IsKnown        bool
	CreatedAt      time.Time
}

// NearPage reports whether two items were saved from the same document
// within maxDistance pages of each other.
func (v *VocabularyItem) NearPage(other *VocabularyItem, maxDistance int) bool {
	if v.DocumentID != other.DocumentID || v.Page == nil || other.Page == nil {
		return false
	}
	d := *v.Page - *other.Page
	if d < 0 {
		d = -d
	}
	return d <= maxDistance
}

// DueCard pairs a due flashcard with the vocabulary item it drills.
type DueCard struct {
	Card       Flashcard
	Vocabulary VocabularyItem
}
