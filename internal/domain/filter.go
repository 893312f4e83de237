package domain

import "github.com/google/uuid"

// VocabularyFilter contains filtering/pagination parameters for vocabulary listings.
type VocabularyFilter struct {
	DocumentID *uuid.UUID
	Known      *bool
	Search     *string // matched against the normalized term
	Kind       *VocabularyKind
	Limit      int
	Offset     int
}
