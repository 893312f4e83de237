package vocabulary

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
	"github.com/heartmarshall/wordflow-backend/internal/textnorm"
)

// SaveInput holds the parameters for saving a selection from a document.
type SaveInput struct {
	DocumentID  uuid.UUID
	Term        string
	Translation string
	Context     string
	Page        *int
}

// Validate checks all fields and collects all errors.
func (i *SaveInput) Validate() error {
	var errs []domain.FieldError

	if i.DocumentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "document_id", Message: "required"})
	}

	term := strings.TrimSpace(i.Term)
	switch {
	case term == "":
		errs = append(errs, domain.FieldError{Field: "term", Message: "required"})
	case utf8.RuneCountInString(term) > 200:
		errs = append(errs, domain.FieldError{Field: "term", Message: "max 200 characters"})
	case textnorm.WordCount(term) > domain.MaxPhraseWords:
		errs = append(errs, domain.FieldError{Field: "term", Message: "phrases are limited to 6 words"})
	}

	translation := strings.TrimSpace(i.Translation)
	if translation == "" {
		errs = append(errs, domain.FieldError{Field: "translation", Message: "required"})
	} else if utf8.RuneCountInString(translation) > 500 {
		errs = append(errs, domain.FieldError{Field: "translation", Message: "max 500 characters"})
	}

	if utf8.RuneCountInString(i.Context) > 2000 {
		errs = append(errs, domain.FieldError{Field: "context", Message: "max 2000 characters"})
	}
	if i.Page != nil && *i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds the parameters for listing a user's vocabulary.
type ListInput struct {
	DocumentID *uuid.UUID
	Known      *bool
	Kind       *domain.VocabularyKind
	Search     *string
	Limit      int
	Offset     int
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > 500 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 500"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if i.Kind != nil && !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be WORD or PHRASE"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// MarkKnownInput holds the parameters for flipping an item's known flag.
type MarkKnownInput struct {
	ID    uuid.UUID
	Known bool
}

// Validate checks all fields and collects all errors.
func (i *MarkKnownInput) Validate() error {
	if i.ID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}
