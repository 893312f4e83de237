package exercise

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/wordflow-backend/internal/domain"
	"github.com/heartmarshall/wordflow-backend/internal/textnorm"
)

// meaningInContext asks for the translation of a term shown in its context.
func (g *Generator) meaningInContext(target *domain.VocabularyItem, pool []domain.VocabularyItem) (*domain.Exercise, bool) {
	answer := translationOf(target)
	if answer == "" {
		return nil, false
	}

	opts, ok := g.options(target, pool, translationOf, answer)
	if !ok {
		return nil, false
	}

	return &domain.Exercise{
		Type:          domain.ExerciseMeaningInContext,
		Prompt:        termOf(target),
		Context:       target.Context,
		Answer:        answer,
		Options:       opts,
		VocabularyIDs: []uuid.UUID{target.ID},
	}, true
}

// clozeBlank blanks the first occurrence of the term in its own context and
// asks which term fills the gap. A context that does not contain the term is
// a data problem, so it fails without retrying.
func (g *Generator) clozeBlank(target *domain.VocabularyItem, pool []domain.VocabularyItem) (*domain.Exercise, bool) {
	prompt, ok := blankOut(target.Context, termOf(target))
	if !ok {
		return nil, false
	}

	answer := termOf(target)
	opts, ok := g.options(target, pool, termOf, answer)
	if !ok {
		return nil, false
	}

	return &domain.Exercise{
		Type:          domain.ExerciseClozeBlank,
		Prompt:        prompt,
		Answer:        answer,
		Options:       opts,
		VocabularyIDs: []uuid.UUID{target.ID},
	}, true
}

// reverseMCQ shows the translation and asks for the term.
func (g *Generator) reverseMCQ(target *domain.VocabularyItem, pool []domain.VocabularyItem) (*domain.Exercise, bool) {
	prompt := translationOf(target)
	answer := termOf(target)
	if prompt == "" || answer == "" {
		return nil, false
	}

	opts, ok := g.options(target, pool, termOf, answer)
	if !ok {
		return nil, false
	}

	return &domain.Exercise{
		Type:          domain.ExerciseReverseMCQ,
		Prompt:        prompt,
		Answer:        answer,
		Options:       opts,
		VocabularyIDs: []uuid.UUID{target.ID},
	}, true
}

// blankOut replaces the first case-insensitive match of term in context with
// the blank marker. It fails when the term is absent or when the context is
// just the term itself.
func blankOut(context, term string) (string, bool) {
	if term == "" || textnorm.NormalizeBase(context) == textnorm.NormalizeBase(term) {
		return "", false
	}

	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(term))
	if err != nil {
		return "", false
	}
	loc := re.FindStringIndex(context)
	if loc == nil {
		return "", false
	}

	var b strings.Builder
	b.Grow(len(context))
	b.WriteString(context[:loc[0]])
	b.WriteString(domain.BlankMarker)
	b.WriteString(context[loc[1]:])
	return b.String(), true
}
