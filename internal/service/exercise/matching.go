package exercise

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
	"github.com/heartmarshall/wordflow-backend/internal/textnorm"
)

// GenerateMatching builds a matching-pairs exercise from a batch of items.
//
// Items are de-duplicated by normalized term, then by normalized translation.
// Fewer than MatchingMin survivors means there is not enough material and the
// second return value is false. At most MatchingSize pairs are used.
func (g *Generator) GenerateMatching(batch []domain.VocabularyItem) (*domain.Exercise, bool) {
	items := make([]domain.VocabularyItem, 0, len(batch))
	for _, it := range batch {
		if termOf(&it) != "" && translationOf(&it) != "" {
			items = append(items, it)
		}
	}

	items = textnorm.UniqueBy(items, func(v domain.VocabularyItem) string {
		return textnorm.NormalizeLocalized(v.Term)
	})
	items = textnorm.UniqueBy(items, func(v domain.VocabularyItem) string {
		return textnorm.NormalizeLocalized(v.Translation)
	})
	if len(items) < g.cfg.MatchingMin {
		return nil, false
	}
	if len(items) > g.cfg.MatchingSize {
		items = items[:g.cfg.MatchingSize]
	}

	pairs := make([]domain.MatchPair, len(items))
	terms := make([]string, len(items))
	translations := make([]string, len(items))
	ids := make([]uuid.UUID, len(items))
	for i := range items {
		pairs[i] = domain.MatchPair{
			VocabularyID: items[i].ID,
			Term:         termOf(&items[i]),
			Translation:  translationOf(&items[i]),
		}
		terms[i] = pairs[i].Term
		translations[i] = pairs[i].Translation
		ids[i] = items[i].ID
	}

	if textnorm.IsAmbiguous(terms, textnorm.NormalizeLocalized) ||
		textnorm.IsAmbiguous(translations, textnorm.NormalizeLocalized) {
		return nil, false
	}

	shuffle(g, terms)
	shuffle(g, translations)

	return &domain.Exercise{
		Type:          domain.ExerciseMatchingPairs,
		Pairs:         pairs,
		Terms:         terms,
		Translations:  translations,
		VocabularyIDs: ids,
	}, true
}
