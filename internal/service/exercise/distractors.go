package exercise

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
	"github.com/heartmarshall/wordflow-backend/internal/textnorm"
)

// Score weights for distractor candidates.
const (
	scoreSameDocument = 5
	scoreSameKind     = 3
	scoreSimilarLen   = 2
	scoreNearPage     = 1

	similarLenRatio = 0.3
)

// field extracts the option text (term or translation) from an item.
type field func(*domain.VocabularyItem) string

func termOf(v *domain.VocabularyItem) string        { return strings.TrimSpace(v.Term) }
func translationOf(v *domain.VocabularyItem) string { return strings.TrimSpace(v.Translation) }

type candidate struct {
	text  string
	key   string
	score int
}

// pickDistractors returns up to n wrong options for target drawn from pool.
//
// Candidates whose normalized text equals, contains, or is contained in the
// target's are dropped as giveaways, as are keys listed in exclude.
// Higher-scored candidates win; ties and the unscored backfill are random.
func (g *Generator) pickDistractors(
	target *domain.VocabularyItem,
	pool []domain.VocabularyItem,
	of field,
	n int,
	exclude map[string]struct{},
) []string {
	targetText := of(target)
	targetKey := textnorm.NormalizeBase(targetText)
	targetTerm := textnorm.NormalizeBase(target.Term)

	cands := make([]candidate, 0, len(pool))
	for i := range pool {
		item := &pool[i]
		if item.ID == target.ID || textnorm.NormalizeBase(item.Term) == targetTerm {
			continue
		}
		text := of(item)
		key := textnorm.NormalizeBase(text)
		if key == "" || textnorm.Overlaps(key, targetKey) {
			continue
		}
		if _, skip := exclude[key]; skip {
			continue
		}
		cands = append(cands, candidate{
			text:  text,
			key:   key,
			score: g.score(target, item, targetText, text),
		})
	}

	shuffle(g, cands)
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].score > cands[j].score })

	out := make([]string, 0, n)
	used := map[string]struct{}{targetKey: {}}
	take := func(c candidate) {
		if len(out) >= n {
			return
		}
		if _, dup := used[c.key]; dup {
			return
		}
		used[c.key] = struct{}{}
		out = append(out, c.text)
	}

	// Scored candidates sort first, so one pass covers both the ranked
	// selection and the random backfill from unscored leftovers.
	for _, c := range cands {
		take(c)
	}
	return out
}

// score rates how plausible item is as a wrong answer for target.
func (g *Generator) score(target, item *domain.VocabularyItem, targetText, text string) int {
	s := 0
	if item.DocumentID == target.DocumentID {
		s += scoreSameDocument
	}
	if item.Kind == target.Kind {
		s += scoreSameKind
	}
	if similarLength(targetText, text) {
		s += scoreSimilarLen
	}
	if target.NearPage(item, g.cfg.PageProximity) {
		s += scoreNearPage
	}
	return s
}

// similarLength reports whether b's rune length is within 30% of a's.
func similarLength(a, b string) bool {
	la := utf8.RuneCountInString(a)
	lb := utf8.RuneCountInString(b)
	diff := la - lb
	if diff < 0 {
		diff = -diff
	}
	return float64(diff) <= similarLenRatio*float64(la)
}

// options builds a shuffled option set containing answer plus distractors.
//
// If two options collide under the localized normalizer, the colliding
// distractor is excluded and selection is retried, up to the retry budget.
// It fails when no unambiguous set with at least one distractor exists.
func (g *Generator) options(
	target *domain.VocabularyItem,
	pool []domain.VocabularyItem,
	of field,
	answer string,
) ([]string, bool) {
	exclude := make(map[string]struct{})

	for attempt := 0; attempt <= g.cfg.RetryBudget; attempt++ {
		distractors := g.pickDistractors(target, pool, of, g.cfg.DistractorCount, exclude)
		if len(distractors) == 0 {
			return nil, false
		}

		opts := append([]string{answer}, distractors...)
		_, j, collide := textnorm.FirstCollision(opts, textnorm.NormalizeLocalized)
		if !collide {
			shuffle(g, opts)
			return opts, true
		}
		exclude[textnorm.NormalizeBase(opts[j])] = struct{}{}
	}
	return nil, false
}
