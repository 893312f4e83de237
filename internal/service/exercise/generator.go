// Package exercise builds practice questions from a user's vocabulary pool.
//
// Every choice set passes through the same normalization gate before it is
// returned, so no generated question has two options that read the same.
// Randomness comes from a seeded source owned by the Generator; two
// generators built with the same seed produce identical exercises.
package exercise

import (
	"math/rand/v2"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
)

// Config tunes exercise generation.
type Config struct {
	DistractorCount int // wanted wrong options per MCQ
	RetryBudget     int // re-selections after an ambiguous option set
	MatchingSize    int // pairs per matching exercise
	MatchingMin     int // fewest unique pairs worth showing
	PageProximity   int // pages apart that still count as "nearby"
}

// DefaultConfig returns the standard generation settings.
func DefaultConfig() Config {
	return Config{
		DistractorCount: 3,
		RetryBudget:     3,
		MatchingSize:    5,
		MatchingMin:     4,
		PageProximity:   3,
	}
}

// Generator produces exercises. It is not safe for concurrent use; build one
// per request or per review session.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// NewGenerator creates a Generator whose choices are fully determined by seed.
func NewGenerator(cfg Config, seed uint64) *Generator {
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// builder tries to produce one exercise type for target.
type builder func(g *Generator, target *domain.VocabularyItem, pool []domain.VocabularyItem) (*domain.Exercise, bool)

var builders = map[domain.ExerciseType]builder{
	domain.ExerciseMeaningInContext: (*Generator).meaningInContext,
	domain.ExerciseClozeBlank:       (*Generator).clozeBlank,
	domain.ExerciseReverseMCQ:       (*Generator).reverseMCQ,
}

// fallbackChain lists the types to try, in order, when typ is requested.
func fallbackChain(typ domain.ExerciseType) []domain.ExerciseType {
	switch typ {
	case domain.ExerciseClozeBlank, domain.ExerciseReverseMCQ:
		return []domain.ExerciseType{typ, domain.ExerciseMeaningInContext}
	default:
		return []domain.ExerciseType{domain.ExerciseMeaningInContext}
	}
}

// Generate builds a single-item exercise for target using pool as the
// distractor source. An empty typ selects one from stage. When the chosen
// type cannot be built it falls back to meaning-in-context; the second
// return value is false only when every link of the chain failed.
//
// Matching exercises cover several items and are built by GenerateMatching.
func (g *Generator) Generate(
	target domain.VocabularyItem,
	pool []domain.VocabularyItem,
	typ domain.ExerciseType,
	stage domain.LearningStage,
) (*domain.Exercise, bool) {
	if typ == "" {
		typ = g.SelectType(stage)
	}
	if typ == domain.ExerciseMatchingPairs {
		return nil, false
	}

	for _, t := range fallbackChain(typ) {
		if ex, ok := builders[t](g, &target, pool); ok {
			return ex, true
		}
	}
	return nil, false
}

// SelectType picks the single-item exercise type for a learning stage.
func (g *Generator) SelectType(stage domain.LearningStage) domain.ExerciseType {
	switch stage {
	case domain.StageYoung:
		young := [...]domain.ExerciseType{domain.ExerciseClozeBlank, domain.ExerciseReverseMCQ}
		return young[g.rng.IntN(len(young))]
	case domain.StageMature:
		mature := [...]domain.ExerciseType{
			domain.ExerciseMeaningInContext,
			domain.ExerciseClozeBlank,
			domain.ExerciseReverseMCQ,
		}
		return mature[g.rng.IntN(len(mature))]
	default:
		return domain.ExerciseMeaningInContext
	}
}

// shuffle permutes s in place using the generator's source.
func shuffle[T any](g *Generator, s []T) {
	g.rng.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}
