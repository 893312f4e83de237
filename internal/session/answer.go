package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
	"github.com/heartmarshall/wordflow-backend/internal/textnorm"
)

// Answer is the user's response to the current exercise.
type Answer struct {
	Quality domain.Quality
	// PerItem overrides Quality for individual vocabulary items of a
	// matching exercise.
	PerItem map[uuid.UUID]domain.Quality
}

func (a Answer) qualityFor(vocabularyID uuid.UUID) domain.Quality {
	if q, ok := a.PerItem[vocabularyID]; ok {
		return q
	}
	return a.Quality
}

// Latency thresholds for grading a correct response.
const (
	fastResponse = 5 * time.Second
	slowResponse = 15 * time.Second
)

// QualityFor turns a checked response and its latency into a recall grade.
// Wrong answers are a lapse; right answers grade by how quickly they came.
func QualityFor(correct bool, elapsed time.Duration) domain.Quality {
	switch {
	case !correct:
		return 1
	case elapsed <= fastResponse:
		return domain.QualityMax
	case elapsed <= slowResponse:
		return 4
	default:
		return domain.QualityPassing
	}
}

// CheckChoice reports whether choice answers a multiple-choice exercise.
// It compares with the same normalization the generator de-duplicates with.
func CheckChoice(ex *domain.Exercise, choice string) bool {
	return textnorm.NormalizeLocalized(choice) == textnorm.NormalizeLocalized(ex.Answer)
}

// ScorePairs grades a matching attempt. guesses maps each displayed term to
// the translation the user paired it with; unpaired terms count as wrong.
func ScorePairs(ex *domain.Exercise, guesses map[string]string, elapsed time.Duration) Answer {
	byTerm := make(map[string]string, len(guesses))
	for term, tr := range guesses {
		byTerm[textnorm.NormalizeLocalized(term)] = textnorm.NormalizeLocalized(tr)
	}

	ans := Answer{
		Quality: QualityFor(true, elapsed),
		PerItem: make(map[uuid.UUID]domain.Quality, len(ex.Pairs)),
	}
	for _, p := range ex.Pairs {
		got, ok := byTerm[textnorm.NormalizeLocalized(p.Term)]
		correct := ok && got == textnorm.NormalizeLocalized(p.Translation)
		ans.PerItem[p.VocabularyID] = QualityFor(correct, elapsed)
	}
	return ans
}
