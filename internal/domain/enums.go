package domain

// VocabularyKind distinguishes single words from short phrases.
type VocabularyKind string

const (
	VocabularyKindWord   VocabularyKind = "WORD"
	VocabularyKindPhrase VocabularyKind = "PHRASE"
)

func (k VocabularyKind) String() string { return string(k) }

func (k VocabularyKind) IsValid() bool {
	switch k {
	case VocabularyKindWord, VocabularyKindPhrase:
		return true
	}
	return false
}

// ExerciseType identifies how a flashcard is presented.
type ExerciseType string

const (
	ExerciseMeaningInContext ExerciseType = "MEANING_IN_CONTEXT"
	ExerciseClozeBlank       ExerciseType = "CLOZE_BLANK"
	ExerciseReverseMCQ       ExerciseType = "REVERSE_MCQ"
	ExerciseMatchingPairs    ExerciseType = "MATCHING_PAIRS"
)

func (t ExerciseType) String() string { return string(t) }

func (t ExerciseType) IsValid() bool {
	switch t {
	case ExerciseMeaningInContext, ExerciseClozeBlank, ExerciseReverseMCQ, ExerciseMatchingPairs:
		return true
	}
	return false
}

// IsMultipleChoice reports whether the type is a single-item MCQ.
func (t ExerciseType) IsMultipleChoice() bool {
	return t == ExerciseMeaningInContext || t == ExerciseClozeBlank || t == ExerciseReverseMCQ
}

// Quality is the 0-5 self-assessed recall grade.
// 0 is a total blackout, 5 is instant recall; anything below 3 is a lapse.
type Quality int

const (
	QualityMin     Quality = 0
	QualityPassing Quality = 3
	QualityMax     Quality = 5
)

func (q Quality) IsValid() bool {
	return q >= QualityMin && q <= QualityMax
}

// IsLapse reports whether the grade resets the repetition curve.
func (q Quality) IsLapse() bool { return q < QualityPassing }

// LearningStage buckets a flashcard by its consecutive-success count.
type LearningStage string

const (
	StageNew    LearningStage = "NEW"    // repetitions <= 1
	StageYoung  LearningStage = "YOUNG"  // repetitions 2-4
	StageMature LearningStage = "MATURE" // repetitions >= 5
)

func (s LearningStage) String() string { return string(s) }

// StageForRepetitions maps a repetition count to its learning stage.
func StageForRepetitions(reps int) LearningStage {
	switch {
	case reps <= 1:
		return StageNew
	case reps <= 4:
		return StageYoung
	default:
		return StageMature
	}
}
