package quizgen

import (
	"log"

	"lexify/models/goal"
)

// Difficulty levels
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Generator produces the five multiple-choice questions for one day of a
// goal, in the learner's languages. Question text is written in the native
// language, all options in the learning language.
type Generator interface {
	Generate(day, duration int, learningLanguage, nativeLanguage string) ([]goal.QuizQuestion, error)
}

// DifficultyFor maps progress through the goal to a difficulty level:
// first 30% of days beginner, up to 70% intermediate, the rest advanced.
func DifficultyFor(day, duration int) string {
	progress := float64(day) / float64(duration) * 100
	switch {
	case progress <= 30:
		return DifficultyBeginner
	case progress <= 70:
		return DifficultyIntermediate
	default:
		return DifficultyAdvanced
	}
}

type withFallback struct {
	primary  Generator
	fallback Generator
}

// WithFallback returns a Generator that tries primary and, on any error,
// substitutes the fallback. The deterministic fallback never fails, so the
// composite never surfaces a generation error to callers.
func WithFallback(primary, fallback Generator) Generator {
	return &withFallback{primary: primary, fallback: fallback}
}

func (w *withFallback) Generate(day, duration int, learningLanguage, nativeLanguage string) ([]goal.QuizQuestion, error) {
	questions, err := w.primary.Generate(day, duration, learningLanguage, nativeLanguage)
	if err == nil {
		return questions, nil
	}
	log.Printf("Quiz generation failed for %s (day %d), using fallback: %v", learningLanguage, day, err)
	return w.fallback.Generate(day, duration, learningLanguage, nativeLanguage)
}
