package services

import (
	"math"
	"strings"
	"unicode/utf8"

	"natulang/models"
)

// ScorePronunciation compares the expected phrase with the transcript and
// produces a lexical similarity score. It is the deterministic fallback
// behind the AI judge and is total over its inputs.
func ScorePronunciation(expected, transcribed string) models.PronunciationScore {
	if strings.TrimSpace(transcribed) == "" {
		return models.PronunciationScore{
			Feedback: "No speech detected. Please try speaking again.",
		}
	}

	expectedClean := strings.ToLower(strings.TrimSpace(expected))
	transcribedClean := strings.ToLower(strings.TrimSpace(transcribed))

	// Completeness: expected words present anywhere in the transcript.
	// Containment is substring based, not word-boundary based, so a short
	// word also matches inside a longer one. Kept as-is: clients depend on
	// the published score values.
	expectedWords := strings.Fields(expectedClean)
	matched := 0
	for _, w := range expectedWords {
		if strings.Contains(transcribedClean, w) {
			matched++
		}
	}
	completeness := 0.0
	if len(expectedWords) > 0 {
		completeness = float64(matched) / float64(len(expectedWords)) * 100
	}

	var accuracy float64
	switch {
	case expectedClean == transcribedClean:
		accuracy = 100.0
	case strings.Contains(expectedClean, transcribedClean) || strings.Contains(transcribedClean, expectedClean):
		accuracy = 85.0
	default:
		lengthDelta := utf8.RuneCountInString(expectedClean) - utf8.RuneCountInString(transcribedClean)
		accuracy = math.Max(0, 100-2*math.Abs(float64(lengthDelta)))
	}

	fluency := completeness * 0.8
	overall := accuracy*0.4 + fluency*0.3 + completeness*0.3

	var feedback string
	switch {
	case overall >= 90:
		feedback = "Excellent pronunciation! Perfect!"
	case overall >= 75:
		feedback = "Very good! Keep practicing."
	case overall >= 50:
		feedback = "Good attempt. Try to pronounce more clearly."
	default:
		feedback = "Keep trying! Listen carefully and repeat."
	}

	return models.PronunciationScore{
		Accuracy:     round1(accuracy),
		Fluency:      round1(fluency),
		Completeness: round1(completeness),
		Overall:      round1(overall),
		Feedback:     feedback,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
