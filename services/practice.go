package services

import (
	"context"
	"fmt"

	"natulang/models"
)

// PracticeOrchestrator runs the full evaluate-and-advance cycle for one
// attempt. It is the only component whose side effects cross module
// boundaries.
type PracticeOrchestrator struct {
	judge       *PronunciationJudge
	progression *ProgressionEngine
	store       *ProgressStore
}

func NewPracticeOrchestrator(judge *PronunciationJudge, progression *ProgressionEngine, store *ProgressStore) *PracticeOrchestrator {
	return &PracticeOrchestrator{judge: judge, progression: progression, store: store}
}

// EvaluatePractice scores the transcript, advances the learner on a pass
// and folds the attempt into their running stats. The score is fully
// computed before any store write, so an aborted request leaves no partial
// state behind.
func (o *PracticeOrchestrator) EvaluatePractice(ctx context.Context, attempt models.PracticeAttempt) (*models.PracticeResponse, error) {
	score := o.judge.Evaluate(ctx, attempt.ExpectedText, attempt.TranscribedText, attempt.Language)

	isCorrect := score.Overall >= PassThreshold

	var nextExerciseID string
	if isCorrect {
		next, _, err := o.progression.Advance(attempt.UserID, attempt.CourseID, attempt.LessonID, attempt.ExerciseID, true)
		if err != nil {
			return nil, fmt.Errorf("practice evaluation failed: %w", err)
		}
		nextExerciseID = next
	}

	// Recorded after progression on purpose: a lesson completed just above
	// moves the rolling-average divisor for this same attempt.
	o.store.RecordAttempt(attempt.UserID, score.Overall)

	return &models.PracticeResponse{
		TranscribedText:    attempt.TranscribedText,
		ExpectedText:       attempt.ExpectedText,
		PronunciationScore: score,
		IsCorrect:          isCorrect,
		Encouragement:      encouragementFor(score.Overall),
		NextExerciseID:     nextExerciseID,
	}, nil
}

// encouragementFor bands are intentionally different from the scorer's
// feedback bands; the two sets do not coincide.
func encouragementFor(overall float64) string {
	switch {
	case overall >= 90:
		return "🎉 Perfect! Excellent pronunciation!"
	case overall >= 75:
		return "✨ Great job! Well done!"
	case overall >= 60:
		return "👍 Good effort! Keep practicing!"
	default:
		return "💪 Keep trying! You're learning!"
	}
}
