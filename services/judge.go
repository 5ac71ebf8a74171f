package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"natulang/models"
)

// Evaluator scores one practice attempt.
type Evaluator interface {
	Evaluate(ctx context.Context, expected, transcribed, language string) (models.PronunciationScore, error)
}

// HeuristicEvaluator wraps the lexical scorer. It never fails.
type HeuristicEvaluator struct{}

func (HeuristicEvaluator) Evaluate(_ context.Context, expected, transcribed, _ string) (models.PronunciationScore, error) {
	return ScorePronunciation(expected, transcribed), nil
}

// GeminiEvaluator asks the language model to grade the attempt.
type GeminiEvaluator struct {
	Model string
}

func (g GeminiEvaluator) Evaluate(ctx context.Context, expected, transcribed, language string) (models.PronunciationScore, error) {
	if language == "" {
		language = "French"
	}
	prompt := fmt.Sprintf(
		`You are a %s pronunciation expert. Compare the expected phrase with what the user actually said.
Score the pronunciation on:
1. accuracy: how closely the transcribed text matches the expected (0-100)
2. fluency: how natural/smooth the pronunciation sounds (0-100)
3. completeness: whether all words were spoken (0-100)
4. overall: weighted average score (0-100)

Also provide brief, encouraging feedback in English (1-2 sentences).

Expected: "%s"
Transcribed: "%s"

Required Output Format (JSON):
{
  "accuracy": <number>,
  "fluency": <number>,
  "completeness": <number>,
  "overall": <number>,
  "feedback": "<string>"
}

Provide ONLY the JSON output without additional text or markdown formatting.`,
		language, expected, transcribed,
	)

	model := g.Model
	if model == "" {
		model = defaultGeminiModel
	}
	response, err := generateModelText(ctx, model, prompt)
	if err != nil {
		return models.PronunciationScore{}, fmt.Errorf("failed to evaluate pronunciation: %w", err)
	}

	// Missing numeric fields stay at zero; only the feedback gets a
	// friendly default. Partial responses are usable, not rejected.
	var score models.PronunciationScore
	if err := json.Unmarshal([]byte(response), &score); err != nil {
		return models.PronunciationScore{}, fmt.Errorf("invalid evaluation format: %w", err)
	}
	if score.Feedback == "" {
		score.Feedback = "Good try!"
	}
	return score, nil
}

// PronunciationJudge picks the scoring backend once at startup and degrades
// to the heuristic scorer when a call fails. A backend failure affects
// exactly one attempt and is never retried.
type PronunciationJudge struct {
	primary   Evaluator
	heuristic HeuristicEvaluator
}

// NewPronunciationJudge probes backend availability at construction time.
func NewPronunciationJudge() *PronunciationJudge {
	judge := &PronunciationJudge{}
	if geminiAvailable() {
		judge.primary = GeminiEvaluator{}
	}
	return judge
}

// Evaluate returns a score for the attempt. Empty transcripts short-circuit
// to the all-zero score without touching the backend.
func (j *PronunciationJudge) Evaluate(ctx context.Context, expected, transcribed, language string) models.PronunciationScore {
	if strings.TrimSpace(transcribed) == "" {
		return ScorePronunciation(expected, transcribed)
	}
	if j.primary != nil {
		score, err := j.primary.Evaluate(ctx, expected, transcribed, language)
		if err == nil {
			return score
		}
		log.Printf("Judge evaluation failed, falling back to heuristic: %v", err)
	}
	score, _ := j.heuristic.Evaluate(ctx, expected, transcribed, language)
	return score
}
