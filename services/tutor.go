package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"natulang/models"
)

// GenerateTutorReply produces one conversational tutoring turn. When the
// Gemini client is unavailable or the call fails, a deterministic stub
// keeps the conversation going.
func GenerateTutorReply(ctx context.Context, transcript, targetLanguage, proficiency string, history []models.ChatExchange) models.ChatResponse {
	if targetLanguage == "" {
		targetLanguage = "French"
	}

	if geminiAvailable() {
		prompt := buildTutorPrompt(transcript, targetLanguage, proficiency, history)
		raw, err := generateDefaultModelText(ctx, prompt)
		if err == nil {
			reply := parseTutorJSON(raw)
			reply.Provider = "gemini"
			return reply
		}
		log.Printf("Tutor reply generation failed, using stub: %v", err)
	}

	return models.ChatResponse{
		Reply:       fmt.Sprintf("You said: '%s'. Let's practice %s more.", transcript, targetLanguage),
		Corrections: []models.Correction{},
		Suggestions: []string{"Form a past tense sentence."},
		NextPrompt:  "Describe what you did yesterday.",
		Provider:    "stub",
	}
}

func buildTutorPrompt(transcript, targetLanguage, proficiency string, history []models.ChatExchange) string {
	// Only the most recent exchanges; the full history would blow up the
	// prompt on long sessions.
	if len(history) > 6 {
		history = history[len(history)-6:]
	}
	var historyText strings.Builder
	for _, h := range history {
		fmt.Fprintf(&historyText, "User: %s\nAI: %s\n", h.User, h.AI)
	}

	profLine := ""
	if proficiency != "" {
		profLine = "Proficiency: " + proficiency + "\n"
	}

	return fmt.Sprintf(
		`You are a patient language tutor. Provide:
- reply: natural response advancing conversation.
- corrections: array of {original, corrected, note} only if needed.
- suggestions: short actionable next practice tips.
- nextPrompt: a suggested next user prompt.

Conversation so far:
%sCurrent user input: %s
Target language: %s
%s
Required Output Format (JSON):
{
  "reply": "<string>",
  "corrections": [{"original": "<string>", "corrected": "<string>", "note": "<string>"}],
  "suggestions": ["<string>"],
  "nextPrompt": "<string>"
}

Provide ONLY the JSON output without additional text or markdown formatting.`,
		historyText.String(), transcript, targetLanguage, profLine,
	)
}

// parseTutorJSON decodes the model output, salvaging a JSON object embedded
// in surrounding prose. As a last resort the raw text becomes the reply.
func parseTutorJSON(raw string) models.ChatResponse {
	var reply models.ChatResponse
	if err := json.Unmarshal([]byte(raw), &reply); err == nil {
		return normalizeTutorReply(reply)
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end > start {
		if err := json.Unmarshal([]byte(raw[start:end+1]), &reply); err == nil {
			return normalizeTutorReply(reply)
		}
	}

	return models.ChatResponse{
		Reply:       strings.TrimSpace(raw),
		Corrections: []models.Correction{},
		Suggestions: []string{"Speak more slowly."},
	}
}

func normalizeTutorReply(reply models.ChatResponse) models.ChatResponse {
	if reply.Corrections == nil {
		reply.Corrections = []models.Correction{}
	}
	if reply.Suggestions == nil {
		reply.Suggestions = []string{}
	}
	return reply
}
