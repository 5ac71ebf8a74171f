package models

// ChatExchange is one user/tutor turn in a conversation session.
type ChatExchange struct {
	User string `json:"user"`
	AI   string `json:"ai"`
}

// Session holds the rolling conversation history for one client.
type Session struct {
	ID      string         `json:"sessionId"`
	History []ChatExchange `json:"history"`
}

// SessionCreateResponse acknowledges a freshly allocated session.
type SessionCreateResponse struct {
	SessionID string `json:"sessionId"`
	Created   bool   `json:"created"`
}

// Correction points out one fix in the learner's sentence.
type Correction struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
	Note      string `json:"note"`
}

// ChatRequest is one conversation turn sent by the client.
type ChatRequest struct {
	SessionID      string `json:"sessionId"`
	Transcript     string `json:"transcript" binding:"required"`
	TargetLanguage string `json:"targetLanguage"`
	Proficiency    string `json:"proficiency"`
}

// ChatResponse is the tutor's structured reply.
type ChatResponse struct {
	Reply       string       `json:"reply"`
	Corrections []Correction `json:"corrections"`
	Suggestions []string     `json:"suggestions"`
	NextPrompt  string       `json:"nextPrompt,omitempty"`
	Provider    string       `json:"provider"`
}
