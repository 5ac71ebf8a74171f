package models

// PronunciationScore grades one spoken attempt. Each component is on a
// 0-100 scale, rounded to one decimal.
type PronunciationScore struct {
	Accuracy     float64 `json:"accuracy"`
	Fluency      float64 `json:"fluency"`
	Completeness float64 `json:"completeness"`
	Overall      float64 `json:"overall"`
	Feedback     string  `json:"feedback"`
}

// PracticeAttempt is one submission of a spoken phrase against one
// exercise. It is consumed by the orchestrator and never stored.
type PracticeAttempt struct {
	LessonID        string
	ExerciseID      string
	CourseID        string // optional, derived from LessonID when empty
	ExpectedText    string
	TranscribedText string
	UserID          string
	Language        string
}

// PracticeResponse is the evaluation returned for one attempt.
type PracticeResponse struct {
	TranscribedText    string             `json:"transcribedText"`
	ExpectedText       string             `json:"expectedText"`
	PronunciationScore PronunciationScore `json:"pronunciationScore"`
	IsCorrect          bool               `json:"isCorrect"`
	Encouragement      string             `json:"encouragement"`
	NextExerciseID     string             `json:"nextExerciseId,omitempty"`
}

// TranscriptResponse is the speech-to-text result.
type TranscriptResponse struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Provider   string  `json:"provider"`
}

// TTSRequest asks for synthesized speech.
type TTSRequest struct {
	Text         string `json:"text" binding:"required"`
	LanguageCode string `json:"languageCode"`
	Voice        string `json:"voice"`
	Provider     string `json:"provider"`
}

// TTSResponse carries the synthesized audio, base64 encoded.
type TTSResponse struct {
	AudioBase64 string `json:"audioBase64"`
	Format      string `json:"format"`
	DurationMs  int    `json:"durationMs"`
	Provider    string `json:"provider"`
}
