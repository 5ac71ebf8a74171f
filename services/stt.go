package services

import (
	"bytes"
	"context"
	"log"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"natulang/models"
)

var openaiClient *openai.Client

// InitSpeechServices constructs the shared OpenAI client used for speech
// recognition and synthesis. Without a key both run in stub mode.
func InitSpeechServices(apiKey string) {
	if apiKey == "" {
		log.Println("OpenAI key not configured, speech services run in stub mode")
		return
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	openaiClient = &client
}

// Transcriber converts captured audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename, language string) (models.TranscriptResponse, error)
}

// SpeechTranscriber transcribes with Whisper when the OpenAI client is
// available and degrades to a stub transcript otherwise. A provider failure
// degrades exactly one call and is never retried.
type SpeechTranscriber struct{}

func NewSpeechTranscriber() *SpeechTranscriber {
	return &SpeechTranscriber{}
}

func (t *SpeechTranscriber) Transcribe(ctx context.Context, audio []byte, filename, language string) (models.TranscriptResponse, error) {
	if len(audio) == 0 {
		return models.TranscriptResponse{Provider: "empty"}, nil
	}
	if openaiClient == nil {
		return stubTranscript(), nil
	}

	if filename == "" {
		filename = "speech.wav"
	}
	params := openai.AudioTranscriptionNewParams{
		Model: openai.AudioModelWhisper1,
		File:  openai.File(bytes.NewReader(audio), filename, "application/octet-stream"),
	}
	// Let Whisper auto-detect English.
	if language != "" && language != "en" {
		params.Language = openai.String(language)
	}

	transcription, err := openaiClient.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		log.Printf("Whisper transcription failed, using stub transcript: %v", err)
		return stubTranscript(), nil
	}

	// Whisper reports no confidence value; assume a strong signal.
	return models.TranscriptResponse{
		Text:       transcription.Text,
		Confidence: 0.9,
		Provider:   "openai-whisper",
	}, nil
}

func stubTranscript() models.TranscriptResponse {
	return models.TranscriptResponse{Text: "(stub transcript)", Provider: "stub"}
}
