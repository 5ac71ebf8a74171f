package services

import (
	"context"
	"encoding/base64"
	"io"
	"log"
	"strings"

	openai "github.com/openai/openai-go"

	"natulang/models"
)

// Per-language default voices for synthesized speech.
var voiceMap = map[string]openai.AudioSpeechNewParamsVoice{
	"fr": openai.AudioSpeechNewParamsVoiceAlloy,
	"es": openai.AudioSpeechNewParamsVoiceNova,
	"de": openai.AudioSpeechNewParamsVoiceOnyx,
	"en": openai.AudioSpeechNewParamsVoiceEcho,
}

const defaultVoice = openai.AudioSpeechNewParamsVoiceAlloy

// Synthesize renders text to mp3 audio, base64 encoded. Provider failures
// degrade to an empty stub response for that single call.
func Synthesize(ctx context.Context, text, voice, language, provider string) models.TTSResponse {
	chosen := provider
	if chosen == "" {
		if openaiClient != nil {
			chosen = "openai-tts"
		} else {
			chosen = "stub"
		}
	}

	if openaiClient != nil && strings.HasPrefix(chosen, "openai") {
		resp, err := openaiClient.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
			Model:          openai.SpeechModelTTS1,
			Voice:          selectVoice(voice, language),
			Input:          text,
			ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
		})
		if err != nil {
			log.Printf("TTS synthesis failed, using stub audio: %v", err)
		} else {
			defer resp.Body.Close()
			audio, readErr := io.ReadAll(resp.Body)
			if readErr != nil {
				log.Printf("Failed to read TTS audio: %v", readErr)
			} else {
				// Duration estimate at ~150 spoken words per minute.
				words := len(strings.Fields(text))
				return models.TTSResponse{
					AudioBase64: base64.StdEncoding.EncodeToString(audio),
					Format:      "mp3",
					DurationMs:  words * 60 * 1000 / 150,
					Provider:    "openai",
				}
			}
		}
	}

	return models.TTSResponse{Format: "mp3", Provider: "stub"}
}

func selectVoice(voice, language string) openai.AudioSpeechNewParamsVoice {
	if voice != "" {
		return openai.AudioSpeechNewParamsVoice(voice)
	}
	lang := strings.ToLower(language)
	if len(lang) > 2 {
		lang = lang[:2]
	}
	if v, ok := voiceMap[lang]; ok {
		return v
	}
	return defaultVoice
}
