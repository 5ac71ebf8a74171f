package routes

import (
	"io"
	"net/http"

	"natulang/models"
	"natulang/services"

	"github.com/gin-gonic/gin"
)

// SetupSpeechRoutes registers the raw speech-to-text and text-to-speech
// endpoints.
func SetupSpeechRoutes(router *gin.Engine, transcriber services.Transcriber) {
	router.POST("/stt", func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Audio file is required"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open audio file"})
			return
		}
		defer file.Close()

		audio, err := io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read audio file"})
			return
		}

		languageCode := c.DefaultPostForm("languageCode", "en")
		transcript, err := transcriber.Transcribe(c.Request.Context(), audio, fileHeader.Filename, languageCode)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "STT error: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, transcript)
	})

	router.POST("/api/tts", func(c *gin.Context) {
		var req models.TTSRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, services.Synthesize(c.Request.Context(), req.Text, req.Voice, req.LanguageCode, req.Provider))
	})
}
