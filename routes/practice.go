package routes

import (
	"io"
	"log"
	"net/http"

	"natulang/models"
	"natulang/services"

	"github.com/gin-gonic/gin"
)

// SetupPracticeRoutes registers the practice evaluation endpoint.
func SetupPracticeRoutes(router *gin.Engine, orchestrator *services.PracticeOrchestrator, transcriber services.Transcriber) {
	router.POST("/api/practice", func(c *gin.Context) {
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

		userID := c.DefaultPostForm("userId", "default-user")
		languageCode := c.DefaultPostForm("languageCode", "fr")

		transcript, err := transcriber.Transcribe(c.Request.Context(), audio, fileHeader.Filename, languageCode)
		if err != nil {
			log.Printf("Transcription failed for user %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Practice error: " + err.Error()})
			return
		}

		attempt := models.PracticeAttempt{
			LessonID:        c.PostForm("lessonId"),
			ExerciseID:      c.PostForm("exerciseId"),
			CourseID:        c.PostForm("courseId"),
			ExpectedText:    c.PostForm("expectedText"),
			TranscribedText: transcript.Text,
			UserID:          userID,
			Language:        languageCode,
		}

		response, err := orchestrator.EvaluatePractice(c.Request.Context(), attempt)
		if err != nil {
			log.Printf("Practice evaluation failed for user %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Practice error: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, response)
	})
}
