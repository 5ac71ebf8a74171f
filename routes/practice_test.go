package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"natulang/models"
	"natulang/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoTranscriber returns the transcript baked in at construction,
// standing in for the speech provider.
type echoTranscriber struct {
	text string
}

func (e echoTranscriber) Transcribe(_ context.Context, audio []byte, _, _ string) (models.TranscriptResponse, error) {
	if len(audio) == 0 {
		return models.TranscriptResponse{Provider: "empty"}, nil
	}
	return models.TranscriptResponse{Text: e.text, Confidence: 0.9, Provider: "test"}, nil
}

type memoryCatalog struct {
	lesson models.Lesson
}

func (m memoryCatalog) GetAllCourses() ([]models.Course, error)            { return nil, nil }
func (m memoryCatalog) GetCourseByID(string) (*models.Course, error)       { return nil, services.ErrNotFound }
func (m memoryCatalog) GetLessonsByCourse(string) ([]models.Lesson, error) { return nil, nil }

func (m memoryCatalog) GetLessonByID(lessonID string) (*models.Lesson, error) {
	if lessonID == m.lesson.ID {
		lesson := m.lesson
		return &lesson, nil
	}
	return nil, services.ErrNotFound
}

func (m memoryCatalog) GetExerciseByID(lessonID, exerciseID string) (*models.Exercise, error) {
	return nil, services.ErrNotFound
}

func (m memoryCatalog) GetNextExercise(lessonID, currentExerciseID string) (*models.Exercise, error) {
	if lessonID != m.lesson.ID {
		return nil, nil
	}
	for i := range m.lesson.Exercises {
		if m.lesson.Exercises[i].ID == currentExerciseID && i+1 < len(m.lesson.Exercises) {
			return &m.lesson.Exercises[i+1], nil
		}
	}
	return nil, nil
}

func newPracticeRouter(transcript string) (*gin.Engine, *services.ProgressStore) {
	gin.SetMode(gin.TestMode)

	catalog := memoryCatalog{lesson: models.Lesson{
		ID:       "french-basics-lesson-1",
		CourseID: "french-basics",
		Exercises: []models.Exercise{
			{ID: "fb1-ex1"},
			{ID: "fb1-ex2"},
		},
	}}
	store := services.NewProgressStore()
	judge := services.NewPronunciationJudge()
	engine := services.NewProgressionEngine(catalog, store)
	orchestrator := services.NewPracticeOrchestrator(judge, engine, store)

	router := gin.New()
	SetupPracticeRoutes(router, orchestrator, echoTranscriber{text: transcript})
	SetupProgressRoutes(router, store)
	return router, store
}

func practiceForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "speech.wav")
	require.NoError(t, err)
	_, err = part.Write([]byte("RIFF fake audio"))
	require.NoError(t, err)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestPracticeEndpoint(t *testing.T) {
	router, store := newPracticeRouter("bonjour comment allez vous")

	body, contentType := practiceForm(t, map[string]string{
		"lessonId":     "french-basics-lesson-1",
		"exerciseId":   "fb1-ex1",
		"expectedText": "bonjour comment allez vous",
		"userId":       "alice",
		"languageCode": "fr",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/practice", body)
	req.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response models.PracticeResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	assert.True(t, response.IsCorrect)
	assert.Equal(t, "bonjour comment allez vous", response.TranscribedText)
	assert.Equal(t, 94.0, response.PronunciationScore.Overall)
	assert.Equal(t, "fb1-ex2", response.NextExerciseID)
	assert.Equal(t, "🎉 Perfect! Excellent pronunciation!", response.Encouragement)

	assert.Equal(t, 94.0, store.Snapshot("alice", "").AverageScore)
}

func TestPracticeEndpointRequiresFile(t *testing.T) {
	router, _ := newPracticeRouter("bonjour")

	req := httptest.NewRequest(http.MethodPost, "/api/practice", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestProgressEndpoint(t *testing.T) {
	router, store := newPracticeRouter("bonjour")
	store.MarkLessonComplete("alice", "french-basics", "french-basics-lesson-1")

	req := httptest.NewRequest(http.MethodGet, "/api/progress/alice/course/french-basics", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var progress models.UserProgress
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &progress))
	assert.Equal(t, []string{"french-basics-lesson-1"}, progress.CompletedLessons)
}
