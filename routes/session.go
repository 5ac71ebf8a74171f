package routes

import (
	"net/http"

	"natulang/models"
	"natulang/services"

	"github.com/gin-gonic/gin"
)

// SetupSessionRoutes registers session allocation and the conversational
// tutor endpoint.
func SetupSessionRoutes(router *gin.Engine, sessions *services.SessionStore) {
	router.POST("/api/session", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SessionCreateResponse{
			SessionID: sessions.CreateSession(),
			Created:   true,
		})
	})

	router.POST("/api/chat", func(c *gin.Context) {
		var req models.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
			return
		}

		history := sessions.History(req.SessionID)
		reply := services.GenerateTutorReply(c.Request.Context(), req.Transcript, req.TargetLanguage, req.Proficiency, history)

		if req.SessionID != "" {
			sessions.AppendExchange(req.SessionID, models.ChatExchange{
				User: req.Transcript,
				AI:   reply.Reply,
			})
		}
		c.JSON(http.StatusOK, reply)
	})
}
