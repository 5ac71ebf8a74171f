package routes

import (
	"net/http"

	"natulang/services"

	"github.com/gin-gonic/gin"
)

// SetupProgressRoutes registers the progress query endpoints.
func SetupProgressRoutes(router *gin.Engine, store *services.ProgressStore) {
	router.GET("/api/progress/:userId", func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Snapshot(c.Param("userId"), ""))
	})

	router.GET("/api/progress/:userId/course/:courseId", func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Snapshot(c.Param("userId"), c.Param("courseId")))
	})
}
