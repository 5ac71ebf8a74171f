package routes

import (
	"errors"
	"net/http"

	"natulang/services"

	"github.com/gin-gonic/gin"
)

// SetupCourseRoutes registers the read-only catalog endpoints.
func SetupCourseRoutes(router *gin.Engine, catalog services.Catalog) {
	router.GET("/api/courses", func(c *gin.Context) {
		courses, err := catalog.GetAllCourses()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list courses"})
			return
		}
		c.JSON(http.StatusOK, courses)
	})

	router.GET("/api/courses/:courseId", func(c *gin.Context) {
		course, err := catalog.GetCourseByID(c.Param("courseId"))
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch course"})
			return
		}
		c.JSON(http.StatusOK, course)
	})

	router.GET("/api/courses/:courseId/lessons", func(c *gin.Context) {
		lessons, err := catalog.GetLessonsByCourse(c.Param("courseId"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list lessons"})
			return
		}
		c.JSON(http.StatusOK, lessons)
	})

	router.GET("/api/lessons/:lessonId", func(c *gin.Context) {
		lesson, err := catalog.GetLessonByID(c.Param("lessonId"))
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch lesson"})
			return
		}
		c.JSON(http.StatusOK, lesson)
	})
}
