package utils

import (
	"context"
	"log"
	"time"

	"natulang/db"
	"natulang/services"

	"go.mongodb.org/mongo-driver/bson"
)

// SeedCourseData populates the catalog collections from the bundled file
// catalog when they are empty, so a fresh database serves the same courses
// as file-backed mode.
func SeedCourseData(data services.CatalogData) {
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := db.CourseCollection.CountDocuments(dbCtx, bson.M{})
	if err != nil || count > 0 {
		return
	}

	for _, course := range data.Courses {
		if _, err := db.CourseCollection.InsertOne(dbCtx, course); err != nil {
			log.Printf("Failed to seed course %s: %v", course.ID, err)
		}
	}
	for _, lesson := range data.Lessons {
		if _, err := db.LessonCollection.InsertOne(dbCtx, lesson); err != nil {
			log.Printf("Failed to seed lesson %s: %v", lesson.ID, err)
		}
	}
	log.Printf("Seeded %d courses and %d lessons", len(data.Courses), len(data.Lessons))
}
