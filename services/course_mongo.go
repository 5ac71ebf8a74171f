package services

import (
	"context"
	"fmt"
	"time"

	"natulang/db"
	"natulang/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalog serves the course catalog from MongoDB. Documents are seeded
// from the bundled file catalog on first start.
type MongoCatalog struct{}

func NewMongoCatalog() *MongoCatalog {
	return &MongoCatalog{}
}

func catalogContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

func (m *MongoCatalog) GetAllCourses() ([]models.Course, error) {
	ctx, cancel := catalogContext()
	defer cancel()

	cursor, err := db.CourseCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("failed to decode courses: %w", err)
	}
	return courses, nil
}

func (m *MongoCatalog) GetCourseByID(courseID string) (*models.Course, error) {
	ctx, cancel := catalogContext()
	defer cancel()

	var course models.Course
	err := db.CourseCollection.FindOne(ctx, bson.M{"id": courseID}).Decode(&course)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch course %s: %w", courseID, err)
	}
	return &course, nil
}

func (m *MongoCatalog) GetLessonsByCourse(courseID string) ([]models.Lesson, error) {
	ctx, cancel := catalogContext()
	defer cancel()

	opts := options.Find().SetSort(bson.M{"order": 1})
	cursor, err := db.LessonCollection.Find(ctx, bson.M{"courseId": courseID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list lessons for course %s: %w", courseID, err)
	}
	lessons := []models.Lesson{}
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, fmt.Errorf("failed to decode lessons: %w", err)
	}
	return lessons, nil
}

func (m *MongoCatalog) GetLessonByID(lessonID string) (*models.Lesson, error) {
	ctx, cancel := catalogContext()
	defer cancel()

	var lesson models.Lesson
	err := db.LessonCollection.FindOne(ctx, bson.M{"id": lessonID}).Decode(&lesson)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lesson %s: %w", lessonID, err)
	}
	return &lesson, nil
}

func (m *MongoCatalog) GetExerciseByID(lessonID, exerciseID string) (*models.Exercise, error) {
	lesson, err := m.GetLessonByID(lessonID)
	if err != nil {
		return nil, err
	}
	for i := range lesson.Exercises {
		if lesson.Exercises[i].ID == exerciseID {
			return &lesson.Exercises[i], nil
		}
	}
	return nil, ErrNotFound
}

func (m *MongoCatalog) GetNextExercise(lessonID, currentExerciseID string) (*models.Exercise, error) {
	lesson, err := m.GetLessonByID(lessonID)
	if err == ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return nextExerciseIn(lesson, currentExerciseID), nil
}
