package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"natulang/models"
)

// ErrNotFound signals a missing catalog entry. Handlers translate it to 404.
var ErrNotFound = errors.New("not found")

// Catalog is the read-only course/lesson/exercise source.
type Catalog interface {
	GetAllCourses() ([]models.Course, error)
	GetCourseByID(courseID string) (*models.Course, error)
	GetLessonsByCourse(courseID string) ([]models.Lesson, error)
	GetLessonByID(lessonID string) (*models.Lesson, error)
	GetExerciseByID(lessonID, exerciseID string) (*models.Exercise, error)
	// GetNextExercise returns the exercise following currentExerciseID in
	// the lesson's order, or nil when it was the last one.
	GetNextExercise(lessonID, currentExerciseID string) (*models.Exercise, error)
}

// CatalogData mirrors the layout of data/courses.json.
type CatalogData struct {
	Courses []models.Course `json:"courses"`
	Lessons []models.Lesson `json:"lessons"`
}

// FileCatalog serves the catalog from a JSON file loaded once at startup.
type FileCatalog struct {
	data CatalogData
}

// NewFileCatalog loads and caches the catalog file.
func NewFileCatalog(path string) (*FileCatalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	var data CatalogData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	return &FileCatalog{data: data}, nil
}

// Data exposes the loaded catalog, used for seeding MongoDB.
func (f *FileCatalog) Data() CatalogData {
	return f.data
}

func (f *FileCatalog) GetAllCourses() ([]models.Course, error) {
	return f.data.Courses, nil
}

func (f *FileCatalog) GetCourseByID(courseID string) (*models.Course, error) {
	for i := range f.data.Courses {
		if f.data.Courses[i].ID == courseID {
			return &f.data.Courses[i], nil
		}
	}
	return nil, ErrNotFound
}

func (f *FileCatalog) GetLessonsByCourse(courseID string) ([]models.Lesson, error) {
	lessons := []models.Lesson{}
	for _, l := range f.data.Lessons {
		if l.CourseID == courseID {
			lessons = append(lessons, l)
		}
	}
	sort.Slice(lessons, func(i, j int) bool { return lessons[i].Order < lessons[j].Order })
	return lessons, nil
}

func (f *FileCatalog) GetLessonByID(lessonID string) (*models.Lesson, error) {
	for i := range f.data.Lessons {
		if f.data.Lessons[i].ID == lessonID {
			return &f.data.Lessons[i], nil
		}
	}
	return nil, ErrNotFound
}

func (f *FileCatalog) GetExerciseByID(lessonID, exerciseID string) (*models.Exercise, error) {
	lesson, err := f.GetLessonByID(lessonID)
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

func (f *FileCatalog) GetNextExercise(lessonID, currentExerciseID string) (*models.Exercise, error) {
	lesson, err := f.GetLessonByID(lessonID)
	if err != nil {
		// Unknown lessons yield no next exercise rather than an error,
		// matching the lookup contract used by progression.
		return nil, nil
	}
	return nextExerciseIn(lesson, currentExerciseID), nil
}

// nextExerciseIn scans the lesson's ordered exercises for the one following
// currentExerciseID. Shared by the file and Mongo catalogs.
func nextExerciseIn(lesson *models.Lesson, currentExerciseID string) *models.Exercise {
	for i := range lesson.Exercises {
		if lesson.Exercises[i].ID == currentExerciseID {
			if i+1 < len(lesson.Exercises) {
				return &lesson.Exercises[i+1]
			}
			return nil
		}
	}
	return nil
}
