package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const catalogFixture = `{
  "courses": [
    {"id": "french-basics", "title": "French Basics", "targetLanguage": "fr", "difficulty": "beginner", "lessonsCount": 2},
    {"id": "spanish-basics", "title": "Spanish Basics", "targetLanguage": "es", "difficulty": "beginner", "lessonsCount": 1}
  ],
  "lessons": [
    {"id": "french-basics-lesson-2", "courseId": "french-basics", "order": 2, "exercises": [{"id": "fb2-ex1"}]},
    {"id": "french-basics-lesson-1", "courseId": "french-basics", "order": 1, "exercises": [{"id": "fb1-ex1"}, {"id": "fb1-ex2"}]},
    {"id": "spanish-basics-lesson-1", "courseId": "spanish-basics", "order": 1, "exercises": [{"id": "sb1-ex1"}]}
  ]
}`

func loadTestCatalog(t *testing.T) *FileCatalog {
	t.Helper()
	path := filepath.Join(t.TempDir(), "courses.json")
	if err := os.WriteFile(path, []byte(catalogFixture), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	catalog, err := NewFileCatalog(path)
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}
	return catalog
}

func TestFileCatalogCourses(t *testing.T) {
	catalog := loadTestCatalog(t)

	courses, err := catalog.GetAllCourses()
	if err != nil || len(courses) != 2 {
		t.Fatalf("Expected 2 courses, got %d (err=%v)", len(courses), err)
	}

	course, err := catalog.GetCourseByID("french-basics")
	if err != nil || course.Title != "French Basics" {
		t.Errorf("Unexpected course lookup result: %+v, %v", course, err)
	}

	if _, err := catalog.GetCourseByID("german-basics"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown course, got %v", err)
	}
}

func TestFileCatalogLessonsSortedByOrder(t *testing.T) {
	catalog := loadTestCatalog(t)

	lessons, err := catalog.GetLessonsByCourse("french-basics")
	if err != nil || len(lessons) != 2 {
		t.Fatalf("Expected 2 lessons, got %d (err=%v)", len(lessons), err)
	}
	if lessons[0].ID != "french-basics-lesson-1" || lessons[1].ID != "french-basics-lesson-2" {
		t.Errorf("Lessons not sorted by order: %s, %s", lessons[0].ID, lessons[1].ID)
	}
}

func TestFileCatalogNextExercise(t *testing.T) {
	catalog := loadTestCatalog(t)

	next, err := catalog.GetNextExercise("french-basics-lesson-1", "fb1-ex1")
	if err != nil || next == nil || next.ID != "fb1-ex2" {
		t.Errorf("Expected fb1-ex2, got %+v (err=%v)", next, err)
	}

	// Last exercise: no next, no error.
	next, err = catalog.GetNextExercise("french-basics-lesson-1", "fb1-ex2")
	if err != nil || next != nil {
		t.Errorf("Expected no next exercise, got %+v (err=%v)", next, err)
	}

	// Unknown lesson behaves like "no next exercise".
	next, err = catalog.GetNextExercise("nope-lesson-9", "fb1-ex1")
	if err != nil || next != nil {
		t.Errorf("Expected nil for unknown lesson, got %+v (err=%v)", next, err)
	}
}

func TestFileCatalogExerciseLookup(t *testing.T) {
	catalog := loadTestCatalog(t)

	exercise, err := catalog.GetExerciseByID("french-basics-lesson-1", "fb1-ex2")
	if err != nil || exercise.ID != "fb1-ex2" {
		t.Errorf("Unexpected exercise lookup: %+v, %v", exercise, err)
	}

	if _, err := catalog.GetExerciseByID("french-basics-lesson-1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown exercise, got %v", err)
	}
}

func TestNewFileCatalogMissingFile(t *testing.T) {
	if _, err := NewFileCatalog(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing catalog file")
	}
}
