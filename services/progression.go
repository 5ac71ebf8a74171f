package services

import (
	"fmt"
	"strings"
)

// PassThreshold is the overall score needed to clear an exercise.
const PassThreshold = 70.0

// ProgressionEngine decides what follows a completed attempt: the next
// exercise in the lesson, or lesson completion when there is none.
type ProgressionEngine struct {
	catalog Catalog
	store   *ProgressStore
}

func NewProgressionEngine(catalog Catalog, store *ProgressStore) *ProgressionEngine {
	return &ProgressionEngine{catalog: catalog, store: store}
}

// deriveCourseID recovers the owning course from a lesson id following the
// "<courseId>-lesson-<n>" convention. Ids outside the convention land in
// the empty-string course partition; callers that know the real course id
// should pass it explicitly instead of relying on this split.
func deriveCourseID(lessonID string) string {
	if strings.Contains(lessonID, "lesson") {
		return strings.Split(lessonID, "-lesson-")[0]
	}
	return ""
}

// Advance returns the id of the exercise following exerciseID after a
// passed attempt. When the passed exercise was the lesson's last, the
// lesson is marked complete (idempotently) and no next id is returned.
// Failed attempts have no progression side effect.
func (e *ProgressionEngine) Advance(userID, courseID, lessonID, exerciseID string, passed bool) (nextExerciseID string, lessonCompleted bool, err error) {
	if !passed {
		return "", false, nil
	}

	next, err := e.catalog.GetNextExercise(lessonID, exerciseID)
	if err != nil {
		return "", false, fmt.Errorf("next exercise lookup for lesson %s: %w", lessonID, err)
	}
	if next != nil {
		return next.ID, false, nil
	}

	if courseID == "" {
		courseID = deriveCourseID(lessonID)
	}
	e.store.MarkLessonComplete(userID, courseID, lessonID)
	return "", true, nil
}
