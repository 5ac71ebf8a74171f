package models

// UserProgress tracks a learner's standing, either overall (courseId
// empty) or within a single course. Records live for the process
// lifetime and are mutated in place, never replaced.
type UserProgress struct {
	UserID            string   `json:"userId"`
	CourseID          string   `json:"courseId"`
	CompletedLessons  []string `json:"completedLessons"`
	CurrentLessonID   string   `json:"currentLessonId,omitempty"`
	AverageScore      float64  `json:"averageScore"`
	TotalPracticeTime int      `json:"totalPracticeTime"`
}
