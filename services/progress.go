package services

import (
	"sync"

	"natulang/models"
)

// ProgressStore holds every learner's progress for the lifetime of the
// process. All access runs under one mutex so concurrent attempts for the
// same user cannot lose updates between read and write.
type ProgressStore struct {
	mu       sync.Mutex
	progress map[string]*models.UserProgress
}

var (
	progressStore     *ProgressStore
	progressStoreOnce sync.Once
)

// GetProgressStore returns the process-wide store.
func GetProgressStore() *ProgressStore {
	progressStoreOnce.Do(func() {
		progressStore = NewProgressStore()
	})
	return progressStore
}

// NewProgressStore builds an isolated store so tests don't share state with
// the server singleton.
func NewProgressStore() *ProgressStore {
	return &ProgressStore{progress: make(map[string]*models.UserProgress)}
}

func progressKey(userID, courseID string) string {
	if courseID == "" {
		return userID
	}
	return userID + ":" + courseID
}

// getOrCreate lazily default-constructs a record. Caller holds the lock.
func (s *ProgressStore) getOrCreate(userID, courseID string) *models.UserProgress {
	key := progressKey(userID, courseID)
	p, ok := s.progress[key]
	if !ok {
		p = &models.UserProgress{
			UserID:           userID,
			CourseID:         courseID,
			CompletedLessons: []string{},
		}
		s.progress[key] = p
	}
	return p
}

// Snapshot returns a copy of the user's progress record, creating it lazily.
// Callers get a detached value and never touch shared state.
func (s *ProgressStore) Snapshot(userID, courseID string) models.UserProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.getOrCreate(userID, courseID)
	out := *p
	out.CompletedLessons = append([]string{}, p.CompletedLessons...)
	return out
}

// RecordAttempt folds one attempt's overall score into the user's rolling
// average, against the course-less record. The divisor is the completed
// lesson count floored at one, not an attempt count: the average moves on
// every attempt, passed or failed, but the denominator only grows when a
// lesson completes. Non-obvious, but it is the published metric.
func (s *ProgressStore) RecordAttempt(userID string, overall float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.getOrCreate(userID, "")
	n := len(p.CompletedLessons)
	if n < 1 {
		n = 1
	}
	p.AverageScore = (p.AverageScore*float64(n-1) + overall) / float64(n)
}

// MarkLessonComplete appends lessonID to the record's completed list at
// most once.
func (s *ProgressStore) MarkLessonComplete(userID, courseID, lessonID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.getOrCreate(userID, courseID)
	for _, id := range p.CompletedLessons {
		if id == lessonID {
			return
		}
	}
	p.CompletedLessons = append(p.CompletedLessons, lessonID)
}

// AddPracticeTime accumulates minutes spent practicing.
func (s *ProgressStore) AddPracticeTime(userID string, minutes int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.getOrCreate(userID, "")
	p.TotalPracticeTime += minutes
}
