package models

// DifficultyLevel classifies a course for learners browsing the catalog.
type DifficultyLevel string

const (
	DifficultyBeginner     DifficultyLevel = "beginner"
	DifficultyIntermediate DifficultyLevel = "intermediate"
	DifficultyAdvanced     DifficultyLevel = "advanced"
)

// Phrase is the target-language sentence behind an exercise.
type Phrase struct {
	ID       string `json:"id" bson:"id"`
	English  string `json:"english" bson:"english"`
	Target   string `json:"target" bson:"target"`
	AudioURL string `json:"audioUrl,omitempty" bson:"audioUrl,omitempty"`
	Phonetic string `json:"phonetic,omitempty" bson:"phonetic,omitempty"`
}

// Exercise is a single practice task. Type is "listen_repeat",
// "translate" or "conversation".
type Exercise struct {
	ID     string   `json:"id" bson:"id"`
	Type   string   `json:"type" bson:"type"`
	Phrase Phrase   `json:"phrase" bson:"phrase"`
	Hints  []string `json:"hints" bson:"hints"`
}

// Lesson groups an ordered run of exercises inside a course.
type Lesson struct {
	ID               string     `json:"id" bson:"id"`
	Title            string     `json:"title" bson:"title"`
	Description      string     `json:"description" bson:"description"`
	CourseID         string     `json:"courseId" bson:"courseId"`
	Exercises        []Exercise `json:"exercises" bson:"exercises"`
	Order            int        `json:"order" bson:"order"`
	EstimatedMinutes int        `json:"estimatedMinutes" bson:"estimatedMinutes"`
}

// Course is the top-level catalog entry.
type Course struct {
	ID             string          `json:"id" bson:"id"`
	Title          string          `json:"title" bson:"title"`
	Description    string          `json:"description" bson:"description"`
	TargetLanguage string          `json:"targetLanguage" bson:"targetLanguage"`
	Difficulty     DifficultyLevel `json:"difficulty" bson:"difficulty"`
	TopicCategory  string          `json:"topicCategory" bson:"topicCategory"`
	LessonsCount   int             `json:"lessonsCount" bson:"lessonsCount"`
	ImageURL       string          `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
}
