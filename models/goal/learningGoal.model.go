package goal

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Goal statuses. pending -> active|cancelled, active -> completed;
// cancelled and completed are terminal.
const (
	StatusPending   = "pending"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Duration bounds in days
const (
	MinDuration = 3
	MaxDuration = 30
)

// QuestionsPerQuiz is the fixed size of every daily quiz.
const QuestionsPerQuiz = 5

// QuizQuestion is one multiple-choice question. The question text is in the
// learner's native language, all four options in the language being learned.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Difficulty    string   `json:"difficulty"`
	Concept       string   `json:"concept"`
}

// Completion is one participant's scored submission for a single day.
// Once Completed flips to true the record is immutable.
type Completion struct {
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Score       *int       `json:"score,omitempty"`
	Answers     []int      `json:"answers,omitempty"`
}

// DayProgress holds both participants' quizzes and completions for one day.
type DayProgress struct {
	Day               int            `json:"day"`
	CreatorQuiz       []QuizQuestion `json:"creatorQuiz"`
	PartnerQuiz       []QuizQuestion `json:"partnerQuiz"`
	CreatorCompletion Completion     `json:"creatorCompletion"`
	PartnerCompletion Completion     `json:"partnerCompletion"`
}

// SharedLearningGoal is a learning goal shared between two friends. Both
// follow the same schedule but receive quizzes in their respective learning
// languages. Progress is materialized in full when the partner accepts.
type SharedLearningGoal struct {
	gorm.Model
	CreatorID uint `json:"creatorId" gorm:"index;not null"`
	PartnerID uint `json:"partnerId" gorm:"index;not null"`

	Duration int    `json:"duration" gorm:"not null"`
	Status   string `json:"status" gorm:"default:'pending';index"`

	// Set exactly once, when the partner accepts
	StartedAt *time.Time `json:"startedAt"`
	EndDate   *time.Time `json:"endDate"`

	Progress datatypes.JSONType[[]DayProgress] `json:"progress"`

	// Language snapshots taken at acceptance; refreshed lazily when a quiz
	// fetch detects that a participant changed languages.
	CreatorLanguage       string `json:"creatorLanguage"`
	PartnerLanguage       string `json:"partnerLanguage"`
	CreatorNativeLanguage string `json:"creatorNativeLanguage" gorm:"default:'English'"`
	PartnerNativeLanguage string `json:"partnerNativeLanguage" gorm:"default:'English'"`

	// Bumped on every progress mutation; conditional updates on
	// (id, version) reject concurrent double-submission.
	Version uint `json:"-" gorm:"default:0"`
}

// IsDayUnlocked reports whether the given day's quiz is available. Day 1
// unlocks at acceptance, day n unlocks n-1 full days later. Purely a
// function of wall-clock time, nothing is persisted.
func (g *SharedLearningGoal) IsDayUnlocked(day int) bool {
	if g.StartedAt == nil {
		return false
	}
	daysSinceStart := int(time.Since(*g.StartedAt).Hours() / 24)
	return day <= daysSinceStart+1
}

// CurrentDay returns the day number the goal is on, capped at Duration.
// Returns 0 before the goal starts.
func (g *SharedLearningGoal) CurrentDay() int {
	if g.StartedAt == nil {
		return 0
	}
	day := int(time.Since(*g.StartedAt).Hours()/24) + 1
	if day > g.Duration {
		return g.Duration
	}
	return day
}

// IsExpired reports whether the goal ran past its end date.
func (g *SharedLearningGoal) IsExpired() bool {
	return g.EndDate != nil && time.Now().After(*g.EndDate)
}

// DayProgressFor returns a pointer into the decoded progress slice for the
// given day, or nil if absent. Mutations must be written back with
// datatypes.NewJSONType and a conditional update.
func DayProgressFor(progress []DayProgress, day int) *DayProgress {
	for i := range progress {
		if progress[i].Day == day {
			return &progress[i]
		}
	}
	return nil
}
