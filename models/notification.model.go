package models

import "gorm.io/gorm"

// Notification types
const (
	NotificationGoalInvite    = "goal_invite"    // Someone invited you to a learning goal
	NotificationQuizCompleted = "quiz_completed" // Your partner completed today's quiz
	NotificationDailyReminder = "daily_reminder" // Reminder to complete today's quiz
	NotificationGoalAccepted  = "goal_accepted"  // Your goal invitation was accepted
	NotificationGoalCompleted = "goal_completed" // A shared goal was completed
)

type Notification struct {
	gorm.Model
	RecipientID uint   `json:"recipientId" gorm:"index;not null"`
	SenderID    uint   `json:"senderId" gorm:"index"`
	Type        string `json:"type" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	Message     string `json:"message" gorm:"not null"`

	// Kept even after the referenced goal is hard-deleted; the reference is
	// allowed to dangle.
	LearningGoalID *uint `json:"learningGoalId" gorm:"index"`

	Read bool `json:"read" gorm:"default:false;index"`
}
