package utils

import (
	"fmt"
	"log"
	"time"

	"lexify/database"
	"lexify/models"
	goalModels "lexify/models/goal"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[REMINDER-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// expireDailyWords deactivates daily words past their 24h window
func expireDailyWords() {
	db := database.Database.Db

	result := db.Model(&models.DailyWord{}).
		Where("is_active = ? AND expires_at <= ?", true, time.Now()).
		Update("is_active", false)
	if result.Error != nil {
		logScheduler("Error expiring daily words: " + result.Error.Error())
		return
	}

	if result.RowsAffected > 0 {
		logScheduler(fmt.Sprintf("Deactivated %d expired daily words", result.RowsAffected))
	}
}

// remindLaggingParticipants nudges participants of active goals who have not
// completed the current day's quiz yet
func remindLaggingParticipants() {
	db := database.Database.Db

	var goals []goalModels.SharedLearningGoal
	if err := db.Where("status = ?", goalModels.StatusActive).Find(&goals).Error; err != nil {
		logScheduler("Error fetching active goals: " + err.Error())
		return
	}

	for i := range goals {
		g := &goals[i]

		day := g.CurrentDay()
		if day < 1 || day > g.Duration {
			continue
		}

		dayProgress := goalModels.DayProgressFor(g.Progress.Data(), day)
		if dayProgress == nil {
			continue
		}

		if !dayProgress.CreatorCompletion.Completed {
			sendDailyReminder(g, g.CreatorID, g.PartnerID, day)
		}
		if !dayProgress.PartnerCompletion.Completed {
			sendDailyReminder(g, g.PartnerID, g.CreatorID, day)
		}
	}
}

func sendDailyReminder(g *goalModels.SharedLearningGoal, recipientID, senderID uint, day int) {
	db := database.Database.Db

	// At most one reminder per participant per goal per day
	since := time.Now().UTC().Truncate(24 * time.Hour)
	var existing models.Notification
	err := db.Where(
		"recipient_id = ? AND type = ? AND learning_goal_id = ? AND created_at >= ?",
		recipientID, models.NotificationDailyReminder, g.ID, since,
	).First(&existing).Error
	if err == nil {
		return
	}

	notification := models.Notification{
		RecipientID:    recipientID,
		SenderID:       senderID,
		Type:           models.NotificationDailyReminder,
		Title:          "Daily Quiz Reminder",
		Message:        fmt.Sprintf("Day %d of your learning goal is waiting. Keep your streak going!", day),
		LearningGoalID: &g.ID,
	}
	if err := db.Create(&notification).Error; err != nil {
		logScheduler("Error creating daily reminder: " + err.Error())
	}
}

// StartReminderScheduler runs the background jobs: expiring daily words every
// 10 minutes and goal reminders once a day.
func StartReminderScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("@every 10m", expireDailyWords); err != nil {
		log.Fatalf("Failed to schedule daily word expiry: %v", err)
	}

	if _, err := c.AddFunc("0 18 * * *", remindLaggingParticipants); err != nil {
		log.Fatalf("Failed to schedule goal reminders: %v", err)
	}

	c.Start()
	logScheduler("Reminder scheduler started")
	return c
}
