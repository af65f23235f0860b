package statusController

import (
	"log"
	"time"

	"lexify/database"
	"lexify/middleware"
	"lexify/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// UpdateStreakForUser advances the user's posting streak for a post made at
// `now`. Calendar days are compared in UTC: a second post on the same day
// leaves the streak unchanged, a post on the next day increments it, and any
// longer gap resets it to 1.
func UpdateStreakForUser(userID uint, now time.Time) error {
	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return err
	}

	today := now.UTC().Truncate(24 * time.Hour)

	if user.LastStreakDate == nil {
		user.StreakCount = 1
	} else {
		last := user.LastStreakDate.UTC().Truncate(24 * time.Hour)
		switch {
		case last.Equal(today):
			return nil
		case last.Add(24 * time.Hour).Equal(today):
			user.StreakCount++
		default:
			user.StreakCount = 1
		}
	}

	user.LastStreakDate = &today
	return db.Save(&user).Error
}

// isFriendOf reports whether otherID is in userID's friend list
func isFriendOf(userID, otherID uint) (bool, error) {
	db := database.Database.Db

	var user models.User
	if err := db.Preload("Friends").First(&user, userID).Error; err != nil {
		return false, err
	}
	for _, f := range user.Friends {
		if f.ID == otherID {
			return true, nil
		}
	}
	return false, nil
}

// canViewWord applies visibility rules: owners always see their own word,
// public words are open to everyone, friends-only words require friendship.
func canViewWord(word *models.DailyWord, viewerID uint) (bool, error) {
	if word.UserID == viewerID {
		return true, nil
	}
	switch word.Visibility {
	case models.VisibilityPublic:
		return true, nil
	case models.VisibilityFriends, models.VisibilityClose:
		return isFriendOf(word.UserID, viewerID)
	default:
		return false, nil
	}
}

type dailyWordResponse struct {
	models.DailyWord
	Author      models.UserSummary `json:"author"`
	ViewerCount int                `json:"viewerCount"`
	ReplyCount  int                `json:"replyCount"`
	HasViewed   bool               `json:"hasViewed"`
}

func buildDailyWordResponse(word *models.DailyWord, viewerID uint) (*dailyWordResponse, error) {
	db := database.Database.Db

	var author models.User
	if err := db.First(&author, word.UserID).Error; err != nil {
		return nil, err
	}

	viewers := word.Viewers.Data()
	hasViewed := false
	for _, v := range viewers {
		if v.UserID == viewerID {
			hasViewed = true
			break
		}
	}

	return &dailyWordResponse{
		DailyWord:   *word,
		Author:      author.Summary(),
		ViewerCount: len(viewers),
		ReplyCount:  len(word.Replies.Data()),
		HasViewed:   hasViewed,
	}, nil
}

// CreateDailyWord posts today's word. Any previous active word is deactivated
// first, so a user has at most one live word. Posting also advances the
// streak.
func CreateDailyWord(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedDailyWord").(*struct {
		Word       string `json:"word"`
		Meaning    string `json:"meaning"`
		Language   string `json:"language"`
		Visibility string `json:"visibility"`
	})

	db := database.Database.Db

	now := time.Now()

	// Replace any existing active word
	if err := db.Model(&models.DailyWord{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Update("is_active", false).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to post daily word!", nil)
	}

	visibility := reqData.Visibility
	if visibility == "" {
		visibility = models.VisibilityFriends
	}

	word := models.DailyWord{
		UserID:     userID,
		Word:       reqData.Word,
		Meaning:    reqData.Meaning,
		Language:   reqData.Language,
		Visibility: visibility,
		ExpiresAt:  now.Add(24 * time.Hour),
		IsActive:   true,
		Viewers:    datatypes.NewJSONType([]models.DailyWordViewer{}),
		Replies:    datatypes.NewJSONType([]models.DailyWordReply{}),
	}

	if err := db.Create(&word).Error; err != nil {
		log.Printf("Error creating daily word: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to post daily word!", nil)
	}

	if err := UpdateStreakForUser(userID, now); err != nil {
		log.Printf("Error updating streak for user %d: %v", userID, err)
	}

	response, err := buildDailyWordResponse(&word, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to post daily word!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Daily word posted!", response)
}

// GetDailyWordFeed returns visible, unexpired active words, newest first
func GetDailyWordFeed(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var words []models.DailyWord
	if err := db.Where("is_active = ? AND expires_at > ?", true, time.Now()).
		Order("created_at DESC").
		Limit(50).
		Find(&words).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feed!", nil)
	}

	feed := make([]*dailyWordResponse, 0, len(words))
	for i := range words {
		visible, err := canViewWord(&words[i], userID)
		if err != nil || !visible {
			continue
		}
		item, err := buildDailyWordResponse(&words[i], userID)
		if err != nil {
			continue
		}
		feed = append(feed, item)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feed fetched successfully!", feed)
}

// GetDailyWordByID returns a single word, enforcing its visibility
func GetDailyWordByID(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	wordID := c.Locals("wordID").(int)

	db := database.Database.Db

	var word models.DailyWord
	if err := db.First(&word, wordID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Daily word not found!", nil)
	}

	visible, err := canViewWord(&word, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch daily word!", nil)
	}
	if !visible {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You cannot view this daily word!", nil)
	}

	response, err := buildDailyWordResponse(&word, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch daily word!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Daily word fetched!", response)
}

// ViewDailyWord records the caller as a viewer. Repeat views are no-ops and
// the owner's own views are not recorded.
func ViewDailyWord(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	wordID := c.Locals("wordID").(int)

	db := database.Database.Db

	var word models.DailyWord
	if err := db.First(&word, wordID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Daily word not found!", nil)
	}

	visible, err := canViewWord(&word, userID)
	if err != nil || !visible {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You cannot view this daily word!", nil)
	}

	if word.UserID == userID {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Viewed.", nil)
	}

	viewers := word.Viewers.Data()
	for _, v := range viewers {
		if v.UserID == userID {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Viewed.", nil)
		}
	}

	viewers = append(viewers, models.DailyWordViewer{UserID: userID, ViewedAt: time.Now()})

	if err := db.Model(&word).Update("viewers", datatypes.NewJSONType(viewers)).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record view!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Viewed.", nil)
}

// ReplyToDailyWord appends a reply to a word the caller can view
func ReplyToDailyWord(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	wordID := c.Locals("wordID").(int)
	message := c.Locals("validatedReply").(string)

	db := database.Database.Db

	var word models.DailyWord
	if err := db.First(&word, wordID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Daily word not found!", nil)
	}

	visible, err := canViewWord(&word, userID)
	if err != nil || !visible {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You cannot reply to this daily word!", nil)
	}

	replies := word.Replies.Data()
	replies = append(replies, models.DailyWordReply{
		FromUserID: userID,
		Message:    message,
		CreatedAt:  time.Now(),
	})

	if err := db.Model(&word).Update("replies", datatypes.NewJSONType(replies)).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send reply!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reply sent!", nil)
}

// DeleteDailyWord deactivates the caller's own word
func DeleteDailyWord(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	wordID := c.Locals("wordID").(int)

	db := database.Database.Db

	var word models.DailyWord
	if err := db.First(&word, wordID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Daily word not found!", nil)
	}

	if word.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only delete your own daily word!", nil)
	}

	if err := db.Model(&word).Update("is_active", false).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete daily word!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Daily word deleted.", nil)
}

// GetMyDailyWord returns the caller's active word (if any) plus their streak
func GetMyDailyWord(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var word models.DailyWord
	err := db.Where("user_id = ? AND is_active = ? AND expires_at > ?", userID, true, time.Now()).
		First(&word).Error

	var wordResponse *dailyWordResponse
	if err == nil {
		wordResponse, _ = buildDailyWordResponse(&word, userID)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Daily word fetched!", fiber.Map{
		"dailyWord":   wordResponse,
		"streakCount": user.StreakCount,
	})
}
