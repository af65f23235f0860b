package notificationController

import (
	"log"

	"lexify/database"
	"lexify/middleware"
	"lexify/models"

	"github.com/gofiber/fiber/v2"
)

// CreateNotification persists a notification record. Goal mutations call it
// fire-and-forget: a failure here must never roll back the mutation that
// triggered it, so callers only log the returned error.
func CreateNotification(n *models.Notification) error {
	if err := database.Database.Db.Create(n).Error; err != nil {
		log.Printf("Error creating notification: %v", err)
		return err
	}
	return nil
}

// notificationResponse decorates a record with its sender summary.
type notificationResponse struct {
	models.Notification
	Sender *models.UserSummary `json:"sender,omitempty"`
}

// GetNotifications returns the caller's latest 50 notifications
func GetNotifications(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var notifications []models.Notification
	if err := db.Where("recipient_id = ?", userID).
		Order("created_at DESC").
		Limit(50).
		Find(&notifications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notifications!", nil)
	}

	// Collect sender summaries in one query
	senderIDs := make([]uint, 0, len(notifications))
	for _, n := range notifications {
		if n.SenderID != 0 {
			senderIDs = append(senderIDs, n.SenderID)
		}
	}

	senders := make(map[uint]models.UserSummary)
	if len(senderIDs) > 0 {
		var users []models.User
		if err := db.Where("id IN ?", senderIDs).Find(&users).Error; err == nil {
			for _, u := range users {
				senders[u.ID] = u.Summary()
			}
		}
	}

	response := make([]notificationResponse, 0, len(notifications))
	for _, n := range notifications {
		item := notificationResponse{Notification: n}
		if s, ok := senders[n.SenderID]; ok {
			item.Sender = &s
		}
		response = append(response, item)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched successfully!", response)
}

// MarkNotificationAsRead marks one of the caller's notifications as read
func MarkNotificationAsRead(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	notificationID := c.Locals("notificationID").(int)

	db := database.Database.Db

	var notification models.Notification
	if err := db.Where("id = ? AND recipient_id = ?", notificationID, userID).First(&notification).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notification not found!", nil)
	}

	notification.Read = true
	if err := db.Save(&notification).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update notification!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification marked as read.", nil)
}

// MarkAllNotificationsAsRead marks every unread notification of the caller as read
func MarkAllNotificationsAsRead(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if err := database.Database.Db.Model(&models.Notification{}).
		Where("recipient_id = ? AND read = ?", userID, false).
		Update("read", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update notifications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "All notifications marked as read.", nil)
}

// DeleteNotification removes one of the caller's notifications
func DeleteNotification(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	notificationID := c.Locals("notificationID").(int)

	db := database.Database.Db

	var notification models.Notification
	if err := db.Where("id = ? AND recipient_id = ?", notificationID, userID).First(&notification).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notification not found!", nil)
	}

	if err := db.Unscoped().Delete(&notification).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete notification!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification deleted.", nil)
}
