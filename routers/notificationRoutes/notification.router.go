package notificationRoutes

import (
	notificationController "lexify/controllers/notification"
	"lexify/middleware"
	"lexify/validators/notificationValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRoutes(app *fiber.App) {
	notificationGroup := app.Group("/api/notifications", middleware.JWTMiddleware)

	notificationGroup.Get("/", notificationController.GetNotifications)
	notificationGroup.Put("/read-all", notificationController.MarkAllNotificationsAsRead)
	notificationGroup.Put("/:id/read", notificationValidator.ParseNotificationID(), notificationController.MarkNotificationAsRead)
	notificationGroup.Delete("/:id", notificationValidator.ParseNotificationID(), notificationController.DeleteNotification)
}
