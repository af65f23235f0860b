package notificationValidator

import (
	"lexify/middleware"

	"github.com/gofiber/fiber/v2"
)

// ParseNotificationID validates the :id route param
func ParseNotificationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		notificationID, err := c.ParamsInt("id")
		if err != nil || notificationID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid notification id!", nil)
		}

		c.Locals("notificationID", notificationID)
		return c.Next()
	}
}
