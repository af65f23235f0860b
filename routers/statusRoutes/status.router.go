package statusRoutes

import (
	statusController "lexify/controllers/status"
	"lexify/middleware"
	"lexify/validators/statusValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupStatusRoutes(app *fiber.App) {
	statusGroup := app.Group("/api/daily-words", middleware.JWTMiddleware)

	statusGroup.Post("/", statusValidator.CreateDailyWord(), statusController.CreateDailyWord)
	statusGroup.Get("/feed", statusController.GetDailyWordFeed)
	statusGroup.Get("/me", statusController.GetMyDailyWord)
	statusGroup.Get("/:id", statusValidator.ParseWordID(), statusController.GetDailyWordByID)
	statusGroup.Post("/:id/view", statusValidator.ParseWordID(), statusController.ViewDailyWord)
	statusGroup.Post("/:id/reply", statusValidator.Reply(), statusController.ReplyToDailyWord)
	statusGroup.Delete("/:id", statusValidator.ParseWordID(), statusController.DeleteDailyWord)
}
