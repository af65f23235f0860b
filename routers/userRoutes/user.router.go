package userRoutes

import (
	"lexify/controllers/userControllers"
	"lexify/middleware"
	"lexify/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/users", middleware.JWTMiddleware)

	userGroup.Get("/", userControllers.GetRecommendedUsers)
	userGroup.Get("/friends", userControllers.GetMyFriends)
	userGroup.Get("/search", userControllers.SearchUsers)
	userGroup.Post("/friend-request/:id", userValidator.ParseRecipientID(), userControllers.SendFriendRequest)
	userGroup.Put("/friend-request/:id/accept", userValidator.ParseRequestID(), userControllers.AcceptFriendRequest)
	userGroup.Get("/friend-requests", userControllers.GetFriendRequests)
	userGroup.Get("/outgoing-friend-requests", userControllers.GetOutgoingFriendRequests)
	userGroup.Put("/profile", userValidator.UpdateProfile(), userControllers.UpdateProfile)
}
