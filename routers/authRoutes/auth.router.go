package authRoutes

import (
	authController "lexify/controllers/auth"
	"lexify/middleware"
	"lexify/validators/authValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/signup", authValidator.Signup(), authController.Signup)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Post("/logout", authController.Logout)
	authGroup.Post("/onboarding", middleware.JWTMiddleware, authValidator.Onboard(), authController.Onboard)
	authGroup.Get("/me", middleware.JWTMiddleware, authController.Me)
}
