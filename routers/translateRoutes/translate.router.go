package translateRoutes

import (
	translateController "lexify/controllers/translate"
	"lexify/middleware"
	"lexify/validators/translateValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupTranslateRoutes(app *fiber.App) {
	translateGroup := app.Group("/api/translate", middleware.JWTMiddleware)

	translateGroup.Post("/", translateValidator.Translate(), translateController.Translate)
}
