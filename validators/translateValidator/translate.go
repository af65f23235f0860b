package translateValidator

import (
	"strings"

	"lexify/middleware"

	"github.com/gofiber/fiber/v2"
)

const maxTextLength = 5000

// Translate validator middleware
func Translate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Text           string `json:"text"`
			TargetLanguage string `json:"targetLanguage"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		text := strings.TrimSpace(reqData.Text)
		if text == "" {
			errors["text"] = "Text is required!"
		} else if len(text) > maxTextLength {
			errors["text"] = "Text must be at most 5000 characters!"
		}

		if strings.TrimSpace(reqData.TargetLanguage) == "" {
			errors["targetLanguage"] = "Target language is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Text = text
		c.Locals("validatedTranslate", reqData)
		return c.Next()
	}
}
