package statusValidator

import (
	"strings"

	"lexify/middleware"
	"lexify/models"

	"github.com/gofiber/fiber/v2"
)

const (
	maxWordLength    = 50
	maxMeaningLength = 500
	maxReplyLength   = 500
)

func isValidVisibility(visibility string) bool {
	switch visibility {
	case "", models.VisibilityFriends, models.VisibilityPublic, models.VisibilityClose:
		return true
	}
	return false
}

// CreateDailyWord validator middleware
func CreateDailyWord() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Word       string `json:"word"`
			Meaning    string `json:"meaning"`
			Language   string `json:"language"`
			Visibility string `json:"visibility"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		word := strings.TrimSpace(reqData.Word)
		if word == "" {
			errors["word"] = "Word is required!"
		} else if len(word) > maxWordLength {
			errors["word"] = "Word must be at most 50 characters!"
		}

		meaning := strings.TrimSpace(reqData.Meaning)
		if meaning == "" {
			errors["meaning"] = "Meaning is required!"
		} else if len(meaning) > maxMeaningLength {
			errors["meaning"] = "Meaning must be at most 500 characters!"
		}

		if strings.TrimSpace(reqData.Language) == "" {
			errors["language"] = "Language is required!"
		}

		if !isValidVisibility(reqData.Visibility) {
			errors["visibility"] = "Visibility must be friends, public or close!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Word = word
		reqData.Meaning = meaning
		c.Locals("validatedDailyWord", reqData)
		return c.Next()
	}
}

// ParseWordID validates the :id route param
func ParseWordID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		wordID, err := c.ParamsInt("id")
		if err != nil || wordID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid daily word id!", nil)
		}

		c.Locals("wordID", wordID)
		return c.Next()
	}
}

// Reply validator middleware
func Reply() fiber.Handler {
	return func(c *fiber.Ctx) error {
		wordID, err := c.ParamsInt("id")
		if err != nil || wordID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid daily word id!", nil)
		}

		reqData := new(struct {
			Message string `json:"message"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		message := strings.TrimSpace(reqData.Message)
		if message == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Reply message is required!", nil)
		}
		if len(message) > maxReplyLength {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Reply must be at most 500 characters!", nil)
		}

		c.Locals("wordID", wordID)
		c.Locals("validatedReply", message)
		return c.Next()
	}
}
