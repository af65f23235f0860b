package userValidator

import (
	"lexify/middleware"

	"github.com/gofiber/fiber/v2"
)

// ParseRecipientID validates the :id route param for friend requests
func ParseRecipientID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		recipientID, err := c.ParamsInt("id")
		if err != nil || recipientID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
		}

		c.Locals("recipientID", recipientID)
		return c.Next()
	}
}

// ParseRequestID validates the :id route param for accepting a request
func ParseRequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID, err := c.ParamsInt("id")
		if err != nil || requestID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request id!", nil)
		}

		c.Locals("requestID", requestID)
		return c.Next()
	}
}

// UpdateProfile validator middleware. All fields are optional; present ones
// must be non-empty strings.
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FullName         *string `json:"fullName"`
			Bio              *string `json:"bio"`
			NativeLanguage   *string `json:"nativeLanguage"`
			LearningLanguage *string `json:"learningLanguage"`
			Location         *string `json:"location"`
			ProfilePic       *string `json:"profilePic"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.FullName != nil && *reqData.FullName == "" {
			errors["fullName"] = "Full name cannot be empty!"
		}
		if reqData.NativeLanguage != nil && *reqData.NativeLanguage == "" {
			errors["nativeLanguage"] = "Native language cannot be empty!"
		}
		if reqData.LearningLanguage != nil && *reqData.LearningLanguage == "" {
			errors["learningLanguage"] = "Learning language cannot be empty!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
