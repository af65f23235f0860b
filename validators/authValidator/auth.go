package authValidator

import (
	"regexp"
	"strings"

	"lexify/middleware"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// Usernames: 3-20 chars, letters, digits and underscores
func isValidUsername(username string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	return re.MatchString(username)
}

// Signup validator middleware
func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FullName string `json:"fullName"`
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Full Name
		if len(strings.TrimSpace(reqData.FullName)) < 2 {
			errors["fullName"] = "Full name must be at least 2 characters long!"
		}

		// Validate Username
		if !isValidUsername(strings.TrimSpace(reqData.Username)) {
			errors["username"] = "Username must be 3-20 characters: letters, numbers and underscores only!"
		}

		// Validate Email
		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}

		// Validate Password
		if len(strings.TrimSpace(reqData.Password)) < 6 {
			errors["password"] = "Password must be at least 6 characters long!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}

		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// Onboard validator middleware. Every profile field is required here.
func Onboard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FullName         string `json:"fullName"`
			Bio              string `json:"bio"`
			NativeLanguage   string `json:"nativeLanguage"`
			LearningLanguage string `json:"learningLanguage"`
			Location         string `json:"location"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.FullName) == "" {
			errors["fullName"] = "Full name is required!"
		}
		if strings.TrimSpace(reqData.Bio) == "" {
			errors["bio"] = "Bio is required!"
		}
		if strings.TrimSpace(reqData.NativeLanguage) == "" {
			errors["nativeLanguage"] = "Native language is required!"
		}
		if strings.TrimSpace(reqData.LearningLanguage) == "" {
			errors["learningLanguage"] = "Learning language is required!"
		}
		if strings.TrimSpace(reqData.Location) == "" {
			errors["location"] = "Location is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedOnboard", reqData)
		return c.Next()
	}
}
