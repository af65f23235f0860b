package goalValidator

import (
	"lexify/middleware"
	goalModels "lexify/models/goal"

	"github.com/gofiber/fiber/v2"
)

// ParseGoalID validates the :goalId route param
func ParseGoalID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		goalID, err := c.ParamsInt("goalId")
		if err != nil || goalID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid goal id!", nil)
		}

		c.Locals("goalID", goalID)
		return c.Next()
	}
}

// ParseQuizDay validates the :goalId and :day route params
func ParseQuizDay() fiber.Handler {
	return func(c *fiber.Ctx) error {
		goalID, err := c.ParamsInt("goalId")
		if err != nil || goalID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid goal id!", nil)
		}

		day, err := c.ParamsInt("day")
		if err != nil || day < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid day!", nil)
		}

		c.Locals("goalID", goalID)
		c.Locals("quizDay", day)
		return c.Next()
	}
}

// CreateGoal validator middleware
func CreateGoal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PartnerID uint `json:"partnerId"`
			Duration  int  `json:"duration"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.PartnerID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Partner id is required!", nil)
		}

		if reqData.Duration < goalModels.MinDuration || reqData.Duration > goalModels.MaxDuration {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Duration must be between 3 and 30 days!", nil)
		}

		c.Locals("validatedGoal", reqData)
		return c.Next()
	}
}

// SubmitQuiz validator middleware: answers must be exactly one per question,
// -1 marking an unanswered slot
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		goalID, err := c.ParamsInt("goalId")
		if err != nil || goalID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid goal id!", nil)
		}

		day, err := c.ParamsInt("day")
		if err != nil || day < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid day!", nil)
		}

		reqData := new(struct {
			Answers []int `json:"answers"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Answers) != goalModels.QuestionsPerQuiz {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Answers must contain exactly 5 entries!", nil)
		}

		c.Locals("goalID", goalID)
		c.Locals("quizDay", day)
		c.Locals("validatedAnswers", reqData.Answers)
		return c.Next()
	}
}
