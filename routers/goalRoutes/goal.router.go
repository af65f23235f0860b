package goalRoutes

import (
	goalController "lexify/controllers/goal"
	"lexify/middleware"
	"lexify/validators/goalValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupGoalRoutes(app *fiber.App, ctl *goalController.LearningGoalController) {
	goalGroup := app.Group("/api/learning-goals", middleware.JWTMiddleware)

	goalGroup.Post("/create", goalValidator.CreateGoal(), ctl.CreateLearningGoal)
	goalGroup.Get("/", ctl.GetLearningGoals)
	goalGroup.Get("/:goalId", goalValidator.ParseGoalID(), ctl.GetLearningGoalByID)
	goalGroup.Post("/:goalId/accept", goalValidator.ParseGoalID(), ctl.AcceptLearningGoal)
	goalGroup.Post("/:goalId/decline", goalValidator.ParseGoalID(), ctl.DeclineLearningGoal)
	goalGroup.Get("/:goalId/quiz/:day", goalValidator.ParseQuizDay(), ctl.GetDailyQuiz)
	goalGroup.Post("/:goalId/quiz/:day/submit", goalValidator.SubmitQuiz(), ctl.SubmitQuiz)
	goalGroup.Get("/:goalId/summary", goalValidator.ParseGoalID(), ctl.GetGoalSummary)
	goalGroup.Delete("/:goalId", goalValidator.ParseGoalID(), ctl.DeleteGoal)
}
