package main

import (
	"log"

	"lexify/config"
	goalController "lexify/controllers/goal"
	"lexify/database"
	authRoutes "lexify/routers/authRoutes"
	goalRoutes "lexify/routers/goalRoutes"
	notificationRoutes "lexify/routers/notificationRoutes"
	statusRoutes "lexify/routers/statusRoutes"
	translateRoutes "lexify/routers/translateRoutes"
	userRoutes "lexify/routers/userRoutes"
	"lexify/utils"
	"lexify/utils/quizgen"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// AI generation with an offline fallback so goal acceptance never
	// depends on the external API being up
	quiz := quizgen.WithFallback(
		quizgen.NewGeminiGenerator(config.AppConfig.GeminiApiUrl, config.AppConfig.GeminiApiKey, config.AppConfig.GeminiModel),
		quizgen.NewFallbackGenerator(),
	)
	learningGoals := goalController.NewLearningGoalController(quiz)

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	goalRoutes.SetupGoalRoutes(app, learningGoals)
	statusRoutes.SetupStatusRoutes(app)
	notificationRoutes.SetupNotificationRoutes(app)
	translateRoutes.SetupTranslateRoutes(app)

	utils.StartReminderScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
