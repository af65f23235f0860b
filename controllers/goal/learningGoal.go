package goalController

import (
	"fmt"
	"log"
	"time"

	notificationController "lexify/controllers/notification"
	"lexify/database"
	"lexify/middleware"
	"lexify/models"
	goalModels "lexify/models/goal"
	"lexify/utils/quizgen"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LearningGoalController owns the shared learning goal lifecycle. The quiz
// generator is injected so the AI client can be swapped for the offline
// fallback or a test double.
type LearningGoalController struct {
	Quiz quizgen.Generator
}

func NewLearningGoalController(quiz quizgen.Generator) *LearningGoalController {
	return &LearningGoalController{Quiz: quiz}
}

// notify persists a notification fire-and-forget. Errors are logged inside
// CreateNotification and never abort the goal mutation that triggered them.
func notify(n *models.Notification) {
	_ = notificationController.CreateNotification(n)
}

// goalResponse is the API shape of a goal: participant summaries populated,
// per-day quizzes stripped (they are served by the quiz endpoint only).
type goalResponse struct {
	ID        uint       `json:"id"`
	CreatorID uint       `json:"creatorId"`
	PartnerID uint       `json:"partnerId"`
	Duration  int        `json:"duration"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	StartedAt *time.Time `json:"startedAt"`
	EndDate   *time.Time `json:"endDate"`

	CreatorLanguage       string `json:"creatorLanguage"`
	PartnerLanguage       string `json:"partnerLanguage"`
	CreatorNativeLanguage string `json:"creatorNativeLanguage"`
	PartnerNativeLanguage string `json:"partnerNativeLanguage"`

	Creator models.UserSummary `json:"creator"`
	Partner models.UserSummary `json:"partner"`

	Progress []dayProgressView `json:"progress"`
}

// dayProgressView exposes completion state without the quiz content.
type dayProgressView struct {
	Day               int                   `json:"day"`
	Unlocked          bool                  `json:"unlocked"`
	CreatorCompletion goalModels.Completion `json:"creatorCompletion"`
	PartnerCompletion goalModels.Completion `json:"partnerCompletion"`
}

func buildGoalResponse(db *gorm.DB, g *goalModels.SharedLearningGoal) (*goalResponse, error) {
	var creator, partner models.User
	if err := db.First(&creator, g.CreatorID).Error; err != nil {
		return nil, err
	}
	if err := db.First(&partner, g.PartnerID).Error; err != nil {
		return nil, err
	}

	progress := g.Progress.Data()
	views := make([]dayProgressView, 0, len(progress))
	for _, p := range progress {
		views = append(views, dayProgressView{
			Day:               p.Day,
			Unlocked:          g.IsDayUnlocked(p.Day),
			CreatorCompletion: p.CreatorCompletion,
			PartnerCompletion: p.PartnerCompletion,
		})
	}

	return &goalResponse{
		ID:                    g.ID,
		CreatorID:             g.CreatorID,
		PartnerID:             g.PartnerID,
		Duration:              g.Duration,
		Status:                g.Status,
		CreatedAt:             g.CreatedAt,
		StartedAt:             g.StartedAt,
		EndDate:               g.EndDate,
		CreatorLanguage:       g.CreatorLanguage,
		PartnerLanguage:       g.PartnerLanguage,
		CreatorNativeLanguage: g.CreatorNativeLanguage,
		PartnerNativeLanguage: g.PartnerNativeLanguage,
		Creator:               creator.Summary(),
		Partner:               partner.Summary(),
		Progress:              views,
	}, nil
}

func defaultLanguage(language string) string {
	if language == "" {
		return "English"
	}
	return language
}

// CreateLearningGoal creates a new goal invitation (status pending)
func (ctl *LearningGoalController) CreateLearningGoal(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedGoal").(*struct {
		PartnerID uint `json:"partnerId"`
		Duration  int  `json:"duration"`
	})

	if reqData.PartnerID == userID {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cannot create a goal with yourself!", nil)
	}

	db := database.Database.Db

	var creator models.User
	if err := db.First(&creator, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var partner models.User
	if err := db.First(&partner, reqData.PartnerID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Partner not found!", nil)
	}

	// Only one pending or active goal per pair, in either direction
	var existing goalModels.SharedLearningGoal
	err := db.Where(
		"((creator_id = ? AND partner_id = ?) OR (creator_id = ? AND partner_id = ?)) AND status IN ?",
		userID, partner.ID, partner.ID, userID,
		[]string{goalModels.StatusPending, goalModels.StatusActive},
	).First(&existing).Error
	if err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You already have an active or pending goal with this user!", nil)
	}

	learningGoal := goalModels.SharedLearningGoal{
		CreatorID:             userID,
		PartnerID:             partner.ID,
		Duration:              reqData.Duration,
		Status:                goalModels.StatusPending,
		CreatorLanguage:       defaultLanguage(creator.LearningLanguage),
		PartnerLanguage:       defaultLanguage(partner.LearningLanguage),
		CreatorNativeLanguage: defaultLanguage(creator.NativeLanguage),
		PartnerNativeLanguage: defaultLanguage(partner.NativeLanguage),
		Progress:              datatypes.NewJSONType([]goalModels.DayProgress{}),
	}

	if err := db.Create(&learningGoal).Error; err != nil {
		log.Printf("Error creating learning goal: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create learning goal!", nil)
	}

	notify(&models.Notification{
		RecipientID:    partner.ID,
		SenderID:       userID,
		Type:           models.NotificationGoalInvite,
		Title:          "New Learning Goal Invitation",
		Message:        fmt.Sprintf("%s invited you to a %d-day learning goal!", creator.FullName, learningGoal.Duration),
		LearningGoalID: &learningGoal.ID,
	})

	response, err := buildGoalResponse(db, &learningGoal)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load goal!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Learning goal created.", response)
}

// AcceptLearningGoal activates a pending goal: quizzes for every day are
// generated up front and persisted in one write, so a generation failure
// leaves the goal pending with no partial progress.
func (ctl *LearningGoalController) AcceptLearningGoal(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	goalID := c.Locals("goalID").(int)

	db := database.Database.Db

	var g goalModels.SharedLearningGoal
	if err := db.First(&g, goalID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Goal not found!", nil)
	}

	if g.PartnerID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only the invited partner can accept!", nil)
	}

	if g.Status != goalModels.StatusPending {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Goal is not pending!", nil)
	}

	var creator, partner models.User
	if err := db.First(&creator, g.CreatorID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Creator not found!", nil)
	}
	if err := db.First(&partner, g.PartnerID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Partner not found!", nil)
	}

	creatorLearning := defaultLanguage(creator.LearningLanguage)
	creatorNative := defaultLanguage(creator.NativeLanguage)
	partnerLearning := defaultLanguage(partner.LearningLanguage)
	partnerNative := defaultLanguage(partner.NativeLanguage)

	// Generate every day's quiz pair before touching the row. The first
	// failure aborts the whole acceptance.
	progress := make([]goalModels.DayProgress, 0, g.Duration)
	for day := 1; day <= g.Duration; day++ {
		creatorQuiz, err := ctl.Quiz.Generate(day, g.Duration, creatorLearning, creatorNative)
		if err != nil {
			log.Printf("Quiz generation failed for goal %d day %d: %v", g.ID, day, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate quizzes!", nil)
		}
		partnerQuiz, err := ctl.Quiz.Generate(day, g.Duration, partnerLearning, partnerNative)
		if err != nil {
			log.Printf("Quiz generation failed for goal %d day %d: %v", g.ID, day, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate quizzes!", nil)
		}

		progress = append(progress, goalModels.DayProgress{
			Day:         day,
			CreatorQuiz: creatorQuiz,
			PartnerQuiz: partnerQuiz,
		})
	}

	now := time.Now()
	endDate := now.Add(time.Duration(g.Duration) * 24 * time.Hour)

	result := db.Model(&goalModels.SharedLearningGoal{}).
		Where("id = ? AND version = ? AND status = ?", g.ID, g.Version, goalModels.StatusPending).
		Updates(map[string]interface{}{
			"status":                  goalModels.StatusActive,
			"started_at":              now,
			"end_date":                endDate,
			"progress":                datatypes.NewJSONType(progress),
			"creator_language":        creatorLearning,
			"partner_language":        partnerLearning,
			"creator_native_language": creatorNative,
			"partner_native_language": partnerNative,
			"version":                 g.Version + 1,
		})
	if result.Error != nil {
		log.Printf("Error activating goal %d: %v", g.ID, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to accept goal!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Goal is not pending!", nil)
	}

	notify(&models.Notification{
		RecipientID:    g.CreatorID,
		SenderID:       userID,
		Type:           models.NotificationGoalAccepted,
		Title:          "Goal Invitation Accepted",
		Message:        fmt.Sprintf("%s accepted your learning goal invitation!", partner.FullName),
		LearningGoalID: &g.ID,
	})

	if err := db.First(&g, goalID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load goal!", nil)
	}

	response, err := buildGoalResponse(db, &g)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load goal!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Goal accepted.", response)
}

// DeclineLearningGoal cancels a pending goal invitation
func (ctl *LearningGoalController) DeclineLearningGoal(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	goalID := c.Locals("goalID").(int)

	db := database.Database.Db

	var g goalModels.SharedLearningGoal
	if err := db.First(&g, goalID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Goal not found!", nil)
	}

	if g.PartnerID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only the invited partner can decline!", nil)
	}

	if g.Status != goalModels.StatusPending {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Goal is not pending!", nil)
	}

	result := db.Model(&goalModels.SharedLearningGoal{}).
		Where("id = ? AND version = ? AND status = ?", g.ID, g.Version, goalModels.StatusPending).
		Updates(map[string]interface{}{
			"status":  goalModels.StatusCancelled,
			"version": g.Version + 1,
		})
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to decline goal!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Goal is not pending!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Goal declined.", nil)
}

// GetLearningGoals lists every goal the caller participates in
func (ctl *LearningGoalController) GetLearningGoals(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var goals []goalModels.SharedLearningGoal
	if err := db.Where("creator_id = ? OR partner_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&goals).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch goals!", nil)
	}

	response := make([]*goalResponse, 0, len(goals))
	for i := range goals {
		item, err := buildGoalResponse(db, &goals[i])
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load goals!", nil)
		}
		response = append(response, item)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Goals fetched successfully!", response)
}

// GetLearningGoalByID returns a single goal to one of its participants
func (ctl *LearningGoalController) GetLearningGoalByID(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	goalID := c.Locals("goalID").(int)

	db := database.Database.Db

	var g goalModels.SharedLearningGoal
	if err := db.First(&g, goalID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Goal not found!", nil)
	}

	if g.CreatorID != userID && g.PartnerID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	response, err := buildGoalResponse(db, &g)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load goal!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Goal fetched successfully!", response)
}

// quizQuestionView is a question as served to the learner: no correct answer.
type quizQuestionView struct {
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Difficulty string   `json:"difficulty"`
	Concept    string   `json:"concept"`
}

// GetDailyQuiz serves the caller's own quiz for one unlocked day. If either
// participant changed languages since the quizzes were generated, this day's
// pair is regenerated with the current languages before serving; earlier
// days are left untouched.
func (ctl *LearningGoalController) GetDailyQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	goalID := c.Locals("goalID").(int)
	day := c.Locals("quizDay").(int)

	db := database.Database.Db

	var g goalModels.SharedLearningGoal
	if err := db.First(&g, goalID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Goal not found!", nil)
	}

	isCreator := g.CreatorID == userID
	isPartner := g.PartnerID == userID
	if !isCreator && !isPartner {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	if g.Status != goalModels.StatusActive {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Goal is not active!", nil)
	}

	if !g.IsDayUnlocked(day) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This day is not yet unlocked!", nil)
	}

	progress := g.Progress.Data()
	dayProgress := goalModels.DayProgressFor(progress, day)
	if dayProgress == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found for this day!", nil)
	}

	var creator, partner models.User
	if err := db.First(&creator, g.CreatorID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Creator not found!", nil)
	}
	if err := db.First(&partner, g.PartnerID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Partner not found!", nil)
	}

	creatorLearning := defaultLanguage(creator.LearningLanguage)
	creatorNative := defaultLanguage(creator.NativeLanguage)
	partnerLearning := defaultLanguage(partner.LearningLanguage)
	partnerNative := defaultLanguage(partner.NativeLanguage)

	creatorChanged := g.CreatorLanguage != creatorLearning || g.CreatorNativeLanguage != creatorNative
	partnerChanged := g.PartnerLanguage != partnerLearning || g.PartnerNativeLanguage != partnerNative

	if creatorChanged || partnerChanged {
		log.Printf("Language change detected on goal %d, regenerating quiz for day %d", g.ID, day)

		creatorQuiz, err := ctl.Quiz.Generate(day, g.Duration, creatorLearning, creatorNative)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to regenerate quiz!", nil)
		}
		partnerQuiz, err := ctl.Quiz.Generate(day, g.Duration, partnerLearning, partnerNative)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to regenerate quiz!", nil)
		}

		dayProgress.CreatorQuiz = creatorQuiz
		dayProgress.PartnerQuiz = partnerQuiz

		result := db.Model(&goalModels.SharedLearningGoal{}).
			Where("id = ? AND version = ?", g.ID, g.Version).
			Updates(map[string]interface{}{
				"progress":                datatypes.NewJSONType(progress),
				"creator_language":        creatorLearning,
				"partner_language":        partnerLearning,
				"creator_native_language": creatorNative,
				"partner_native_language": partnerNative,
				"version":                 g.Version + 1,
			})
		if result.Error != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save regenerated quiz!", nil)
		}
		if result.RowsAffected == 0 {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Goal was updated concurrently. Please retry.", nil)
		}
	}

	userQuiz := dayProgress.CreatorQuiz
	completion := dayProgress.CreatorCompletion
	if isPartner {
		userQuiz = dayProgress.PartnerQuiz
		completion = dayProgress.PartnerCompletion
	}

	// Never expose correct answers on fetch
	quiz := make([]quizQuestionView, 0, len(userQuiz))
	for _, q := range userQuiz {
		quiz = append(quiz, quizQuestionView{
			Question:   q.Question,
			Options:    q.Options,
			Difficulty: q.Difficulty,
			Concept:    q.Concept,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", fiber.Map{
		"day":       day,
		"quiz":      quiz,
		"completed": completion.Completed,
		"score":     completion.Score,
	})
}

// questionResult is the per-question outcome revealed after submission
type questionResult struct {
	QuestionIndex int  `json:"questionIndex"`
	UserAnswer    int  `json:"userAnswer"`
	CorrectAnswer int  `json:"correctAnswer"`
	IsCorrect     bool `json:"isCorrect"`
	WasAnswered   bool `json:"wasAnswered"`
}

// SubmitQuiz scores the caller's answers for one day. -1 marks an unanswered
// question and never counts as correct. The write is a conditional update on
// the goal's version so a concurrent duplicate submit is rejected instead of
// double-scoring.
func (ctl *LearningGoalController) SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	goalID := c.Locals("goalID").(int)
	day := c.Locals("quizDay").(int)
	answers := c.Locals("validatedAnswers").([]int)

	db := database.Database.Db

	var g goalModels.SharedLearningGoal
	if err := db.First(&g, goalID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Goal not found!", nil)
	}

	isCreator := g.CreatorID == userID
	isPartner := g.PartnerID == userID
	if !isCreator && !isPartner {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	if g.Status != goalModels.StatusActive {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Goal is not active!", nil)
	}

	if !g.IsDayUnlocked(day) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This day is not yet unlocked!", nil)
	}

	progress := g.Progress.Data()
	dayProgress := goalModels.DayProgressFor(progress, day)
	if dayProgress == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	completion := &dayProgress.CreatorCompletion
	userQuiz := dayProgress.CreatorQuiz
	if isPartner {
		completion = &dayProgress.PartnerCompletion
		userQuiz = dayProgress.PartnerQuiz
	}

	if completion.Completed {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quiz already completed for this day!", nil)
	}

	// Score: unanswered (-1) never counts
	score := 0
	for i, question := range userQuiz {
		if i < len(answers) && answers[i] != -1 && answers[i] == question.CorrectAnswer {
			score++
		}
	}

	now := time.Now()
	completion.Completed = true
	completion.CompletedAt = &now
	completion.Score = &score
	completion.Answers = answers

	allDaysCompleted := true
	for _, p := range progress {
		if !p.CreatorCompletion.Completed || !p.PartnerCompletion.Completed {
			allDaysCompleted = false
			break
		}
	}

	updates := map[string]interface{}{
		"progress": datatypes.NewJSONType(progress),
		"version":  g.Version + 1,
	}
	if allDaysCompleted {
		updates["status"] = goalModels.StatusCompleted
	}

	result := db.Model(&goalModels.SharedLearningGoal{}).
		Where("id = ? AND version = ? AND status = ?", g.ID, g.Version, goalModels.StatusActive).
		Updates(updates)
	if result.Error != nil {
		log.Printf("Error saving quiz submission for goal %d: %v", g.ID, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Goal was updated concurrently. Please retry.", nil)
	}

	var creator, partner models.User
	db.First(&creator, g.CreatorID)
	db.First(&partner, g.PartnerID)

	if allDaysCompleted {
		notify(&models.Notification{
			RecipientID:    g.CreatorID,
			SenderID:       g.PartnerID,
			Type:           models.NotificationGoalCompleted,
			Title:          "Learning Goal Completed!",
			Message:        fmt.Sprintf("You and %s completed your %d-day learning goal!", partner.FullName, g.Duration),
			LearningGoalID: &g.ID,
		})
		notify(&models.Notification{
			RecipientID:    g.PartnerID,
			SenderID:       g.CreatorID,
			Type:           models.NotificationGoalCompleted,
			Title:          "Learning Goal Completed!",
			Message:        fmt.Sprintf("You and %s completed your %d-day learning goal!", creator.FullName, g.Duration),
			LearningGoalID: &g.ID,
		})
	} else {
		recipientID := g.PartnerID
		senderName := creator.FullName
		if isPartner {
			recipientID = g.CreatorID
			senderName = partner.FullName
		}
		notify(&models.Notification{
			RecipientID:    recipientID,
			SenderID:       userID,
			Type:           models.NotificationQuizCompleted,
			Title:          "Partner Completed Quiz",
			Message:        fmt.Sprintf("%s completed today's quiz!", senderName),
			LearningGoalID: &g.ID,
		})
	}

	// Per-question reveal is intentional post-submission
	results := make([]questionResult, 0, len(userQuiz))
	for i, question := range userQuiz {
		answer := -1
		if i < len(answers) {
			answer = answers[i]
		}
		results = append(results, questionResult{
			QuestionIndex: i,
			UserAnswer:    answer,
			CorrectAnswer: question.CorrectAnswer,
			IsCorrect:     answer != -1 && answer == question.CorrectAnswer,
			WasAnswered:   answer != -1,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted!", fiber.Map{
		"score":          score,
		"totalQuestions": len(userQuiz),
		"completed":      true,
		"goalCompleted":  allDaysCompleted,
		"results":        results,
	})
}

// participantSummary aggregates one participant's results for the summary view
type participantSummary struct {
	User          models.UserSummary `json:"user"`
	TotalScore    int                `json:"totalScore"`
	DaysCompleted int                `json:"daysCompleted"`
	AverageScore  float64            `json:"averageScore"`
}

// GetGoalSummary returns aggregate statistics for a goal
func (ctl *LearningGoalController) GetGoalSummary(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	goalID := c.Locals("goalID").(int)

	db := database.Database.Db

	var g goalModels.SharedLearningGoal
	if err := db.First(&g, goalID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Goal not found!", nil)
	}

	if g.CreatorID != userID && g.PartnerID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	var creator, partner models.User
	if err := db.First(&creator, g.CreatorID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Creator not found!", nil)
	}
	if err := db.First(&partner, g.PartnerID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Partner not found!", nil)
	}

	progress := g.Progress.Data()

	creatorStats := participantSummary{User: creator.Summary()}
	partnerStats := participantSummary{User: partner.Summary()}

	for _, p := range progress {
		if p.CreatorCompletion.Completed {
			creatorStats.DaysCompleted++
			if p.CreatorCompletion.Score != nil {
				creatorStats.TotalScore += *p.CreatorCompletion.Score
			}
		}
		if p.PartnerCompletion.Completed {
			partnerStats.DaysCompleted++
			if p.PartnerCompletion.Score != nil {
				partnerStats.TotalScore += *p.PartnerCompletion.Score
			}
		}
	}

	if creatorStats.DaysCompleted > 0 {
		creatorStats.AverageScore = float64(creatorStats.TotalScore) / float64(creatorStats.DaysCompleted)
	}
	if partnerStats.DaysCompleted > 0 {
		partnerStats.AverageScore = float64(partnerStats.TotalScore) / float64(partnerStats.DaysCompleted)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Summary fetched successfully!", fiber.Map{
		"goal": fiber.Map{
			"duration":        g.Duration,
			"status":          g.Status,
			"startedAt":       g.StartedAt,
			"endDate":         g.EndDate,
			"creatorLanguage": g.CreatorLanguage,
			"partnerLanguage": g.PartnerLanguage,
		},
		"creator":            creatorStats,
		"partner":            partnerStats,
		"totalPossibleScore": len(progress) * goalModels.QuestionsPerQuiz,
	})
}

// DeleteGoal hard-deletes a goal. Either participant may do this at any
// status. Notifications referencing the goal are left in place.
func (ctl *LearningGoalController) DeleteGoal(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	goalID := c.Locals("goalID").(int)

	db := database.Database.Db

	var g goalModels.SharedLearningGoal
	if err := db.First(&g, goalID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Goal not found!", nil)
	}

	if g.CreatorID != userID && g.PartnerID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	if err := db.Unscoped().Delete(&g).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete goal!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Goal deleted successfully.", nil)
}
