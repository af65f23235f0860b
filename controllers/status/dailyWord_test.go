package statusController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lexify/config"
	statusController "lexify/controllers/status"
	"lexify/database"
	"lexify/middleware"
	"lexify/models"
	statusRoutes "lexify/routers/statusRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	statusRoutes.SetupStatusRoutes(app)
	return app
}

func createTestUser(t *testing.T, username string) (models.User, string) {
	t.Helper()

	user := models.User{
		FullName:    strings.ToUpper(username[:1]) + username[1:],
		Username:    username,
		Email:       username + "@example.com",
		Password:    "hashed",
		IsOnboarded: true,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.FullName, user.Username, user.Email)
	require.NoError(t, err)
	return user, token
}

func befriend(t *testing.T, a, b models.User) {
	t.Helper()
	db := database.Database.Db
	require.NoError(t, db.Model(&a).Association("Friends").Append(&b))
	require.NoError(t, db.Model(&b).Association("Friends").Append(&a))
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, app *fiber.App, method, url, token string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(rawBody, &env))
	return resp.StatusCode, env
}

func streakOf(t *testing.T, userID uint) (int, *time.Time) {
	t.Helper()
	var user models.User
	require.NoError(t, database.Database.Db.First(&user, userID).Error)
	return user.StreakCount, user.LastStreakDate
}

func TestUpdateStreakForUser(t *testing.T) {
	setupTestApp(t)
	user, _ := createTestUser(t, "alice")

	day1 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	// First ever post starts the streak
	require.NoError(t, statusController.UpdateStreakForUser(user.ID, day1))
	count, _ := streakOf(t, user.ID)
	assert.Equal(t, 1, count)

	// A second post the same day changes nothing
	require.NoError(t, statusController.UpdateStreakForUser(user.ID, day1.Add(5*time.Hour)))
	count, _ = streakOf(t, user.ID)
	assert.Equal(t, 1, count)

	// Next calendar day increments
	require.NoError(t, statusController.UpdateStreakForUser(user.ID, day1.Add(24*time.Hour)))
	count, _ = streakOf(t, user.ID)
	assert.Equal(t, 2, count)

	// Posting late on the following calendar day still counts as consecutive
	require.NoError(t, statusController.UpdateStreakForUser(user.ID, day1.Add(48*time.Hour+14*time.Hour)))
	count, _ = streakOf(t, user.ID)
	assert.Equal(t, 3, count)

	// Skipping a full calendar day resets to 1
	require.NoError(t, statusController.UpdateStreakForUser(user.ID, day1.Add(4*24*time.Hour)))
	count, _ = streakOf(t, user.ID)
	assert.Equal(t, 1, count)

	// The streak rebuilds from the reset, and a longer gap resets it again
	require.NoError(t, statusController.UpdateStreakForUser(user.ID, day1.Add(5*24*time.Hour)))
	count, _ = streakOf(t, user.ID)
	assert.Equal(t, 2, count)

	require.NoError(t, statusController.UpdateStreakForUser(user.ID, day1.Add(9*24*time.Hour)))
	count, _ = streakOf(t, user.ID)
	assert.Equal(t, 1, count)
}

func TestCreateDailyWordReplacesActive(t *testing.T) {
	app := setupTestApp(t)
	user, token := createTestUser(t, "alice")

	status, _ := doRequest(t, app, http.MethodPost, "/api/daily-words/", token, fiber.Map{
		"word": "hola", "meaning": "hello", "language": "Spanish",
	})
	require.Equal(t, http.StatusCreated, status)

	status, _ = doRequest(t, app, http.MethodPost, "/api/daily-words/", token, fiber.Map{
		"word": "adiós", "meaning": "goodbye", "language": "Spanish",
	})
	require.Equal(t, http.StatusCreated, status)

	var active []models.DailyWord
	require.NoError(t, database.Database.Db.
		Where("user_id = ? AND is_active = ?", user.ID, true).
		Find(&active).Error)
	require.Len(t, active, 1)
	assert.Equal(t, "adiós", active[0].Word)
	assert.Equal(t, models.VisibilityFriends, active[0].Visibility)

	// Streak started with the first post
	count, _ := streakOf(t, user.ID)
	assert.Equal(t, 1, count)
}

func TestCreateDailyWordValidation(t *testing.T) {
	app := setupTestApp(t)
	_, token := createTestUser(t, "alice")

	status, _ := doRequest(t, app, http.MethodPost, "/api/daily-words/", token, fiber.Map{
		"word": "", "meaning": "hello", "language": "Spanish",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = doRequest(t, app, http.MethodPost, "/api/daily-words/", token, fiber.Map{
		"word": strings.Repeat("x", 51), "meaning": "hello", "language": "Spanish",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = doRequest(t, app, http.MethodPost, "/api/daily-words/", token, fiber.Map{
		"word": "hola", "meaning": "hello", "language": "Spanish", "visibility": "everyone",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func postWord(t *testing.T, app *fiber.App, token, word, visibility string) uint {
	t.Helper()

	status, env := doRequest(t, app, http.MethodPost, "/api/daily-words/", token, fiber.Map{
		"word": word, "meaning": "meaning of " + word, "language": "Spanish", "visibility": visibility,
	})
	require.Equal(t, http.StatusCreated, status, env.Message)

	var created struct {
		ID uint `json:"ID"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	return created.ID
}

func TestFeedVisibility(t *testing.T) {
	app := setupTestApp(t)
	alice, aliceToken := createTestUser(t, "alice")
	bob, bobToken := createTestUser(t, "bob")
	_, carolToken := createTestUser(t, "carol")

	befriend(t, alice, bob)

	postWord(t, app, aliceToken, "hola", models.VisibilityFriends)

	// A friend sees the word
	status, env := doRequest(t, app, http.MethodGet, "/api/daily-words/feed", bobToken, nil)
	require.Equal(t, http.StatusOK, status)
	var bobFeed []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &bobFeed))
	assert.Len(t, bobFeed, 1)

	// A stranger does not
	status, env = doRequest(t, app, http.MethodGet, "/api/daily-words/feed", carolToken, nil)
	require.Equal(t, http.StatusOK, status)
	var carolFeed []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &carolFeed))
	assert.Empty(t, carolFeed)

	// Public words reach everyone
	postWord(t, app, bobToken, "gracias", models.VisibilityPublic)

	status, env = doRequest(t, app, http.MethodGet, "/api/daily-words/feed", carolToken, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &carolFeed))
	assert.Len(t, carolFeed, 1)
}

func TestViewDailyWordIdempotent(t *testing.T) {
	app := setupTestApp(t)
	alice, aliceToken := createTestUser(t, "alice")
	bob, bobToken := createTestUser(t, "bob")

	befriend(t, alice, bob)

	wordID := postWord(t, app, aliceToken, "hola", models.VisibilityFriends)

	for i := 0; i < 3; i++ {
		status, _ := doRequest(t, app, http.MethodPost, fmt.Sprintf("/api/daily-words/%d/view", wordID), bobToken, nil)
		require.Equal(t, http.StatusOK, status)
	}

	var word models.DailyWord
	require.NoError(t, database.Database.Db.First(&word, wordID).Error)
	require.Len(t, word.Viewers.Data(), 1)
	assert.Equal(t, bob.ID, word.Viewers.Data()[0].UserID)

	// The owner's own views are not recorded
	status, _ := doRequest(t, app, http.MethodPost, fmt.Sprintf("/api/daily-words/%d/view", wordID), aliceToken, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, database.Database.Db.First(&word, wordID).Error)
	assert.Len(t, word.Viewers.Data(), 1)
}

func TestReplyToDailyWord(t *testing.T) {
	app := setupTestApp(t)
	alice, aliceToken := createTestUser(t, "alice")
	bob, bobToken := createTestUser(t, "bob")
	_, carolToken := createTestUser(t, "carol")

	befriend(t, alice, bob)

	wordID := postWord(t, app, aliceToken, "hola", models.VisibilityFriends)

	status, _ := doRequest(t, app, http.MethodPost, fmt.Sprintf("/api/daily-words/%d/reply", wordID), bobToken, fiber.Map{
		"message": "Nice word!",
	})
	require.Equal(t, http.StatusOK, status)

	// Strangers cannot reply to friends-only words
	status, _ = doRequest(t, app, http.MethodPost, fmt.Sprintf("/api/daily-words/%d/reply", wordID), carolToken, fiber.Map{
		"message": "hi",
	})
	assert.Equal(t, http.StatusForbidden, status)

	var word models.DailyWord
	require.NoError(t, database.Database.Db.First(&word, wordID).Error)
	replies := word.Replies.Data()
	require.Len(t, replies, 1)
	assert.Equal(t, bob.ID, replies[0].FromUserID)
	assert.Equal(t, "Nice word!", replies[0].Message)
}

func TestDeleteDailyWordOwnerOnly(t *testing.T) {
	app := setupTestApp(t)
	alice, aliceToken := createTestUser(t, "alice")
	bob, bobToken := createTestUser(t, "bob")

	befriend(t, alice, bob)

	wordID := postWord(t, app, aliceToken, "hola", models.VisibilityFriends)

	status, _ := doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/daily-words/%d", wordID), bobToken, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/daily-words/%d", wordID), aliceToken, nil)
	require.Equal(t, http.StatusOK, status)

	var word models.DailyWord
	require.NoError(t, database.Database.Db.First(&word, wordID).Error)
	assert.False(t, word.IsActive)
}

func TestGetMyDailyWord(t *testing.T) {
	app := setupTestApp(t)
	_, token := createTestUser(t, "alice")

	status, env := doRequest(t, app, http.MethodGet, "/api/daily-words/me", token, nil)
	require.Equal(t, http.StatusOK, status)

	var me struct {
		DailyWord   json.RawMessage `json:"dailyWord"`
		StreakCount int             `json:"streakCount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, 0, me.StreakCount)

	postWord(t, app, token, "hola", models.VisibilityFriends)

	status, env = doRequest(t, app, http.MethodGet, "/api/daily-words/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, 1, me.StreakCount)
	assert.NotEqual(t, "null", string(me.DailyWord))
}
