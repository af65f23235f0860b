package notificationController_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lexify/config"
	"lexify/database"
	"lexify/middleware"
	"lexify/models"
	notificationRoutes "lexify/routers/notificationRoutes"

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
	notificationRoutes.SetupNotificationRoutes(app)
	return app
}

func createTestUser(t *testing.T, username string) (models.User, string) {
	t.Helper()

	user := models.User{
		FullName: strings.ToUpper(username[:1]) + username[1:],
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.FullName, user.Username, user.Email)
	require.NoError(t, err)
	return user, token
}

func seedNotification(t *testing.T, recipientID, senderID uint, notificationType string) models.Notification {
	t.Helper()

	n := models.Notification{
		RecipientID: recipientID,
		SenderID:    senderID,
		Type:        notificationType,
		Title:       "Title",
		Message:     "Message",
	}
	require.NoError(t, database.Database.Db.Create(&n).Error)
	return n
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, app *fiber.App, method, url, token string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, url, nil)
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

func TestGetNotificationsListsOwnOnly(t *testing.T) {
	app := setupTestApp(t)
	alice, aliceToken := createTestUser(t, "alice")
	bob, _ := createTestUser(t, "bob")

	seedNotification(t, alice.ID, bob.ID, models.NotificationGoalInvite)
	seedNotification(t, bob.ID, alice.ID, models.NotificationQuizCompleted)

	status, env := doRequest(t, app, http.MethodGet, "/api/notifications/", aliceToken)
	require.Equal(t, http.StatusOK, status)

	var notifications []struct {
		Type   string `json:"type"`
		Sender *struct {
			Username string `json:"username"`
		} `json:"sender"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &notifications))
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationGoalInvite, notifications[0].Type)
	require.NotNil(t, notifications[0].Sender)
	assert.Equal(t, "bob", notifications[0].Sender.Username)
}

func TestMarkNotificationAsRead(t *testing.T) {
	app := setupTestApp(t)
	alice, aliceToken := createTestUser(t, "alice")
	bob, bobToken := createTestUser(t, "bob")

	n := seedNotification(t, alice.ID, bob.ID, models.NotificationGoalInvite)

	// Someone else's notification is not found
	status, _ := doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/notifications/%d/read", n.ID), bobToken)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/notifications/%d/read", n.ID), aliceToken)
	require.Equal(t, http.StatusOK, status)

	var updated models.Notification
	require.NoError(t, database.Database.Db.First(&updated, n.ID).Error)
	assert.True(t, updated.Read)
}

func TestMarkAllNotificationsAsRead(t *testing.T) {
	app := setupTestApp(t)
	alice, aliceToken := createTestUser(t, "alice")
	bob, _ := createTestUser(t, "bob")

	seedNotification(t, alice.ID, bob.ID, models.NotificationGoalInvite)
	seedNotification(t, alice.ID, bob.ID, models.NotificationQuizCompleted)

	status, _ := doRequest(t, app, http.MethodPut, "/api/notifications/read-all", aliceToken)
	require.Equal(t, http.StatusOK, status)

	var unread int64
	require.NoError(t, database.Database.Db.Model(&models.Notification{}).
		Where("recipient_id = ? AND read = ?", alice.ID, false).
		Count(&unread).Error)
	assert.Zero(t, unread)
}

func TestDeleteNotification(t *testing.T) {
	app := setupTestApp(t)
	alice, aliceToken := createTestUser(t, "alice")
	bob, bobToken := createTestUser(t, "bob")

	n := seedNotification(t, alice.ID, bob.ID, models.NotificationGoalInvite)

	status, _ := doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/notifications/%d", n.ID), bobToken)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/notifications/%d", n.ID), aliceToken)
	require.Equal(t, http.StatusOK, status)

	var count int64
	require.NoError(t, database.Database.Db.Model(&models.Notification{}).
		Where("id = ?", n.ID).
		Count(&count).Error)
	assert.Zero(t, count)
}
