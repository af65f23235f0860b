package translateController_test

import (
	"bytes"
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
	translateRoutes "lexify/routers/translateRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestApp(t *testing.T) (*fiber.App, string) {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.Database = database.DbInstance{Db: db}

	user := models.User{FullName: "Alice", Username: "alice", Email: "alice@example.com", Password: "hashed"}
	require.NoError(t, db.Create(&user).Error)
	token, err := middleware.GenerateJWT(user.ID, user.FullName, user.Username, user.Email)
	require.NoError(t, err)

	app := fiber.New()
	translateRoutes.SetupTranslateRoutes(app)
	return app, token
}

func doTranslate(t *testing.T, app *fiber.App, token string, body fiber.Map) (int, json.RawMessage) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/translate/", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rawBody, &env))
	return resp.StatusCode, env.Data
}

func TestTranslateRejectsUnsupportedLanguage(t *testing.T) {
	app, token := setupTestApp(t)

	status, _ := doTranslate(t, app, token, fiber.Map{"text": "hello", "targetLanguage": "Klingon"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestTranslateValidation(t *testing.T) {
	app, token := setupTestApp(t)

	status, _ := doTranslate(t, app, token, fiber.Map{"text": "", "targetLanguage": "Spanish"})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = doTranslate(t, app, token, fiber.Map{"text": "hello", "targetLanguage": ""})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestTranslateEnglishPassthrough(t *testing.T) {
	app, token := setupTestApp(t)

	status, data := doTranslate(t, app, token, fiber.Map{"text": "hello there", "targetLanguage": "English"})
	require.Equal(t, http.StatusOK, status)

	var result struct {
		TranslatedText string `json:"translatedText"`
	}
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, "hello there", result.TranslatedText)
}
