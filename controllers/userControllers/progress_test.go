package userController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"codelearn/config"
	"codelearn/database"
	"codelearn/middleware"
	"codelearn/models"
	"codelearn/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4}

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	userRoutes.SetupUserRoutes(app)
	return app
}

func createUser(t *testing.T, username string) (models.User, string) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Username: username, Email: username + "@example.com", Password: string(hash), Role: models.RoleStudent}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role, user.Email)
	require.NoError(t, err)
	return user, token
}

// seedCatalog creates n published topics for a language so progress
// percentages have a denominator.
func seedCatalog(t *testing.T, language string, n int) {
	author, _ := createUser(t, language+"author")
	for i := 0; i < n; i++ {
		content := models.Content{
			Language:    language,
			Type:        models.TypeTutorial,
			Title:       fmt.Sprintf("%s topic %d", language, i),
			Description: "Topic",
			Difficulty:  models.DifficultyBeginner,
			AuthorID:    author.ID,
			Status:      models.StatusPublished,
		}
		require.NoError(t, database.Database.Db.Create(&content).Error)
	}
}

func doJSON(app *fiber.App, method, path, token string, body interface{}) (map[string]interface{}, int) {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		return nil, 0
	}
	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return result, resp.StatusCode
}

func completeTopic(app *fiber.App, token, language, topicID string) (map[string]interface{}, int) {
	return doJSON(app, "PUT", "/api/users/progress", token, map[string]interface{}{
		"language": language,
		"topicId":  topicID,
	})
}

// progressFor finds the record for one language in a profile payload.
func progressFor(t *testing.T, data map[string]interface{}, language string) map[string]interface{} {
	records, ok := data["learningProgress"].([]interface{})
	require.True(t, ok, "profile payload has no learningProgress")
	for _, r := range records {
		record := r.(map[string]interface{})
		if record["language"] == language {
			return record
		}
	}
	t.Fatalf("no progress record for %s", language)
	return nil
}

func TestUpdateProgressComputesPercent(t *testing.T) {
	app := setupApp(t)
	seedCatalog(t, "python", 3)
	_, token := createUser(t, "learner")

	result, status := completeTopic(app, token, "python", "variables")
	assert.Equal(t, fiber.StatusOK, status)
	record := progressFor(t, result["data"].(map[string]interface{}), "python")
	assert.Equal(t, float64(33), record["progressPercent"])
	assert.Equal(t, []interface{}{"variables"}, record["completedTopics"])

	result, status = completeTopic(app, token, "python", "loops")
	assert.Equal(t, fiber.StatusOK, status)
	record = progressFor(t, result["data"].(map[string]interface{}), "python")
	assert.Equal(t, float64(67), record["progressPercent"])
	assert.Equal(t, []interface{}{"variables", "loops"}, record["completedTopics"])
}

func TestUpdateProgressIdempotent(t *testing.T) {
	app := setupApp(t)
	seedCatalog(t, "python", 3)
	_, token := createUser(t, "learner")

	completeTopic(app, token, "python", "variables")
	result, status := completeTopic(app, token, "python", "variables")
	assert.Equal(t, fiber.StatusOK, status)

	record := progressFor(t, result["data"].(map[string]interface{}), "python")
	assert.Equal(t, float64(33), record["progressPercent"])
	assert.Equal(t, []interface{}{"variables"}, record["completedTopics"])
}

func TestUpdateProgressNormalizesLanguage(t *testing.T) {
	app := setupApp(t)
	seedCatalog(t, "python", 2)
	_, token := createUser(t, "learner")

	result, status := completeTopic(app, token, "  Python ", "variables")
	assert.Equal(t, fiber.StatusOK, status)

	record := progressFor(t, result["data"].(map[string]interface{}), "python")
	assert.Equal(t, float64(50), record["progressPercent"])
}

func TestUpdateProgressEmptyCatalog(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "learner")

	result, status := completeTopic(app, token, "cobol", "intro")
	assert.Equal(t, fiber.StatusOK, status)

	// completions are kept even when nothing is published yet
	record := progressFor(t, result["data"].(map[string]interface{}), "cobol")
	assert.Equal(t, float64(0), record["progressPercent"])
	assert.Equal(t, []interface{}{"intro"}, record["completedTopics"])
}

func TestUpdateProgressRejectsMissingTopic(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "learner")

	_, status := doJSON(app, "PUT", "/api/users/progress", token, map[string]interface{}{
		"language": "python",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)

	_, status = doJSON(app, "PUT", "/api/users/progress", token, map[string]interface{}{
		"language": "python",
		"topicId":  "   ",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestUpdateProgressRejectsMissingLanguage(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "learner")

	_, status := doJSON(app, "PUT", "/api/users/progress", token, map[string]interface{}{
		"topicId": "variables",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestUpdateProgressCountsStoredCompletions(t *testing.T) {
	app := setupApp(t)
	seedCatalog(t, "python", 4)
	user, token := createUser(t, "learner")

	// a completion written by another request still counts toward the
	// percentage this request derives
	direct := models.TopicCompletion{UserID: user.ID, Language: "python", TopicID: "variables"}
	require.NoError(t, database.Database.Db.Create(&direct).Error)

	result, status := completeTopic(app, token, "python", "loops")
	assert.Equal(t, fiber.StatusOK, status)

	record := progressFor(t, result["data"].(map[string]interface{}), "python")
	assert.Equal(t, float64(50), record["progressPercent"])
	assert.ElementsMatch(t, []interface{}{"variables", "loops"}, record["completedTopics"])

	var stored models.ProgressRecord
	require.NoError(t, database.Database.Db.
		Where("user_id = ? AND language = ?", user.ID, "python").
		First(&stored).Error)
	assert.Equal(t, 50, stored.ProgressPercent)
}

func TestUpdateProgressUnauthenticated(t *testing.T) {
	app := setupApp(t)

	_, status := completeTopic(app, "", "python", "variables")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestGetProgress(t *testing.T) {
	app := setupApp(t)
	seedCatalog(t, "python", 2)
	seedCatalog(t, "javascript", 4)
	_, token := createUser(t, "learner")

	completeTopic(app, token, "python", "variables")
	completeTopic(app, token, "javascript", "closures")
	completeTopic(app, token, "javascript", "promises")

	result, status := doJSON(app, "GET", "/api/users/progress", token, nil)
	assert.Equal(t, fiber.StatusOK, status)

	data := result["data"].(map[string]interface{})
	record := progressFor(t, data, "javascript")
	assert.Equal(t, float64(50), record["progressPercent"])
	assert.Len(t, record["completedTopics"], 2)

	record = progressFor(t, data, "python")
	assert.Equal(t, float64(50), record["progressPercent"])
}

func TestGetProfileHydratesProgress(t *testing.T) {
	app := setupApp(t)
	seedCatalog(t, "python", 2)
	user, token := createUser(t, "learner")

	completeTopic(app, token, "python", "variables")

	result, status := doJSON(app, "GET", "/api/users/profile", token, nil)
	assert.Equal(t, fiber.StatusOK, status)

	data := result["data"].(map[string]interface{})
	assert.Equal(t, user.Username, data["username"])
	// password never leaves the server
	_, exposed := data["password"]
	assert.False(t, exposed)

	record := progressFor(t, data, "python")
	assert.Equal(t, []interface{}{"variables"}, record["completedTopics"])
}

func TestUpdateProfileRejectsTakenUsername(t *testing.T) {
	app := setupApp(t)
	createUser(t, "existing")
	_, token := createUser(t, "learner")

	_, status := doJSON(app, "PUT", "/api/users/profile", token, map[string]interface{}{
		"username": "existing",
	})
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestUpdateProfile(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "learner")

	result, status := doJSON(app, "PUT", "/api/users/profile", token, map[string]interface{}{
		"username": "renamed",
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "renamed", result["data"].(map[string]interface{})["username"])
}
