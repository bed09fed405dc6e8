package authController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"codelearn/config"
	"codelearn/database"
	"codelearn/models"
	"codelearn/routers/authRoutes"
	"codelearn/utils"

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
	authRoutes.SetupAuthRoutes(app)
	return app
}

func doJSON(app *fiber.App, method, path string, body interface{}) (map[string]interface{}, int) {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		return nil, 0
	}
	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return result, resp.StatusCode
}

func registerUser(app *fiber.App, username, email, password string) (map[string]interface{}, int) {
	return doJSON(app, "POST", "/api/users/register", map[string]interface{}{
		"username": username,
		"email":    email,
		"password": password,
	})
}

func TestRegister(t *testing.T) {
	app := setupApp(t)

	result, status := registerUser(app, "newuser", "new@example.com", "secret1")
	assert.Equal(t, fiber.StatusCreated, status)

	data := result["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])

	user := data["user"].(map[string]interface{})
	assert.Equal(t, "newuser", user["username"])
	assert.Equal(t, models.RoleStudent, user["role"])
	// password hash never leaves the server
	_, exposed := user["password"]
	assert.False(t, exposed)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := setupApp(t)

	_, status := registerUser(app, "first", "taken@example.com", "secret1")
	require.Equal(t, fiber.StatusCreated, status)

	result, status := registerUser(app, "second", "taken@example.com", "secret1")
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "Email is already registered!", result["message"])
}

func TestRegisterDuplicateUsername(t *testing.T) {
	app := setupApp(t)

	_, status := registerUser(app, "taken", "first@example.com", "secret1")
	require.Equal(t, fiber.StatusCreated, status)

	_, status = registerUser(app, "taken", "second@example.com", "secret1")
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestRegisterValidation(t *testing.T) {
	app := setupApp(t)

	// short password
	_, status := registerUser(app, "newuser", "new@example.com", "abc")
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	// malformed email
	_, status = registerUser(app, "newuser", "not-an-email", "secret1")
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestLogin(t *testing.T) {
	app := setupApp(t)
	registerUser(app, "learner", "learner@example.com", "secret1")

	result, status := doJSON(app, "POST", "/api/users/login", map[string]interface{}{
		"email":    "learner@example.com",
		"password": "secret1",
	})
	assert.Equal(t, fiber.StatusOK, status)

	data := result["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, "learner", data["user"].(map[string]interface{})["username"])
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupApp(t)
	registerUser(app, "learner", "learner@example.com", "secret1")

	_, status := doJSON(app, "POST", "/api/users/login", map[string]interface{}{
		"email":    "learner@example.com",
		"password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestLoginBlocksAfterRepeatedFailures(t *testing.T) {
	app := setupApp(t)
	registerUser(app, "learner", "learner@example.com", "secret1")

	for i := 0; i < 3; i++ {
		doJSON(app, "POST", "/api/users/login", map[string]interface{}{
			"email":    "learner@example.com",
			"password": "wrong",
		})
	}

	// even the right password is rejected while blocked
	result, status := doJSON(app, "POST", "/api/users/login", map[string]interface{}{
		"email":    "learner@example.com",
		"password": "secret1",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, result["message"], "blocked")
}

func TestLoginUnknownEmail(t *testing.T) {
	app := setupApp(t)

	_, status := doJSON(app, "POST", "/api/users/login", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "secret1",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestForgotPasswordDoesNotRevealAccounts(t *testing.T) {
	app := setupApp(t)
	registerUser(app, "learner", "learner@example.com", "secret1")

	known, status := doJSON(app, "POST", "/api/users/forgot-password", map[string]interface{}{
		"email": "learner@example.com",
	})
	assert.Equal(t, fiber.StatusOK, status)

	unknown, status := doJSON(app, "POST", "/api/users/forgot-password", map[string]interface{}{
		"email": "nobody@example.com",
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, known["message"], unknown["message"])
}

func TestResetPassword(t *testing.T) {
	app := setupApp(t)
	db := database.Database.Db

	hash, err := bcrypt.GenerateFromPassword([]byte("oldpass"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{Username: "learner", Email: "learner@example.com", Password: string(hash), Role: models.RoleStudent}
	require.NoError(t, db.Create(&user).Error)

	reset := models.PasswordReset{
		UserID:    user.ID,
		Token:     utils.GenerateResetToken(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, db.Create(&reset).Error)

	_, status := doJSON(app, "POST", "/api/users/reset-password", map[string]interface{}{
		"token":    reset.Token,
		"password": "newpass1",
	})
	assert.Equal(t, fiber.StatusOK, status)

	// new password works, old one does not
	_, status = doJSON(app, "POST", "/api/users/login", map[string]interface{}{
		"email":    "learner@example.com",
		"password": "newpass1",
	})
	assert.Equal(t, fiber.StatusOK, status)

	// token is single-use
	_, status = doJSON(app, "POST", "/api/users/reset-password", map[string]interface{}{
		"token":    reset.Token,
		"password": "another1",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	app := setupApp(t)
	db := database.Database.Db

	user := models.User{Username: "learner", Email: "learner@example.com", Password: "x", Role: models.RoleStudent}
	require.NoError(t, db.Create(&user).Error)

	reset := models.PasswordReset{
		UserID:    user.ID,
		Token:     utils.GenerateResetToken(),
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, db.Create(&reset).Error)

	_, status := doJSON(app, "POST", "/api/users/reset-password", map[string]interface{}{
		"token":    reset.Token,
		"password": "newpass1",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
}
