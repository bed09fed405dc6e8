package userController

import (
	"codelearn/database"
	"codelearn/engine"
	"codelearn/middleware"
	"codelearn/models"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpdateProgress marks a topic complete for one language. The set
// insert uses ON CONFLICT DO NOTHING and the percentage is derived at
// the store level from the completion rows, so two concurrent
// completions for the same user and language both land and converge
// on the same value.
func UpdateProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProgress").(*struct {
		Language string `json:"language"`
		TopicID  string `json:"topicId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	if strings.TrimSpace(reqData.TopicID) == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Topic ID must not be empty!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	language := engine.NormalizeLanguage(reqData.Language)
	now := time.Now()

	var totalTopics int64
	db.Model(&models.Content{}).
		Where("language = ? AND status = ? AND is_deleted = ?", language, models.StatusPublished, false).
		Count(&totalTopics)

	tx := db.Begin()

	// Set insert: a duplicate completion is a no-op at the store level
	completion := models.TopicCompletion{
		UserID:   userID,
		Language: language,
		TopicID:  reqData.TopicID,
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&completion).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	record := models.ProgressRecord{
		UserID:       userID,
		Language:     language,
		LastAccessed: now,
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "language"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_accessed", "updated_at"}),
	}).Create(&record).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	// Derive the percentage from the stored set in the same statement
	// that writes it. Concurrent writers serialize on the progress row,
	// so the subquery of whichever commits last sees every completion.
	// With nothing published the stored percentage is left untouched.
	if totalTopics > 0 {
		if err := tx.Model(&models.ProgressRecord{}).
			Where("user_id = ? AND language = ?", userID, language).
			Update("progress_percent", gorm.Expr(
				"(SELECT CASE WHEN COUNT(*) >= ? THEN 100 ELSE CAST(ROUND(100.0 * COUNT(*) / ?) AS integer) END"+
					" FROM topic_completions WHERE user_id = ? AND language = ? AND deleted_at IS NULL)",
				totalTopics, totalTopics, userID, language,
			)).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}
	}

	tx.Commit()

	// Return the updated user, matching the profile shape
	if err := db.Where("id = ?", userID).Preload("LearningProgress").First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile!", nil)
	}
	attachCompletedTopics(user.ID, user.LearningProgress)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", user)
}

func GetProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var records []models.ProgressRecord
	if err := db.Where("user_id = ?", userID).Order("last_accessed desc").Find(&records).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	attachCompletedTopics(userID, records)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"learningProgress": records,
	})
}

// attachCompletedTopics fills the transient CompletedTopics slice on
// each record from the completion rows
func attachCompletedTopics(userID uint, records []models.ProgressRecord) {
	db := database.Database.Db
	for i := range records {
		var topics []string
		db.Model(&models.TopicCompletion{}).
			Where("user_id = ? AND language = ?", userID, records[i].Language).
			Order("created_at asc").
			Pluck("topic_id", &topics)
		records[i].CompletedTopics = topics
	}
}
