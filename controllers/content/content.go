package contentController

import (
	"codelearn/database"
	"codelearn/engine"
	"codelearn/middleware"
	"codelearn/models"
	"encoding/json"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// selectAuthorUsername limits the populated author to id and username
func selectAuthorUsername(db *gorm.DB) *gorm.DB {
	return db.Select("id", "username")
}

// resolveStatusFilter returns the status the caller may list. Everyone
// gets published; admins may widen via the status query param.
func resolveStatusFilter(c *fiber.Ctx) string {
	requested := c.Query("status")
	if requested == "" || requested == models.StatusPublished {
		return models.StatusPublished
	}

	role, _ := c.Locals("role").(string)
	if role == models.RoleAdmin && models.ValidStatus(requested) {
		return requested
	}
	return models.StatusPublished
}

func GetContentByLanguage(c *fiber.Ctx) error {
	language := engine.NormalizeLanguage(c.Params("language"))

	db := database.Database.Db.Model(&models.Content{}).
		Where("language = ? AND status = ? AND is_deleted = ?", language, resolveStatusFilter(c), false)

	if contentType := c.Query("type"); contentType != "" {
		db = db.Where("type = ?", contentType)
	}
	if difficulty := c.Query("difficulty"); difficulty != "" {
		db = db.Where("difficulty = ?", difficulty)
	}

	var contents []models.Content
	if err := db.Preload("Author", selectAuthorUsername).
		Order("created_at desc").
		Find(&contents).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content fetched successfully!", fiber.Map{
		"content": contents,
	})
}

func GetContentByID(c *fiber.Ctx) error {
	contentID, err := strconv.Atoi(c.Params("id"))
	if err != nil || contentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid content ID!", nil)
	}

	db := database.Database.Db

	var content models.Content
	if err := db.Where("id = ? AND is_deleted = ?", contentID, false).
		Preload("Author", selectAuthorUsername).
		Preload("Reviews").
		Preload("Reviews.User", selectAuthorUsername).
		First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	// Increment view count at the store level so concurrent fetches
	// do not lose a count
	if err := db.Model(&models.Content{}).Where("id = ?", content.ID).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch content!", nil)
	}
	content.ViewCount++

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content fetched successfully!", content)
}

func CreateContent(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Check if user exists
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedContent").(*ContentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	status := models.StatusDraft
	if reqData.Status != "" {
		status = reqData.Status
	}

	content := models.Content{
		Language:      engine.NormalizeLanguage(reqData.Language),
		Type:          reqData.Type,
		Title:         reqData.Title,
		Description:   reqData.Description,
		Body:          reqData.Body,
		Difficulty:    reqData.Difficulty,
		Prerequisites: toJSONList(reqData.Prerequisites),
		Tags:          toJSONList(reqData.Tags),
		AuthorID:      userID,
		Status:        status,
		Duration:      reqData.Duration,
		LastUpdated:   time.Now(),
	}

	if err := database.Database.Db.Create(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content created successfully!", content)
}

func UpdateContent(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)

	contentID, err := strconv.Atoi(c.Params("id"))
	if err != nil || contentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid content ID!", nil)
	}

	db := database.Database.Db

	var content models.Content
	if err := db.Where("id = ? AND is_deleted = ?", contentID, false).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	// Only the author or an admin may update
	if !middleware.CanModify(userID, role, content.AuthorID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized to update this content!", nil)
	}

	reqData, ok := c.Locals("validatedContentUpdate").(*ContentUpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Language != nil {
		content.Language = engine.NormalizeLanguage(*reqData.Language)
	}
	if reqData.Type != nil {
		content.Type = *reqData.Type
	}
	if reqData.Title != nil {
		content.Title = *reqData.Title
	}
	if reqData.Description != nil {
		content.Description = *reqData.Description
	}
	if reqData.Body != nil {
		content.Body = *reqData.Body
	}
	if reqData.Difficulty != nil {
		content.Difficulty = *reqData.Difficulty
	}
	if reqData.Prerequisites != nil {
		content.Prerequisites = toJSONList(*reqData.Prerequisites)
	}
	if reqData.Tags != nil {
		content.Tags = toJSONList(*reqData.Tags)
	}
	if reqData.Status != nil {
		content.Status = *reqData.Status
	}
	if reqData.Duration != nil {
		content.Duration = *reqData.Duration
	}
	content.LastUpdated = time.Now()

	if err := db.Save(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content updated successfully!", content)
}

func DeleteContent(c *fiber.Ctx) error {
	contentID, err := strconv.Atoi(c.Params("id"))
	if err != nil || contentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid content ID!", nil)
	}

	db := database.Database.Db

	var content models.Content
	if err := db.Where("id = ? AND is_deleted = ?", contentID, false).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	content.IsDeleted = true
	if err := db.Save(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content deleted successfully!", nil)
}

func toJSONList(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}

func fromJSONList(raw datatypes.JSON) []string {
	var values []string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &values)
	}
	return values
}
