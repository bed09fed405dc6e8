package contentController

import (
	"codelearn/database"
	"codelearn/engine"
	"codelearn/middleware"
	"codelearn/models"

	"github.com/gofiber/fiber/v2"
)

// SearchContent performs full-text search over title, description and
// tags. Exact filters narrow the candidate set in the store; ranking
// happens in-process.
func SearchContent(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.Content{}).
		Where("status = ? AND is_deleted = ?", resolveStatusFilter(c), false)

	if language := c.Query("language"); language != "" {
		db = db.Where("language = ?", engine.NormalizeLanguage(language))
	}
	if contentType := c.Query("type"); contentType != "" {
		db = db.Where("type = ?", contentType)
	}
	if difficulty := c.Query("difficulty"); difficulty != "" {
		db = db.Where("difficulty = ?", difficulty)
	}

	var candidates []models.Content
	if err := db.Preload("Author", selectAuthorUsername).
		Order("created_at desc").
		Find(&candidates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to search content!", nil)
	}

	docs := make([]engine.Document, len(candidates))
	for i, content := range candidates {
		docs[i] = engine.Document{
			ID:          content.ID,
			Title:       content.Title,
			Description: content.Description,
			Tags:        fromJSONList(content.Tags),
		}
	}

	matches := engine.Rank(c.Query("query"), docs)
	results := make([]models.Content, len(matches))
	for i, match := range matches {
		results[i] = candidates[match.Index]
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Search results fetched!", fiber.Map{
		"content": results,
	})
}
