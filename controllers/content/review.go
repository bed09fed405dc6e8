package contentController

import (
	"codelearn/database"
	"codelearn/engine"
	"codelearn/middleware"
	"codelearn/models"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AddReview appends a review and recomputes the content's mean rating.
// Reviews are append-only and not de-duplicated per user; a repeat
// reviewer simply adds another entry.
func AddReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	contentID, err := strconv.Atoi(c.Params("id"))
	if err != nil || contentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid content ID!", nil)
	}

	reqData, ok := c.Locals("validatedReview").(*ReviewRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := engine.ValidateRating(reqData.Rating); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Rating must be between 1 and 5!", nil)
	}

	db := database.Database.Db

	var content models.Content
	if err := db.Where("id = ? AND is_deleted = ?", contentID, false).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	review := models.Review{
		ContentID: content.ID,
		UserID:    userID,
		Rating:    reqData.Rating,
		Comment:   reqData.Comment,
	}

	// Append and recompute in one transaction. The mean is rebuilt at
	// the store level from the full review list; concurrent appends
	// serialize on the content row, so the last writer's subquery sees
	// every committed review.
	tx := db.Begin()
	if err := tx.Create(&review).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	if err := tx.Model(&models.Content{}).Where("id = ?", content.ID).
		Update("average_rating", gorm.Expr(
			"(SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE content_id = ? AND deleted_at IS NULL)",
			content.ID,
		)).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}
	tx.Commit()

	// Return the content with the fresh review list
	if err := db.Where("id = ?", content.ID).
		Preload("Author", selectAuthorUsername).
		Preload("Reviews").
		Preload("Reviews.User", selectAuthorUsername).
		First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review submitted successfully!", content)
}
