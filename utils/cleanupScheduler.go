package utils

import (
	"codelearn/database"
	"codelearn/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logCleanup logs scheduler events with timestamp
func logCleanup(message string) {
	log.Printf("[CLEANUP-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// purgeExpiredResetTokens deletes password reset tokens that are used
// or past their expiry
func purgeExpiredResetTokens() {
	db := database.Database.Db
	now := time.Now()

	result := db.Where("is_used = ? OR expires_at < ?", true, now).Delete(&models.PasswordReset{})
	if result.Error != nil {
		logCleanup("Error purging reset tokens: " + result.Error.Error())
		return
	}

	if result.RowsAffected > 0 {
		logCleanup("Purged expired reset tokens")
	}
}

// StartCleanupScheduler starts the hourly maintenance job
func StartCleanupScheduler() {
	c := cron.New()

	_, err := c.AddFunc("@hourly", purgeExpiredResetTokens)
	if err != nil {
		log.Fatalf("Failed to schedule cleanup job: %v", err)
	}

	c.Start()
	logCleanup("Cleanup scheduler started")
}
