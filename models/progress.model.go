package models

import (
	"time"

	"gorm.io/gorm"
)

// ProgressRecord is a user's completion state for one language. The
// language key is stored lowercased; one record per user and language.
// ProgressPercent is always derived from TopicCompletion rows, never
// taken from client input.
type ProgressRecord struct {
	gorm.Model
	UserID          uint      `gorm:"index;not null;uniqueIndex:idx_user_language" json:"user_id"`
	Language        string    `gorm:"not null;uniqueIndex:idx_user_language" json:"language"`
	CompletedTopics []string  `gorm:"-" json:"completedTopics"`
	ProgressPercent int       `gorm:"default:0" json:"progressPercent"`
	LastAccessed    time.Time `json:"lastAccessed"`
}

// TopicCompletion is the set membership row behind a progress record.
// The composite unique index makes "mark topic complete" an insert
// with ON CONFLICT DO NOTHING, so two concurrent completions for the
// same user and language both survive.
type TopicCompletion struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null;uniqueIndex:idx_user_language_topic" json:"user_id"`
	Language string `gorm:"not null;uniqueIndex:idx_user_language_topic" json:"language"`
	TopicID  string `gorm:"not null;uniqueIndex:idx_user_language_topic" json:"topic_id"`
}
