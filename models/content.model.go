package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Content types served by the catalog
const (
	TypeDocumentation = "documentation"
	TypeTutorial      = "tutorial"
	TypeVideo         = "video"
	TypePractice      = "practice"
	TypeRoadmap       = "roadmap"
)

// Content lifecycle statuses
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// Difficulty levels
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Content represents a single learning unit (tutorial, doc, video,
// practice item or roadmap) for one language.
type Content struct {
	gorm.Model
	Language      string         `gorm:"index;not null" json:"language"`
	Type          string         `gorm:"not null" json:"type"`
	Title         string         `gorm:"not null" json:"title"`
	Description   string         `gorm:"type:text;not null" json:"description"`
	Body          string         `gorm:"type:text" json:"body"`
	Difficulty    string         `gorm:"not null" json:"difficulty"`
	Prerequisites datatypes.JSON `json:"prerequisites"`
	Tags          datatypes.JSON `json:"tags"`
	AuthorID      uint           `gorm:"index;not null" json:"author_id"`
	Author        User           `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Status        string         `gorm:"default:'draft'" json:"status"`
	Duration      string         `json:"duration"`
	LastUpdated   time.Time      `json:"lastUpdated"`
	ViewCount     int64          `gorm:"default:0" json:"viewCount"`
	AverageRating float64        `gorm:"default:0" json:"averageRating"`
	Reviews       []Review       `gorm:"foreignKey:ContentID" json:"reviews"`
	IsDeleted     bool           `gorm:"default:false" json:"-"`
}

// ValidType reports whether t is one of the known content types.
func ValidType(t string) bool {
	switch t {
	case TypeDocumentation, TypeTutorial, TypeVideo, TypePractice, TypeRoadmap:
		return true
	}
	return false
}

// ValidDifficulty reports whether d is one of the known difficulty levels.
func ValidDifficulty(d string) bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// ValidStatus reports whether s is one of the known lifecycle statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}
