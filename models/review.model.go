package models

import "gorm.io/gorm"

// Review is append-only: the public contract never edits or removes
// one, and a user may review the same content more than once.
type Review struct {
	gorm.Model
	ContentID uint   `gorm:"index;not null" json:"content_id"`
	UserID    uint   `gorm:"not null" json:"user_id"`
	User      User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Rating    int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string `gorm:"type:text;default:''" json:"comment"`
}
