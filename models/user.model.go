package models

import (
	"time"

	"gorm.io/gorm"
)

// Roles a user can hold. Students track progress and review content;
// instructors author content; admins moderate everything.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

type User struct {
	gorm.Model
	Username            string           `gorm:"unique;not null" json:"username"`
	Email               string           `gorm:"unique;not null" json:"email"`
	Password            string           `gorm:"not null" json:"-"`
	Role                string           `gorm:"default:'student'" json:"role"`
	LearningProgress    []ProgressRecord `gorm:"foreignKey:UserID" json:"learningProgress"`
	LastLogin           time.Time        `gorm:"default:NULL" json:"lastLogin"`
	FailedLoginAttempts int              `gorm:"default:0" json:"-"`
	LastFailedLogin     *time.Time       `json:"-"`
	IsBlocked           bool             `gorm:"default:false" json:"-"`
	BlockedUntil        *time.Time       `json:"-"`
	IsDeleted           bool             `gorm:"default:false" json:"-"`
}
