package model

import (
	"time"

	"recipeshare/internal/auth"
)

// User represents a registered account in the system.
type User struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	Username     string      `json:"username" gorm:"uniqueIndex;size:50;not null"`
	PasswordHash auth.Digest `json:"-" gorm:"column:password_hash;size:255;not null"` // Never expose in JSON
	ImageURL     string      `json:"image_url" gorm:"size:255"`
	Bio          string      `json:"bio" gorm:"size:255"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`

	// Relations
	Recipes []Recipe `json:"recipes,omitempty" gorm:"foreignKey:UserID"`
}
