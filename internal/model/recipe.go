package model

import "time"

// Recipe represents a recipe owned by a single user.
type Recipe struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Title             string    `json:"title" gorm:"size:100;not null"`
	Instructions      string    `json:"instructions" gorm:"type:text;not null"`
	MinutesToComplete *int      `json:"minutes_to_complete"`
	UserID            uint      `json:"user_id" gorm:"not null;index"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Relations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
