package models

import (
	"time"

	"gorm.io/gorm"
)

// CommunityRecipe is a user-authored recipe shared with the community,
// searchable by name/description substring or tag match.
type CommunityRecipe struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`

	UserID    uint   `json:"user_id" example:"1"`
	User      User   `gorm:"foreignKey:UserID" json:"-"`
	UserEmail string `json:"user_email" example:"jane@example.com"`

	Name        string   `json:"name" example:"Grandma's lentil soup"`
	Description string   `json:"description" example:"Slow-simmered red lentils with cumin and lemon"`
	Ingredients []string `gorm:"serializer:json" json:"ingredients"`
	Steps       string   `json:"steps"`
	Tags        []string `gorm:"serializer:json" json:"tags"`
}
