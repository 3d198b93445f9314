package models

import (
	"time"

	"gorm.io/gorm"
)

// Dish is a catalog entry users can log meals against. Nutrient values
// are per single portion.
type Dish struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`

	Name        string `gorm:"unique" json:"name" example:"Masala Dosa"`
	Description string `json:"description" example:"Crispy fermented rice crepe with spiced potato filling"`
	Region      string `json:"region" example:"indianSubcontinent"`

	Nutrients `gorm:"embedded"`
}
