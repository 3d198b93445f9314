package models

import (
	"time"

	"gorm.io/gorm"
)

// SavedRecipe is a user's bookmark of an externally sourced recipe with a
// cached macro snapshot. A user can save a given external recipe id once.
type SavedRecipe struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"saved_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`

	UserID   uint   `gorm:"uniqueIndex:idx_saved_recipes_user_recipe" json:"user_id" example:"1"`
	User     User   `gorm:"foreignKey:UserID" json:"-"`
	RecipeID string `gorm:"uniqueIndex:idx_saved_recipes_user_recipe" json:"recipe_id" example:"715538"`

	Name     string  `json:"name" example:"Bruschetta Style Pork & Pasta"`
	Image    string  `json:"image" example:"https://img.spoonacular.com/recipes/715538-312x231.jpg"`
	Calories float64 `json:"calories" example:"520"`
	Protein  float64 `json:"protein" example:"32"`
	Carbs    float64 `json:"carbs" example:"55"`
	Fats     float64 `json:"fats" example:"18"`
	Rating   *int    `json:"rating,omitempty" example:"4"`
}
