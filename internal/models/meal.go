package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

const (
	InputMethodDish  = "DISH"
	InputMethodImage = "IMAGE"
)

// IsValidMealType reports whether t is one of the four accepted meal tags.
func IsValidMealType(t string) bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}

// Meal is a single logged eating event. Its nutrient values are absolute,
// already scaled by the portion count, and immutable once stored.
type Meal struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`

	UserID     uint  `json:"user_id" example:"1"`
	User       User  `gorm:"foreignKey:UserID" json:"-"`
	DailyLogID uint  `json:"daily_log_id" example:"1"`
	DishID     *uint `json:"dish_id,omitempty" example:"3"`
	Dish       *Dish `gorm:"foreignKey:DishID" json:"dish,omitempty"`

	MealType    string  `json:"meal_type" example:"lunch"`
	InputMethod string  `json:"input_method" example:"DISH"`
	Name        string  `json:"name" example:"Grilled chicken salad"`
	ImageURL    string  `json:"image_url,omitempty"`
	Portions    float64 `gorm:"default:1" json:"portions" example:"1.5"`

	Nutrients `gorm:"embedded"`
}
