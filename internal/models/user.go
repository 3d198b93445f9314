package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

const (
	ActivityLow      = "low"
	ActivityModerate = "moderate"
	ActivityHigh     = "high"
)

const (
	GoalLoseWeight     = "loseWeight"
	GoalGainWeight     = "gainWeight"
	GoalMaintainWeight = "maintainWeight"
)

const (
	RegionSouthAmerican      = "southAmerican"
	RegionNorthAmerican      = "northAmerican"
	RegionIndianSubcontinent = "indianSubcontinent"
	RegionEuropean           = "european"
)

// DietPreferences lists the diet choices accepted during onboarding.
var DietPreferences = []string{"vegetarian", "vegan", "paleo", "keto", "mediterranean"}

// User carries both identity fields and the health profile collected
// during onboarding. BMI is derived from height and weight and stored
// alongside them so profile reads need no recomputation.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`

	Name     string `json:"name" example:"Jane Doe"`
	Email    string `gorm:"unique" json:"email" example:"jane@example.com"`
	Password string `json:"-"`
	Image    string `json:"image" example:"https://cdn.example.com/avatar.jpg"`
	Verified bool   `gorm:"default:false" json:"verified" example:"false"`

	YearOfBirth           *int     `json:"year_of_birth" example:"1995"`
	Height                *float64 `json:"height" example:"175"`
	Weight                *float64 `json:"weight" example:"70"`
	Gender                *string  `json:"gender" example:"female"`
	PhysicalActivityLevel *string  `json:"physical_activity_level" example:"moderate"`
	Goals                 *string  `json:"goals" example:"loseWeight"`
	DietPreference        *string  `json:"diet_preference" example:"vegetarian"`
	BMI                   *float64 `json:"bmi" example:"22.86"`
	FoodAllergies         []string `gorm:"serializer:json" json:"food_allergies"`
	FoodsToAvoid          []string `gorm:"serializer:json" json:"foods_to_avoid"`
	Region                *string  `json:"region" example:"european"`
}
