package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	IntensityMild        = "MILD"
	IntensityModerate    = "MODERATE"
	IntensityIntense     = "INTENSE"
	IntensityVeryIntense = "VERY_INTENSE"
)

// DailyLog is the per-user, per-calendar-date aggregate of nutrient
// totals. At most one row exists per (user, date); it is created lazily
// on the first read or meal of the day and its totals are incremented as
// meals are added.
type DailyLog struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`

	UserID uint      `gorm:"uniqueIndex:idx_daily_logs_user_date" json:"user_id" example:"1"`
	User   User      `gorm:"foreignKey:UserID" json:"-"`
	Date   time.Time `gorm:"uniqueIndex:idx_daily_logs_user_date" json:"date" example:"2023-01-01T00:00:00Z"`

	TotalCalories  float64 `json:"total_calories" example:"1800"`
	TotalProtein   float64 `json:"total_protein" example:"90"`
	TotalCarbs     float64 `json:"total_carbs" example:"220"`
	TotalFats      float64 `json:"total_fats" example:"60"`
	TotalFiber     float64 `json:"total_fiber" example:"25"`
	TotalIron      float64 `json:"total_iron" example:"12"`
	TotalCalcium   float64 `json:"total_calcium" example:"900"`
	TotalPotassium float64 `json:"total_potassium" example:"3200"`
	TotalVitaminA  float64 `json:"total_vitamin_a" example:"2800"`
	TotalVitaminC  float64 `json:"total_vitamin_c" example:"80"`

	ExerciseStartTime *time.Time `json:"exercise_start_time"`
	ExerciseEndTime   *time.Time `json:"exercise_end_time"`
	SleepStartTime    *time.Time `json:"sleep_start_time"`
	SleepEndTime      *time.Time `json:"sleep_end_time"`
	ExerciseIntensity *string    `json:"exercise_intensity" example:"MODERATE"`

	Meals []Meal `gorm:"foreignKey:DailyLogID" json:"meals"`
}
