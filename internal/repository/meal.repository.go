package repository

import (
	"nutriwise/internal/models"

	"gorm.io/gorm"
)

type MealRepository interface {
	CreateWithTotals(meal *models.Meal) error
	FindByID(id uint) (*models.Meal, error)
	FindByDailyLogID(dailyLogID uint) ([]models.Meal, error)
}

type mealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

// CreateWithTotals inserts the meal and increments the owning daily
// log's nutrient totals in a single transaction, so a crash cannot leave
// the log under-counted. The increments are applied as atomic deltas.
func (r *mealRepository) CreateWithTotals(meal *models.Meal) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meal).Error; err != nil {
			return err
		}

		return tx.Model(&models.DailyLog{}).
			Where("id = ?", meal.DailyLogID).
			Updates(map[string]interface{}{
				"total_calories":  gorm.Expr("total_calories + ?", meal.Calories),
				"total_protein":   gorm.Expr("total_protein + ?", meal.Protein),
				"total_carbs":     gorm.Expr("total_carbs + ?", meal.Carbs),
				"total_fats":      gorm.Expr("total_fats + ?", meal.Fats),
				"total_fiber":     gorm.Expr("total_fiber + ?", meal.Fiber),
				"total_iron":      gorm.Expr("total_iron + ?", meal.Iron),
				"total_calcium":   gorm.Expr("total_calcium + ?", meal.Calcium),
				"total_potassium": gorm.Expr("total_potassium + ?", meal.Potassium),
				"total_vitamin_a": gorm.Expr("total_vitamin_a + ?", meal.VitaminA),
				"total_vitamin_c": gorm.Expr("total_vitamin_c + ?", meal.VitaminC),
			}).Error
	})
}

func (r *mealRepository) FindByID(id uint) (*models.Meal, error) {
	var meal models.Meal
	err := r.db.Preload("Dish").First(&meal, id).Error
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) FindByDailyLogID(dailyLogID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.Where("daily_log_id = ?", dailyLogID).Order("created_at ASC").Find(&meals).Error
	return meals, err
}
