package repository

import (
	"time"

	"nutriwise/internal/models"

	"gorm.io/gorm"
)

type DailyLogRepository interface {
	FindOrCreateByUserAndDate(userID uint, date time.Time) (*models.DailyLog, error)
	FindByID(id uint) (*models.DailyLog, error)
	FindRecentByUserID(userID uint, limit int) ([]models.DailyLog, error)
	UpdateActivity(userID uint, date time.Time, data map[string]interface{}) (*models.DailyLog, error)
}

type dailyLogRepository struct {
	db *gorm.DB
}

func NewDailyLogRepository(db *gorm.DB) DailyLogRepository {
	return &dailyLogRepository{db: db}
}

// FindOrCreateByUserAndDate returns the unique log for (user, date),
// creating a zeroed one if none exists. The unique index on
// (user_id, date) guarantees a second concurrent create resolves to the
// same row.
func (r *dailyLogRepository) FindOrCreateByUserAndDate(userID uint, date time.Time) (*models.DailyLog, error) {
	var dailyLog models.DailyLog
	err := r.db.
		Where(models.DailyLog{UserID: userID, Date: date}).
		FirstOrCreate(&dailyLog).Error
	if err != nil {
		return nil, err
	}

	if err := r.db.Preload("Meals").First(&dailyLog, dailyLog.ID).Error; err != nil {
		return nil, err
	}
	if dailyLog.Meals == nil {
		dailyLog.Meals = []models.Meal{}
	}
	return &dailyLog, nil
}

func (r *dailyLogRepository) FindByID(id uint) (*models.DailyLog, error) {
	var dailyLog models.DailyLog
	err := r.db.Preload("Meals").First(&dailyLog, id).Error
	if err != nil {
		return nil, err
	}
	return &dailyLog, nil
}

func (r *dailyLogRepository) FindRecentByUserID(userID uint, limit int) ([]models.DailyLog, error) {
	var logs []models.DailyLog
	err := r.db.
		Preload("Meals").
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

// UpdateActivity upserts the exercise/sleep window fields on the log for
// (user, date) without touching the nutrient totals.
func (r *dailyLogRepository) UpdateActivity(userID uint, date time.Time, data map[string]interface{}) (*models.DailyLog, error) {
	var dailyLog models.DailyLog
	err := r.db.
		Where(models.DailyLog{UserID: userID, Date: date}).
		FirstOrCreate(&dailyLog).Error
	if err != nil {
		return nil, err
	}

	if err := r.db.Model(&dailyLog).Updates(data).Error; err != nil {
		return nil, err
	}

	if err := r.db.Preload("Meals").First(&dailyLog, dailyLog.ID).Error; err != nil {
		return nil, err
	}
	return &dailyLog, nil
}
