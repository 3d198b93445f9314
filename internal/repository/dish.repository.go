package repository

import (
	"nutriwise/internal/models"

	"gorm.io/gorm"
)

type DishRepository interface {
	Create(dish *models.Dish) error
	FindAll() ([]models.Dish, error)
	FindByID(id uint) (*models.Dish, error)
	FindByName(name string) (*models.Dish, error)
}

type dishRepository struct {
	db *gorm.DB
}

func NewDishRepository(db *gorm.DB) DishRepository {
	return &dishRepository{db: db}
}

func (r *dishRepository) Create(dish *models.Dish) error {
	return r.db.Create(dish).Error
}

func (r *dishRepository) FindAll() ([]models.Dish, error) {
	var dishes []models.Dish
	err := r.db.Order("name ASC").Find(&dishes).Error
	return dishes, err
}

func (r *dishRepository) FindByID(id uint) (*models.Dish, error) {
	var dish models.Dish
	err := r.db.First(&dish, id).Error
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *dishRepository) FindByName(name string) (*models.Dish, error) {
	var dish models.Dish
	err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&dish).Error
	if err != nil {
		return nil, err
	}
	return &dish, nil
}
