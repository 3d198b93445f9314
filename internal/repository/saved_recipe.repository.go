package repository

import (
	"nutriwise/internal/models"

	"gorm.io/gorm"
)

type SavedRecipeRepository interface {
	Create(recipe *models.SavedRecipe) error
	FindByUserAndRecipeID(userID uint, recipeID string) (*models.SavedRecipe, error)
	FindAllByUserID(userID uint) ([]models.SavedRecipe, error)
	UpdateRating(userID, id uint, rating int) (*models.SavedRecipe, error)
	Delete(userID, id uint) error
}

type savedRecipeRepository struct {
	db *gorm.DB
}

func NewSavedRecipeRepository(db *gorm.DB) SavedRecipeRepository {
	return &savedRecipeRepository{db: db}
}

func (r *savedRecipeRepository) Create(recipe *models.SavedRecipe) error {
	return r.db.Create(recipe).Error
}

func (r *savedRecipeRepository) FindByUserAndRecipeID(userID uint, recipeID string) (*models.SavedRecipe, error) {
	var recipe models.SavedRecipe
	err := r.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).First(&recipe).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *savedRecipeRepository) FindAllByUserID(userID uint) ([]models.SavedRecipe, error) {
	var recipes []models.SavedRecipe
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&recipes).Error
	return recipes, err
}

func (r *savedRecipeRepository) UpdateRating(userID, id uint, rating int) (*models.SavedRecipe, error) {
	var recipe models.SavedRecipe
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&recipe).Error; err != nil {
		return nil, err
	}

	recipe.Rating = &rating
	if err := r.db.Save(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *savedRecipeRepository) Delete(userID, id uint) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.SavedRecipe{}).Error
}
