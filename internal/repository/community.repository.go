package repository

import (
	"nutriwise/internal/models"

	"gorm.io/gorm"
)

type CommunityRepository interface {
	Create(recipe *models.CommunityRecipe) error
	Search(query string) ([]models.CommunityRecipe, error)
	FindByID(id uint) (*models.CommunityRecipe, error)
}

type communityRepository struct {
	db *gorm.DB
}

func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) Create(recipe *models.CommunityRecipe) error {
	return r.db.Create(recipe).Error
}

// Search matches the query as a case-insensitive substring of name or
// description, or as an exact tag. An empty query returns everything.
func (r *communityRepository) Search(query string) ([]models.CommunityRecipe, error) {
	var recipes []models.CommunityRecipe

	tx := r.db.Order("name ASC")
	if query != "" {
		pattern := "%" + query + "%"
		tx = tx.Where(
			"name ILIKE ? OR description ILIKE ? OR tags::text ILIKE ?",
			pattern, pattern, "%\""+query+"\"%",
		)
	}

	err := tx.Find(&recipes).Error
	return recipes, err
}

func (r *communityRepository) FindByID(id uint) (*models.CommunityRecipe, error) {
	var recipe models.CommunityRecipe
	err := r.db.First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}
