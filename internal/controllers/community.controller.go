package controllers

import (
	"net/http"

	"nutriwise/internal/models"
	"nutriwise/internal/repository"

	"github.com/gin-gonic/gin"
)

type CommunityRecipeRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients" binding:"required"`
	Steps       string   `json:"steps" binding:"required"`
	Tags        []string `json:"tags"`
}

type CommunityController struct {
	repo     repository.CommunityRepository
	userRepo repository.UserRepository
}

func NewCommunityController(repo repository.CommunityRepository, userRepo repository.UserRepository) *CommunityController {
	return &CommunityController{repo: repo, userRepo: userRepo}
}

// CreateRecipe godoc
// @Summary Share a recipe with the community
// @Tags community
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param recipe body CommunityRecipeRequest true "Recipe details"
// @Success 201 {object} map[string]interface{} "Recipe shared successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to share recipe"
// @Router /community [post]
func (cc *CommunityController) CreateRecipe(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req CommunityRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	recipe := &models.CommunityRecipe{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
		Tags:        req.Tags,
	}

	if user, err := cc.userRepo.GetUserByID(userID); err == nil {
		recipe.UserEmail = user.Email
	}

	if err := cc.repo.Create(recipe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to share recipe",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Recipe shared successfully",
		"data":    recipe,
	})
}

// SearchRecipes godoc
// @Summary Search community recipes
// @Description Matches the query against recipe names, descriptions and tags. An empty query returns everything.
// @Tags community
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search query"
// @Success 200 {object} map[string]interface{} "Recipes retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to search recipes"
// @Router /community [get]
func (cc *CommunityController) SearchRecipes(c *gin.Context) {
	recipes, err := cc.repo.Search(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to search recipes",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipes retrieved successfully",
		"data":    recipes,
	})
}
