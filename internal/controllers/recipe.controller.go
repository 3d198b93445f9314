package controllers

import (
	"context"
	"net/http"

	"nutriwise/internal/models"
	"nutriwise/internal/repository"
	"nutriwise/internal/spoonacular"

	"github.com/gin-gonic/gin"
)

// Daily reference intakes used to report nutrition gaps on discovery.
var dailyTargets = map[string]float64{
	"calories":  2000,
	"protein":   50,
	"carbs":     275,
	"fats":      70,
	"fiber":     28,
	"iron":      18,
	"calcium":   1000,
	"potassium": 3500,
	"vitaminA":  3000,
	"vitaminC":  90,
}

// regionCuisines maps a profile region to Spoonacular cuisine names.
var regionCuisines = map[string]string{
	models.RegionSouthAmerican:      "Latin American",
	models.RegionNorthAmerican:      "American",
	models.RegionIndianSubcontinent: "Indian",
	models.RegionEuropean:           "European",
}

// RecipeDiscoverer is the external recipe API surface discovery needs.
type RecipeDiscoverer interface {
	ComplexSearch(ctx context.Context, params spoonacular.SearchParams) ([]spoonacular.Recipe, error)
	RecipeNutrition(ctx context.Context, recipeID int64) (*spoonacular.Nutrition, error)
}

type SaveRecipeRequest struct {
	RecipeID string  `json:"recipe_id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Image    string  `json:"image"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

type RateRecipeRequest struct {
	ID     uint `json:"id" binding:"required"`
	Rating int  `json:"rating" binding:"required"`
}

type discoveredRecipe struct {
	spoonacular.Recipe
	Nutrition *spoonacular.Nutrition `json:"nutrition,omitempty"`
}

type RecipeController struct {
	userRepo     repository.UserRepository
	dailyLogRepo repository.DailyLogRepository
	savedRepo    repository.SavedRecipeRepository
	discoverer   RecipeDiscoverer
}

func NewRecipeController(
	userRepo repository.UserRepository,
	dailyLogRepo repository.DailyLogRepository,
	savedRepo repository.SavedRecipeRepository,
	discoverer RecipeDiscoverer,
) *RecipeController {
	return &RecipeController{
		userRepo:     userRepo,
		dailyLogRepo: dailyLogRepo,
		savedRepo:    savedRepo,
		discoverer:   discoverer,
	}
}

// DiscoverRecipes godoc
// @Summary Discover recipes tailored to the user's profile and recent intake
// @Description Searches external recipes filtered by diet, allergies, region cuisine and goal-based calorie caps
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Recipes retrieved successfully"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 502 {object} map[string]interface{} "Recipe service unavailable"
// @Router /recipes/discover [get]
func (rc *RecipeController) DiscoverRecipes(c *gin.Context) {
	userID := c.GetUint("user_id")

	user, err := rc.userRepo.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user with this id",
		})
		return
	}

	logs, err := rc.dailyLogRepo.FindRecentByUserID(userID, 7)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load recent logs",
			"error":   "Database error",
		})
		return
	}

	params := buildDiscoveryParams(user, logs)

	recipes, err := rc.discoverer.ComplexSearch(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"status":  "error",
			"message": "Recipe service unavailable",
			"error":   err.Error(),
		})
		return
	}

	enriched := make([]discoveredRecipe, 0, len(recipes))
	for _, recipe := range recipes {
		item := discoveredRecipe{Recipe: recipe}
		if nutrition, err := rc.discoverer.RecipeNutrition(c.Request.Context(), recipe.ID); err == nil {
			item.Nutrition = nutrition
		}
		enriched = append(enriched, item)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipes retrieved successfully",
		"data": gin.H{
			"recipes":        enriched,
			"nutrition_gaps": nutritionGaps(logs),
		},
	})
}

// SaveRecipe godoc
// @Summary Save an external recipe
// @Description Bookmarks a recipe with a cached macro snapshot. Saving the same recipe twice is rejected.
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param recipe body SaveRecipeRequest true "Recipe snapshot"
// @Success 201 {object} map[string]interface{} "Recipe saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 409 {object} map[string]interface{} "Recipe already saved"
// @Router /recipes/save [post]
func (rc *RecipeController) SaveRecipe(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req SaveRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if _, err := rc.savedRepo.FindByUserAndRecipeID(userID, req.RecipeID); err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Recipe already saved",
			"error":   "This recipe is already in your saved list",
		})
		return
	}

	recipe := &models.SavedRecipe{
		UserID:   userID,
		RecipeID: req.RecipeID,
		Name:     req.Name,
		Image:    req.Image,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fats:     req.Fats,
	}

	if err := rc.savedRepo.Create(recipe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save recipe",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Recipe saved successfully",
		"data":    recipe,
	})
}

// RateRecipe godoc
// @Summary Rate a saved recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param rating body RateRecipeRequest true "Rating 1 to 5"
// @Success 200 {object} map[string]interface{} "Recipe rated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Saved recipe not found"
// @Router /recipes/rate [post]
func (rc *RecipeController) RateRecipe(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req RateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "rating must be between 1 and 5",
		})
		return
	}

	recipe, err := rc.savedRepo.UpdateRating(userID, req.ID, req.Rating)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Saved recipe not found",
			"error":   "No saved recipe with this id",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe rated successfully",
		"data":    recipe,
	})
}

// GetSavedRecipes godoc
// @Summary List saved recipes, newest first
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Saved recipes retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve saved recipes"
// @Router /recipes/saved [get]
func (rc *RecipeController) GetSavedRecipes(c *gin.Context) {
	userID := c.GetUint("user_id")

	recipes, err := rc.savedRepo.FindAllByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve saved recipes",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Saved recipes retrieved successfully",
		"data":    recipes,
	})
}

// buildDiscoveryParams turns the profile and the last week of logs into
// search filters. The calorie cap tightens to 500 for a weight loss goal
// and the protein floor kicks in when the weekly average is low.
func buildDiscoveryParams(user *models.User, logs []models.DailyLog) spoonacular.SearchParams {
	params := spoonacular.SearchParams{
		Number:      10,
		Sort:        "healthiness",
		MaxCalories: 800,
	}

	if user.Goals != nil && *user.Goals == models.GoalLoseWeight {
		params.MaxCalories = 500
	}
	if user.DietPreference != nil {
		params.Diet = *user.DietPreference
	}
	if len(user.FoodAllergies) > 0 {
		params.Intolerances = user.FoodAllergies
	}
	if user.Region != nil {
		params.Cuisine = regionCuisines[*user.Region]
	}

	if len(logs) > 0 {
		var protein float64
		for _, log := range logs {
			protein += log.TotalProtein
		}
		if protein/float64(len(logs)) < 50 {
			params.MinProtein = 25
		}
	}

	return params
}

// nutritionGaps reports how far the week's average daily intake falls
// short of the reference targets. Surpluses are clamped to zero.
func nutritionGaps(logs []models.DailyLog) map[string]float64 {
	gaps := make(map[string]float64, len(dailyTargets))
	if len(logs) == 0 {
		for nutrient, target := range dailyTargets {
			gaps[nutrient] = target
		}
		return gaps
	}

	totals := map[string]float64{}
	for _, log := range logs {
		totals["calories"] += log.TotalCalories
		totals["protein"] += log.TotalProtein
		totals["carbs"] += log.TotalCarbs
		totals["fats"] += log.TotalFats
		totals["fiber"] += log.TotalFiber
		totals["iron"] += log.TotalIron
		totals["calcium"] += log.TotalCalcium
		totals["potassium"] += log.TotalPotassium
		totals["vitaminA"] += log.TotalVitaminA
		totals["vitaminC"] += log.TotalVitaminC
	}

	days := float64(len(logs))
	for nutrient, target := range dailyTargets {
		gap := target - totals[nutrient]/days
		if gap < 0 {
			gap = 0
		}
		gaps[nutrient] = gap
	}
	return gaps
}
