package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"nutriwise/internal/gemini"
	"nutriwise/internal/models"
	"nutriwise/internal/recipesearch"
	"nutriwise/internal/repository"

	"github.com/gin-gonic/gin"
)

const maxRecommendations = 10

type RecommendationController struct {
	userRepo repository.UserRepository
	analyzer FoodAnalyzer
	searcher RecipeSearcher
}

func NewRecommendationController(userRepo repository.UserRepository, analyzer FoodAnalyzer, searcher RecipeSearcher) *RecommendationController {
	return &RecommendationController{
		userRepo: userRepo,
		analyzer: analyzer,
		searcher: searcher,
	}
}

// GetRecommendations godoc
// @Summary Get personalized dish recommendations
// @Description Asks the AI for dish names suited to the profile, then resolves them to recipes with allergens filtered out
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Recommendations retrieved successfully"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 502 {object} map[string]interface{} "AI service unavailable"
// @Router /recommendations [get]
func (rc *RecommendationController) GetRecommendations(c *gin.Context) {
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

	text, err := rc.analyzer.GenerateText(c.Request.Context(), recommendationPrompt(user))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"status":  "error",
			"message": "AI service unavailable",
			"error":   err.Error(),
		})
		return
	}

	dishNames := gemini.ParseDishNames(text)
	if len(dishNames) > 5 {
		dishNames = dishNames[:5]
	}

	var recipes []recipesearch.Recipe
	for _, dish := range dishNames {
		found, err := rc.searcher.Search(c.Request.Context(), dish, 10)
		if err != nil {
			continue
		}
		recipes = append(recipes, found...)
	}

	excluded := append([]string{}, user.FoodAllergies...)
	excluded = append(excluded, user.FoodsToAvoid...)
	recipes = recipesearch.FilterExcluded(recipes, excluded)

	if len(recipes) > maxRecommendations {
		recipes = recipes[:maxRecommendations]
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recommendations retrieved successfully",
		"data": gin.H{
			"dishes":  dishNames,
			"recipes": recipes,
		},
	})
}

func recommendationPrompt(user *models.User) string {
	return "Suggest 5 dishes for a person with this profile. Respond with only a JSON array of dish name strings.\n" +
		profileSummary(user)
}

// profileSummary renders whatever profile fields the user has filled in
// as prompt lines.
func profileSummary(user *models.User) string {
	var sb strings.Builder

	if user.Gender != nil {
		fmt.Fprintf(&sb, "Gender: %s\n", *user.Gender)
	}
	if user.YearOfBirth != nil {
		fmt.Fprintf(&sb, "Year of birth: %d\n", *user.YearOfBirth)
	}
	if user.BMI != nil {
		fmt.Fprintf(&sb, "BMI: %.2f\n", *user.BMI)
	}
	if user.Goals != nil {
		fmt.Fprintf(&sb, "Goal: %s\n", *user.Goals)
	}
	if user.PhysicalActivityLevel != nil {
		fmt.Fprintf(&sb, "Activity level: %s\n", *user.PhysicalActivityLevel)
	}
	if user.DietPreference != nil {
		fmt.Fprintf(&sb, "Diet: %s\n", *user.DietPreference)
	}
	if user.Region != nil {
		fmt.Fprintf(&sb, "Region: %s\n", *user.Region)
	}
	if len(user.FoodAllergies) > 0 {
		fmt.Fprintf(&sb, "Allergies: %s\n", strings.Join(user.FoodAllergies, ", "))
	}
	if len(user.FoodsToAvoid) > 0 {
		fmt.Fprintf(&sb, "Avoids: %s\n", strings.Join(user.FoodsToAvoid, ", "))
	}

	return sb.String()
}
