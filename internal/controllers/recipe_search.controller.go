package controllers

import (
	"context"
	"net/http"

	"nutriwise/internal/recipesearch"

	"github.com/gin-gonic/gin"
)

// RecipeSearcher is the recipe database surface the search and map
// endpoints proxy to.
type RecipeSearcher interface {
	Search(ctx context.Context, searchText string, pageSize int) ([]recipesearch.Recipe, error)
	SearchByContinent(ctx context.Context, continent string, pageSize int) ([]recipesearch.Recipe, error)
}

type RecipeSearchController struct {
	searcher RecipeSearcher
}

func NewRecipeSearchController(searcher RecipeSearcher) *RecipeSearchController {
	return &RecipeSearchController{searcher: searcher}
}

// SearchRecipes godoc
// @Summary Search the recipe database by free text
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param searchText query string true "Search text"
// @Success 200 {object} map[string]interface{} "Recipes retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Missing search text"
// @Failure 502 {object} map[string]interface{} "Recipe service unavailable"
// @Router /recipes/search [get]
func (rsc *RecipeSearchController) SearchRecipes(c *gin.Context) {
	searchText := c.Query("searchText")
	if searchText == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Missing search text",
			"error":   "searchText query parameter is required",
		})
		return
	}

	recipes, err := rsc.searcher.Search(c.Request.Context(), searchText, 30)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"status":  "error",
			"message": "Recipe service unavailable",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipes retrieved successfully",
		"data":    recipes,
	})
}

// MapRecipes godoc
// @Summary Browse recipes by continent
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param continent query string true "Continent name"
// @Success 200 {object} map[string]interface{} "Recipes retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Missing continent"
// @Failure 502 {object} map[string]interface{} "Recipe service unavailable"
// @Router /recipes/map [get]
func (rsc *RecipeSearchController) MapRecipes(c *gin.Context) {
	continent := c.Query("continent")
	if continent == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Missing continent",
			"error":   "continent query parameter is required",
		})
		return
	}

	recipes, err := rsc.searcher.SearchByContinent(c.Request.Context(), continent, 30)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"status":  "error",
			"message": "Recipe service unavailable",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipes retrieved successfully",
		"data":    recipes,
	})
}
