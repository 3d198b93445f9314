package routes

import (
	"nutriwise/internal/controllers"
	"nutriwise/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRecipeRoutes(
	router *gin.Engine,
	recipeController *controllers.RecipeController,
	searchController *controllers.RecipeSearchController,
) {
	recipeRoutes := router.Group("/recipes")
	recipeRoutes.Use(middleware.AuthMiddleware())
	{
		recipeRoutes.GET("/discover", recipeController.DiscoverRecipes)
		recipeRoutes.GET("/search", searchController.SearchRecipes)
		recipeRoutes.GET("/map", searchController.MapRecipes)
		recipeRoutes.POST("/save", recipeController.SaveRecipe)
		recipeRoutes.POST("/rate", recipeController.RateRecipe)
		recipeRoutes.GET("/saved", recipeController.GetSavedRecipes)
	}
}
