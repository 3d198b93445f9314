package routes

import (
	"nutriwise/internal/controllers"
	"nutriwise/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterCommunityRoutes(router *gin.Engine, communityController *controllers.CommunityController) {
	communityRoutes := router.Group("/community")
	communityRoutes.Use(middleware.AuthMiddleware())
	{
		communityRoutes.GET("/", communityController.SearchRecipes)
		communityRoutes.POST("/", communityController.CreateRecipe)
	}
}
