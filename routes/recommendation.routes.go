package routes

import (
	"nutriwise/internal/controllers"
	"nutriwise/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRecommendationRoutes(router *gin.Engine, recommendationController *controllers.RecommendationController) {
	recommendationRoutes := router.Group("/recommendations")
	recommendationRoutes.Use(middleware.AuthMiddleware())
	{
		recommendationRoutes.GET("/", recommendationController.GetRecommendations)
	}
}
