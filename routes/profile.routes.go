package routes

import (
	"nutriwise/internal/controllers"
	"nutriwise/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterProfileRoutes(router *gin.Engine, profileController *controllers.ProfileController) {
	profileRoutes := router.Group("/profile")
	profileRoutes.Use(middleware.AuthMiddleware())
	{
		profileRoutes.GET("/", profileController.GetProfile)
		profileRoutes.PUT("/", profileController.UpdateProfile)
	}
}
