package routes

import (
	"nutriwise/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterOAuthRoutes(router *gin.Engine, oauthController *controllers.OAuthController) {
	oauthRoutes := router.Group("/users/oauth")
	{
		oauthRoutes.POST("/google", oauthController.GoogleLogin)
	}
}
