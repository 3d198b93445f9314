package routes

import (
	"nutriwise/internal/controllers"
	"nutriwise/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterChatRoutes(router *gin.Engine, chatController *controllers.ChatController) {
	chatRoutes := router.Group("/chat")
	chatRoutes.Use(middleware.AuthMiddleware())
	{
		chatRoutes.POST("/", chatController.Chat)
	}
}
