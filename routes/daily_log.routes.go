package routes

import (
	"nutriwise/internal/controllers"
	"nutriwise/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterDailyLogRoutes(router *gin.Engine, dailyLogController *controllers.DailyLogController) {
	dailyLogRoutes := router.Group("/daily-logs")
	dailyLogRoutes.Use(middleware.AuthMiddleware())
	{
		dailyLogRoutes.GET("/", dailyLogController.GetDailyLog)
		dailyLogRoutes.POST("/", dailyLogController.UpdateActivity)
	}
}
