package routes

import (
	"nutriwise/internal/controllers"
	"nutriwise/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterMealRoutes(router *gin.Engine, mealController *controllers.MealController, dishController *controllers.DishController) {
	mealRoutes := router.Group("/meals")
	mealRoutes.Use(middleware.AuthMiddleware())
	{
		mealRoutes.POST("/", mealController.CreateMeal)
		mealRoutes.POST("/analyze", mealController.AnalyzeMeal)
		mealRoutes.POST("/confirm", mealController.ConfirmMeal)
	}

	dishRoutes := router.Group("/dishes")
	dishRoutes.Use(middleware.AuthMiddleware())
	{
		dishRoutes.GET("/", dishController.GetDishes)
	}
}
