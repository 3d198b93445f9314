package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"nutriwise/database"
	"nutriwise/docs"
	"nutriwise/internal/cache"
	"nutriwise/internal/controllers"
	"nutriwise/internal/gemini"
	"nutriwise/internal/recipesearch"
	"nutriwise/internal/repository"
	"nutriwise/internal/spoonacular"
	"nutriwise/internal/storage"
	"nutriwise/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: No .env file found: %v", err)
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "NutriWise API"
	docs.SwaggerInfo.Description = "Nutrition tracking, recipe discovery and AI meal analysis API."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	// Connect to database
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	resetPasswordRepo := repository.NewResetPasswordRepository(database.DB)
	verificationRepo := repository.NewVerificationRepository(database.DB)
	dailyLogRepo := repository.NewDailyLogRepository(database.DB)
	mealRepo := repository.NewMealRepository(database.DB)
	dishRepo := repository.NewDishRepository(database.DB)
	savedRecipeRepo := repository.NewSavedRecipeRepository(database.DB)
	communityRepo := repository.NewCommunityRepository(database.DB)

	// Redis is optional; without it recipe searches hit the upstream API
	// on every request.
	redisCache, err := cache.NewRedisClient()
	if err != nil {
		log.Printf("Warning: Redis unavailable, recipe search caching disabled: %v", err)
		redisCache = nil
	}

	// External services
	geminiClient, err := gemini.NewClient()
	if err != nil {
		log.Fatal("Failed to create Gemini client: ", err)
	}

	spoonacularClient, err := spoonacular.NewClient()
	if err != nil {
		log.Fatal("Failed to create Spoonacular client: ", err)
	}

	uploader, err := storage.NewUploader(context.Background())
	if err != nil {
		log.Fatal("Failed to create S3 uploader: ", err)
	}

	recipeSearchClient := recipesearch.NewClient(redisCache)

	// Initialize controllers
	userController := controllers.NewUserController(userRepo, resetPasswordRepo)
	verificationController := controllers.NewVerificationController(verificationRepo, userRepo)
	oauthController := controllers.NewOAuthController(userRepo)
	profileController := controllers.NewProfileController(userRepo)
	dailyLogController := controllers.NewDailyLogController(dailyLogRepo)
	mealController := controllers.NewMealController(mealRepo, dishRepo, dailyLogRepo, uploader, geminiClient)
	dishController := controllers.NewDishController(dishRepo)
	recipeController := controllers.NewRecipeController(userRepo, dailyLogRepo, savedRecipeRepo, spoonacularClient)
	recipeSearchController := controllers.NewRecipeSearchController(recipeSearchClient)
	recommendationController := controllers.NewRecommendationController(userRepo, geminiClient, recipeSearchClient)
	chatController := controllers.NewChatController(userRepo, geminiClient)
	communityController := controllers.NewCommunityController(communityRepo, userRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "NutriWise API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterUserRoutes(router, userController)
	routes.RegisterVerificationRoutes(router, verificationController)
	routes.RegisterOAuthRoutes(router, oauthController)
	routes.RegisterProfileRoutes(router, profileController)
	routes.RegisterDailyLogRoutes(router, dailyLogController)
	routes.RegisterMealRoutes(router, mealController, dishController)
	routes.RegisterRecipeRoutes(router, recipeController, recipeSearchController)
	routes.RegisterRecommendationRoutes(router, recommendationController)
	routes.RegisterChatRoutes(router, chatController)
	routes.RegisterCommunityRoutes(router, communityController)
	routes.RegisterSwaggerRoutes(router)

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		c.JSON(200, gin.H{
			"database_health": err == nil && result == 1,
		})
	})

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
