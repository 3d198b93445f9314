package controllers

import (
	"context"
	"net/http"
	"time"

	"nutriwise/internal/gemini"
	"nutriwise/internal/models"
	"nutriwise/internal/repository"

	"github.com/gin-gonic/gin"
)

const nutritionPrompt = `Analyze the food in this image and respond with only a JSON object, no markdown, in this exact shape:
{"name": string, "calories": number, "protein": number, "carbs": number, "fats": number, "fiber": number, "iron": number, "calcium": number, "potassium": number, "vitaminA": number, "vitaminC": number}
Values are for a single portion. Calories in kcal, macros and fiber in grams, iron in mg, calcium in mg, potassium in mg, vitaminA in IU, vitaminC in mg.`

const dishSuggestionPrompt = `Look at the food in this image and list the top 3 dishes it could be, one dish name per line, most likely first. Respond with the names only.`

// ImageUploader stores a base64 data URL and returns its public URL.
type ImageUploader interface {
	UploadBase64Image(ctx context.Context, dataURL, folder string) (string, error)
}

// FoodAnalyzer is the AI surface the meal flow needs.
type FoodAnalyzer interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateVision(ctx context.Context, prompt, imageURL string) (string, error)
}

type CreateMealRequest struct {
	Date        string   `json:"date"`
	MealType    string   `json:"meal_type" binding:"required"`
	InputMethod string   `json:"input_method" binding:"required"`
	DishID      *uint    `json:"dish_id"`
	Portions    *float64 `json:"portions"`
	Image       string   `json:"image"`
}

type AnalyzeMealRequest struct {
	ImageURL string `json:"image_url" binding:"required"`
}

type ConfirmMealRequest struct {
	Date     string   `json:"date"`
	MealType string   `json:"meal_type" binding:"required"`
	Image    string   `json:"image" binding:"required"`
	Portions *float64 `json:"portions"`
}

type MealController struct {
	mealRepo     repository.MealRepository
	dishRepo     repository.DishRepository
	dailyLogRepo repository.DailyLogRepository
	uploader     ImageUploader
	analyzer     FoodAnalyzer
}

func NewMealController(
	mealRepo repository.MealRepository,
	dishRepo repository.DishRepository,
	dailyLogRepo repository.DailyLogRepository,
	uploader ImageUploader,
	analyzer FoodAnalyzer,
) *MealController {
	return &MealController{
		mealRepo:     mealRepo,
		dishRepo:     dishRepo,
		dailyLogRepo: dailyLogRepo,
		uploader:     uploader,
		analyzer:     analyzer,
	}
}

// CreateMeal godoc
// @Summary Log a meal
// @Description Logs a meal from a catalog dish or a food photo and increments the day's nutrient totals
// @Tags meals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param meal body CreateMealRequest true "Meal details"
// @Success 201 {object} map[string]interface{} "Meal logged successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Dish not found"
// @Failure 500 {object} map[string]interface{} "Failed to log meal"
// @Router /meals [post]
func (mc *MealController) CreateMeal(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if !models.IsValidMealType(req.MealType) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "meal_type must be one of breakfast, lunch, dinner or snack",
		})
		return
	}

	date, ok := parseLogDate(c, req.Date)
	if !ok {
		return
	}

	portions := 1.0
	if req.Portions != nil {
		if *req.Portions <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   "portions must be greater than zero",
			})
			return
		}
		portions = *req.Portions
	}

	meal := &models.Meal{
		UserID:      userID,
		MealType:    req.MealType,
		InputMethod: req.InputMethod,
		Portions:    portions,
	}

	switch req.InputMethod {
	case models.InputMethodDish:
		if req.DishID == nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   "dish_id is required for DISH input",
			})
			return
		}
		dish, err := mc.dishRepo.FindByID(*req.DishID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Dish not found",
				"error":   "No dish with this id",
			})
			return
		}
		meal.DishID = &dish.ID
		meal.Name = dish.Name
		meal.Nutrients = dish.Nutrients.Scale(portions)

	case models.InputMethodImage:
		if req.Image == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   "image is required for IMAGE input",
			})
			return
		}
		estimate, imageURL, err := mc.analyzeImage(c.Request.Context(), req.Image)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to analyze image",
				"error":   err.Error(),
			})
			return
		}
		meal.Name = estimate.Name
		meal.ImageURL = imageURL
		meal.Nutrients = estimateToNutrients(estimate).Scale(portions)

	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "input_method must be DISH or IMAGE",
		})
		return
	}

	if err := mc.storeMeal(c, userID, date, meal); err != nil {
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Meal logged successfully",
		"data":    meal,
	})
}

// AnalyzeMeal godoc
// @Summary Suggest dishes for a food photo
// @Description Returns the top 3 dishes the photo could show
// @Tags meals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AnalyzeMealRequest true "Image URL"
// @Success 200 {object} map[string]interface{} "Dishes suggested successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to analyze image"
// @Router /meals/analyze [post]
func (mc *MealController) AnalyzeMeal(c *gin.Context) {
	var req AnalyzeMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	text, err := mc.analyzer.GenerateVision(c.Request.Context(), dishSuggestionPrompt, req.ImageURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to analyze image",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Dishes suggested successfully",
		"data": gin.H{
			"suggestions": gemini.ParseDishSuggestions(text),
		},
	})
}

// ConfirmMeal godoc
// @Summary Log a meal from a confirmed food photo
// @Description Uploads the photo, estimates its nutrition and logs the meal with scaled nutrients
// @Tags meals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ConfirmMealRequest true "Confirmed meal"
// @Success 201 {object} map[string]interface{} "Meal logged successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to log meal"
// @Router /meals/confirm [post]
func (mc *MealController) ConfirmMeal(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req ConfirmMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if !models.IsValidMealType(req.MealType) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "meal_type must be one of breakfast, lunch, dinner or snack",
		})
		return
	}

	date, ok := parseLogDate(c, req.Date)
	if !ok {
		return
	}

	portions := 1.0
	if req.Portions != nil && *req.Portions > 0 {
		portions = *req.Portions
	}

	estimate, imageURL, err := mc.analyzeImage(c.Request.Context(), req.Image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to analyze image",
			"error":   err.Error(),
		})
		return
	}

	meal := &models.Meal{
		UserID:      userID,
		MealType:    req.MealType,
		InputMethod: models.InputMethodImage,
		Name:        estimate.Name,
		ImageURL:    imageURL,
		Portions:    portions,
		Nutrients:   estimateToNutrients(estimate).Scale(portions),
	}

	if err := mc.storeMeal(c, userID, date, meal); err != nil {
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Meal logged successfully",
		"data":    meal,
	})
}

// analyzeImage uploads the base64 payload and asks the vision model for
// a nutrition estimate. Malformed model output degrades to the default
// estimate instead of failing the request.
func (mc *MealController) analyzeImage(ctx context.Context, image string) (gemini.NutritionEstimate, string, error) {
	imageURL, err := mc.uploader.UploadBase64Image(ctx, image, "meals")
	if err != nil {
		return gemini.NutritionEstimate{}, "", err
	}

	text, err := mc.analyzer.GenerateVision(ctx, nutritionPrompt, imageURL)
	if err != nil {
		return gemini.NutritionEstimate{}, "", err
	}

	estimate, _ := gemini.ParseNutritionEstimate(text)
	return estimate, imageURL, nil
}

// storeMeal resolves the daily log for the date and writes the meal plus
// the totals increment. Writes its own error response on failure.
func (mc *MealController) storeMeal(c *gin.Context, userID uint, date time.Time, meal *models.Meal) error {
	dailyLog, err := mc.dailyLogRepo.FindOrCreateByUserAndDate(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to log meal",
			"error":   "Database error",
		})
		return err
	}

	meal.DailyLogID = dailyLog.ID
	if err := mc.mealRepo.CreateWithTotals(meal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to log meal",
			"error":   "Database error",
		})
		return err
	}
	return nil
}

func estimateToNutrients(e gemini.NutritionEstimate) models.Nutrients {
	return models.Nutrients{
		Calories:  e.Calories,
		Protein:   e.Protein,
		Carbs:     e.Carbs,
		Fats:      e.Fats,
		Fiber:     e.Fiber,
		Iron:      e.Iron,
		Calcium:   e.Calcium,
		Potassium: e.Potassium,
		VitaminA:  e.VitaminA,
		VitaminC:  e.VitaminC,
	}
}
