package controllers

import (
	"fmt"
	"net/http"
	"time"

	"nutriwise/internal/models"
	"nutriwise/internal/repository"
	"nutriwise/internal/utils"

	"github.com/gin-gonic/gin"
)

type ProfileRequest struct {
	YearOfBirth           *int     `json:"year_of_birth"`
	Height                *float64 `json:"height"`
	Weight                *float64 `json:"weight"`
	Gender                *string  `json:"gender"`
	PhysicalActivityLevel *string  `json:"physical_activity_level"`
	Goals                 *string  `json:"goals"`
	DietPreference        *string  `json:"diet_preference"`
	FoodAllergies         []string `json:"food_allergies"`
	FoodsToAvoid          []string `json:"foods_to_avoid"`
	Region                *string  `json:"region"`
}

type ProfileController struct {
	repo repository.UserRepository
}

func NewProfileController(repo repository.UserRepository) *ProfileController {
	return &ProfileController{repo: repo}
}

// GetProfile godoc
// @Summary Get the authenticated user's health profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Profile retrieved successfully"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /profile [get]
func (pc *ProfileController) GetProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	user, err := pc.repo.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user with this id",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile retrieved successfully",
		"data":    user,
	})
}

// UpdateProfile godoc
// @Summary Update the authenticated user's health profile
// @Description Updates onboarding fields and recomputes BMI when height or weight changes
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body ProfileRequest true "Profile fields"
// @Success 200 {object} map[string]interface{} "Profile updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid profile data"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 500 {object} map[string]interface{} "Failed to update profile"
// @Router /profile [put]
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if msg := validateProfile(&req); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid profile data",
			"error":   msg,
		})
		return
	}

	user, err := pc.repo.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user with this id",
		})
		return
	}

	applyProfile(user, &req)

	if user.Height != nil && user.Weight != nil {
		bmi := utils.CalculateBMI(*user.Weight, *user.Height)
		user.BMI = &bmi
	}

	if err := pc.repo.UpdateUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update profile",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile updated successfully",
		"data":    user,
	})
}

func validateProfile(req *ProfileRequest) string {
	if req.YearOfBirth != nil {
		now := time.Now().Year()
		if *req.YearOfBirth < 1900 || *req.YearOfBirth > now {
			return fmt.Sprintf("year_of_birth must be between 1900 and %d", now)
		}
	}
	if req.Height != nil && (*req.Height < 80 || *req.Height > 300) {
		return "height must be between 80 and 300 cm"
	}
	if req.Weight != nil && (*req.Weight < 20 || *req.Weight > 500) {
		return "weight must be between 20 and 500 kg"
	}
	if req.Gender != nil && !oneOf(*req.Gender, models.GenderMale, models.GenderFemale, models.GenderOther) {
		return "gender must be one of male, female or other"
	}
	if req.PhysicalActivityLevel != nil && !oneOf(*req.PhysicalActivityLevel, models.ActivityLow, models.ActivityModerate, models.ActivityHigh) {
		return "physical_activity_level must be one of low, moderate or high"
	}
	if req.Goals != nil && !oneOf(*req.Goals, models.GoalLoseWeight, models.GoalGainWeight, models.GoalMaintainWeight) {
		return "goals must be one of loseWeight, gainWeight or maintainWeight"
	}
	if req.Region != nil && !oneOf(*req.Region, models.RegionSouthAmerican, models.RegionNorthAmerican, models.RegionIndianSubcontinent, models.RegionEuropean) {
		return "region is not supported"
	}
	if req.DietPreference != nil && !oneOf(*req.DietPreference, models.DietPreferences...) {
		return "diet_preference is not supported"
	}
	return ""
}

func applyProfile(user *models.User, req *ProfileRequest) {
	if req.YearOfBirth != nil {
		user.YearOfBirth = req.YearOfBirth
	}
	if req.Height != nil {
		user.Height = req.Height
	}
	if req.Weight != nil {
		user.Weight = req.Weight
	}
	if req.Gender != nil {
		user.Gender = req.Gender
	}
	if req.PhysicalActivityLevel != nil {
		user.PhysicalActivityLevel = req.PhysicalActivityLevel
	}
	if req.Goals != nil {
		user.Goals = req.Goals
	}
	if req.DietPreference != nil {
		user.DietPreference = req.DietPreference
	}
	if req.FoodAllergies != nil {
		user.FoodAllergies = req.FoodAllergies
	}
	if req.FoodsToAvoid != nil {
		user.FoodsToAvoid = req.FoodsToAvoid
	}
	if req.Region != nil {
		user.Region = req.Region
	}
}

func oneOf(value string, options ...string) bool {
	for _, opt := range options {
		if value == opt {
			return true
		}
	}
	return false
}
