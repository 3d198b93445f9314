package controllers

import (
	"net/http"
	"time"

	"nutriwise/internal/models"
	"nutriwise/internal/repository"

	"github.com/gin-gonic/gin"
)

type ActivityRequest struct {
	Date              string     `json:"date"`
	ExerciseStartTime *time.Time `json:"exercise_start_time"`
	ExerciseEndTime   *time.Time `json:"exercise_end_time"`
	SleepStartTime    *time.Time `json:"sleep_start_time"`
	SleepEndTime      *time.Time `json:"sleep_end_time"`
	ExerciseIntensity *string    `json:"exercise_intensity"`
}

type DailyLogController struct {
	repo repository.DailyLogRepository
}

func NewDailyLogController(repo repository.DailyLogRepository) *DailyLogController {
	return &DailyLogController{repo: repo}
}

// GetDailyLog godoc
// @Summary Get the daily log for a date
// @Description Returns the log for the given date (defaults to today), creating a zeroed one if none exists
// @Tags daily-logs
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date in YYYY-MM-DD format"
// @Success 200 {object} map[string]interface{} "Daily log retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date format"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve daily log"
// @Router /daily-logs [get]
func (dc *DailyLogController) GetDailyLog(c *gin.Context) {
	userID := c.GetUint("user_id")

	date, ok := parseLogDate(c, c.Query("date"))
	if !ok {
		return
	}

	dailyLog, err := dc.repo.FindOrCreateByUserAndDate(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve daily log",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Daily log retrieved successfully",
		"data":    dailyLog,
	})
}

// UpdateActivity godoc
// @Summary Record exercise and sleep activity for a date
// @Description Upserts the exercise/sleep window on the log for the given date without touching nutrient totals
// @Tags daily-logs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param activity body ActivityRequest true "Activity fields"
// @Success 200 {object} map[string]interface{} "Activity recorded successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to record activity"
// @Router /daily-logs [post]
func (dc *DailyLogController) UpdateActivity(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	date, ok := parseLogDate(c, req.Date)
	if !ok {
		return
	}

	if req.ExerciseIntensity != nil && !oneOf(*req.ExerciseIntensity,
		models.IntensityMild, models.IntensityModerate, models.IntensityIntense, models.IntensityVeryIntense) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "exercise_intensity must be one of MILD, MODERATE, INTENSE or VERY_INTENSE",
		})
		return
	}

	updates := map[string]interface{}{}
	if req.ExerciseStartTime != nil {
		updates["exercise_start_time"] = req.ExerciseStartTime
	}
	if req.ExerciseEndTime != nil {
		updates["exercise_end_time"] = req.ExerciseEndTime
	}
	if req.SleepStartTime != nil {
		updates["sleep_start_time"] = req.SleepStartTime
	}
	if req.SleepEndTime != nil {
		updates["sleep_end_time"] = req.SleepEndTime
	}
	if req.ExerciseIntensity != nil {
		updates["exercise_intensity"] = req.ExerciseIntensity
	}

	dailyLog, err := dc.repo.UpdateActivity(userID, date, updates)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to record activity",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activity recorded successfully",
		"data":    dailyLog,
	})
}

// parseLogDate normalizes a YYYY-MM-DD query value to a UTC midnight
// time, defaulting to today. It writes the 400 response itself so
// callers only need the ok flag.
func parseLogDate(c *gin.Context, raw string) (time.Time, bool) {
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), true
	}

	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date format",
			"error":   "date must be in YYYY-MM-DD format",
		})
		return time.Time{}, false
	}
	return date, true
}
