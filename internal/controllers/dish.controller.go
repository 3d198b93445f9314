package controllers

import (
	"net/http"

	"nutriwise/internal/repository"

	"github.com/gin-gonic/gin"
)

type DishController struct {
	repo repository.DishRepository
}

func NewDishController(repo repository.DishRepository) *DishController {
	return &DishController{repo: repo}
}

// GetDishes godoc
// @Summary List catalog dishes
// @Tags dishes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Dishes retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve dishes"
// @Router /dishes [get]
func (dc *DishController) GetDishes(c *gin.Context) {
	dishes, err := dc.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve dishes",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Dishes retrieved successfully",
		"data":    dishes,
	})
}
