package controllers

import (
	"fmt"
	"net/http"

	"nutriwise/internal/repository"

	"github.com/gin-gonic/gin"
)

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type ChatController struct {
	userRepo repository.UserRepository
	analyzer FoodAnalyzer
}

func NewChatController(userRepo repository.UserRepository, analyzer FoodAnalyzer) *ChatController {
	return &ChatController{userRepo: userRepo, analyzer: analyzer}
}

// Chat godoc
// @Summary Ask the nutrition assistant a question
// @Description Answers nutrition questions in a fixed four-section format, seeded with the user's profile
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChatRequest true "User message"
// @Success 200 {object} map[string]interface{} "Reply generated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 502 {object} map[string]interface{} "AI service unavailable"
// @Router /chat [post]
func (cc *ChatController) Chat(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	prompt := req.Message
	if user, err := cc.userRepo.GetUserByID(userID); err == nil {
		prompt = fmt.Sprintf(`You are NutriWise, a friendly nutrition assistant. Answer the user's question using exactly these four sections:
1. Quick Answer
2. Why It Matters
3. Practical Tips
4. Things To Watch

User profile:
%s
Question: %s`, profileSummary(user), req.Message)
	}

	reply, err := cc.analyzer.GenerateText(c.Request.Context(), prompt)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"status":  "error",
			"message": "AI service unavailable",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Reply generated successfully",
		"data": gin.H{
			"reply": reply,
		},
	})
}
