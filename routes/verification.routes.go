package routes

import (
	"nutriwise/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterVerificationRoutes(router *gin.Engine, verificationController *controllers.VerificationController) {
	verificationRoutes := router.Group("/verify")
	{
		verificationRoutes.POST("/", verificationController.VerifyCode)
		verificationRoutes.POST("/send", verificationController.SendVerificationCode)
		verificationRoutes.POST("/resend", verificationController.ResendVerificationCode)
	}
}
