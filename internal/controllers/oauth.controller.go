package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"nutriwise/internal/models"
	"nutriwise/internal/repository"

	"github.com/gin-gonic/gin"
)

var errInvalidGoogleToken = errors.New("google rejected the id token")

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

type googleTokenInfo struct {
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Audience      string `json:"aud"`
}

type OAuthController struct {
	repo         repository.UserRepository
	tokenInfoURL string
	httpClient   *http.Client
}

func NewOAuthController(repo repository.UserRepository) *OAuthController {
	return &OAuthController{
		repo:         repo,
		tokenInfoURL: "https://oauth2.googleapis.com/tokeninfo",
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

// GoogleLogin godoc
// @Summary Login or register with a Google ID token
// @Description Verifies a Google ID token and returns a JWT. Creates the account on first login.
// @Tags users
// @Accept json
// @Produce json
// @Param request body GoogleLoginRequest true "Google ID token"
// @Success 200 {object} map[string]interface{} "Login successful"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Invalid Google token"
// @Failure 500 {object} map[string]interface{} "Failed to create user"
// @Router /users/oauth/google [post]
func (oc *OAuthController) GoogleLogin(c *gin.Context) {
	var req GoogleLoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	info, err := oc.verifyIDToken(req.IDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid Google token",
			"error":   err.Error(),
		})
		return
	}

	user, err := oc.repo.GetUserByEmail(info.Email)
	if err != nil {
		user = &models.User{
			Name:     info.Name,
			Email:    info.Email,
			Verified: info.EmailVerified == "true",
		}
		if err := oc.repo.CreateUser(user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to create user",
				"error":   "Database error",
			})
			return
		}
	}

	token, err := signToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to generate token",
			"error":   "Token signing error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Login successful",
		"data": gin.H{
			"token": token,
			"user": gin.H{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
			},
		},
	})
}

func (oc *OAuthController) verifyIDToken(idToken string) (*googleTokenInfo, error) {
	resp, err := oc.httpClient.Get(oc.tokenInfoURL + "?id_token=" + idToken)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errInvalidGoogleToken
	}

	var info googleTokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}
