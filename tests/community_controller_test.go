package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nutriwise/internal/controllers"
	"nutriwise/internal/models"
	"nutriwise/tests/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupCommunityControllerWithMocks() (*controllers.CommunityController, *mocks.MockCommunityRepository, *mocks.MockUserRepository) {
	mockCommunityRepo := new(mocks.MockCommunityRepository)
	mockUserRepo := new(mocks.MockUserRepository)
	controller := controllers.NewCommunityController(mockCommunityRepo, mockUserRepo)
	return controller, mockCommunityRepo, mockUserRepo
}

func TestCreateCommunityRecipe(t *testing.T) {
	controller, mockCommunityRepo, mockUserRepo := setupCommunityControllerWithMocks()

	mockUserRepo.On("GetUserByID", uint(1)).Return(&models.User{ID: 1, Email: "jane@example.com"}, nil)
	mockCommunityRepo.On("Create", mock.MatchedBy(func(recipe *models.CommunityRecipe) bool {
		return recipe.UserID == 1 &&
			recipe.UserEmail == "jane@example.com" &&
			recipe.Name == "Grandma's lentil soup"
	})).Return(nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/community", addUserAuthMiddleware(1), controller.CreateRecipe)

	body, _ := json.Marshal(map[string]interface{}{
		"name":        "Grandma's lentil soup",
		"description": "Slow-simmered red lentils",
		"ingredients": []string{"red lentils", "onion", "cumin"},
		"steps":       "Simmer everything for an hour.",
		"tags":        []string{"soup", "vegan"},
	})
	req := httptest.NewRequest("POST", "/community", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Recipe shared successfully", response["message"])

	mockCommunityRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestCreateCommunityRecipeValidation(t *testing.T) {
	controller, _, _ := setupCommunityControllerWithMocks()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/community", addUserAuthMiddleware(1), controller.CreateRecipe)

	body, _ := json.Marshal(map[string]interface{}{
		"description": "missing name, ingredients and steps",
	})
	req := httptest.NewRequest("POST", "/community", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchCommunityRecipes(t *testing.T) {
	controller, mockCommunityRepo, _ := setupCommunityControllerWithMocks()

	mockCommunityRepo.On("Search", "lentil").Return([]models.CommunityRecipe{
		{ID: 1, Name: "Grandma's lentil soup"},
	}, nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/community", addUserAuthMiddleware(1), controller.SearchRecipes)

	req := httptest.NewRequest("GET", "/community?q=lentil", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	recipes := response["data"].([]interface{})
	assert.Len(t, recipes, 1)

	mockCommunityRepo.AssertExpectations(t)
}
