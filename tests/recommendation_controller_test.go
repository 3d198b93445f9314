package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nutriwise/internal/controllers"
	"nutriwise/internal/models"
	"nutriwise/internal/recipesearch"
	"nutriwise/tests/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetRecommendations(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	analyzer := new(mocks.MockFoodAnalyzer)
	searcher := new(mocks.MockRecipeSearcher)
	controller := controllers.NewRecommendationController(userRepo, analyzer, searcher)

	diet := "vegetarian"
	userRepo.On("GetUserByID", uint(1)).Return(&models.User{
		ID:             1,
		DietPreference: &diet,
		FoodAllergies:  []string{"peanut"},
	}, nil)

	analyzer.On("GenerateText", mock.Anything, mock.Anything).
		Return(`["Lentil Curry", "Vegetable Stir Fry"]`, nil)

	searcher.On("Search", mock.Anything, "Lentil Curry", 10).Return([]recipesearch.Recipe{
		{
			Title: "Classic Lentil Curry",
			Raw:   json.RawMessage(`{"Recipe_title":"Classic Lentil Curry","ingredients":"lentils, onion, garlic"}`),
		},
		{
			Title: "Peanut Lentil Curry",
			Raw:   json.RawMessage(`{"Recipe_title":"Peanut Lentil Curry","ingredients":"lentils, peanut butter"}`),
		},
	}, nil)
	searcher.On("Search", mock.Anything, "Vegetable Stir Fry", 10).Return([]recipesearch.Recipe{
		{
			Title: "Garden Stir Fry",
			Raw:   json.RawMessage(`{"Recipe_title":"Garden Stir Fry","ingredients":"broccoli, carrot"}`),
		},
	}, nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/recommendations", addUserAuthMiddleware(1), controller.GetRecommendations)

	req := httptest.NewRequest("GET", "/recommendations", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})

	dishes := data["dishes"].([]interface{})
	assert.Equal(t, []interface{}{"Lentil Curry", "Vegetable Stir Fry"}, dishes)

	// The peanut recipe is excluded by the allergy filter.
	recipes := data["recipes"].([]interface{})
	assert.Len(t, recipes, 2)
	for _, r := range recipes {
		title := r.(map[string]interface{})["Recipe_title"].(string)
		assert.NotContains(t, title, "Peanut")
	}

	userRepo.AssertExpectations(t)
	analyzer.AssertExpectations(t)
	searcher.AssertExpectations(t)
}

func TestGetRecommendationsCapsResults(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	analyzer := new(mocks.MockFoodAnalyzer)
	searcher := new(mocks.MockRecipeSearcher)
	controller := controllers.NewRecommendationController(userRepo, analyzer, searcher)

	userRepo.On("GetUserByID", uint(1)).Return(&models.User{ID: 1}, nil)
	analyzer.On("GenerateText", mock.Anything, mock.Anything).Return(`["Rice Bowl"]`, nil)

	many := make([]recipesearch.Recipe, 15)
	for i := range many {
		many[i] = recipesearch.Recipe{
			Title: "Rice Bowl",
			Raw:   json.RawMessage(`{"Recipe_title":"Rice Bowl"}`),
		}
	}
	searcher.On("Search", mock.Anything, "Rice Bowl", 10).Return(many, nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/recommendations", addUserAuthMiddleware(1), controller.GetRecommendations)

	req := httptest.NewRequest("GET", "/recommendations", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	recipes := data["recipes"].([]interface{})
	assert.Len(t, recipes, 10)
}
