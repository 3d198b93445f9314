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

func setupProfileControllerWithMocks() (*controllers.ProfileController, *mocks.MockUserRepository) {
	mockUserRepo := new(mocks.MockUserRepository)
	controller := controllers.NewProfileController(mockUserRepo)
	return controller, mockUserRepo
}

func floatPtr(v float64) *float64 { return &v }

func TestGetProfile(t *testing.T) {
	controller, mockUserRepo := setupProfileControllerWithMocks()
	mockUserRepo.On("GetUserByID", uint(1)).Return(&models.User{
		ID:     1,
		Email:  "jane@example.com",
		Height: floatPtr(170),
		Weight: floatPtr(65),
		BMI:    floatPtr(22.49),
	}, nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/profile", addUserAuthMiddleware(1), controller.GetProfile)

	req := httptest.NewRequest("GET", "/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, 22.49, data["bmi"])

	mockUserRepo.AssertExpectations(t)
}

func TestUpdateProfile(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockUserRepository)
		expectedStatus int
		expectedMsg    string
		checkBMI       *float64
	}{
		{
			name: "full update recomputes bmi",
			requestBody: map[string]interface{}{
				"height":        175.0,
				"weight":        70.0,
				"gender":        "female",
				"goals":         "loseWeight",
				"year_of_birth": 1995,
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("GetUserByID", uint(1)).Return(&models.User{ID: 1}, nil)
				userRepo.On("UpdateUser", mock.AnythingOfType("*models.User")).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Profile updated successfully",
			checkBMI:       floatPtr(22.86),
		},
		{
			name: "weight only uses stored height",
			requestBody: map[string]interface{}{
				"weight": 80.0,
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("GetUserByID", uint(1)).Return(&models.User{
					ID:     1,
					Height: floatPtr(200),
				}, nil)
				userRepo.On("UpdateUser", mock.AnythingOfType("*models.User")).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Profile updated successfully",
			checkBMI:       floatPtr(20),
		},
		{
			name: "height out of range",
			requestBody: map[string]interface{}{
				"height": 60.0,
			},
			setupMocks:     func(userRepo *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid profile data",
		},
		{
			name: "weight out of range",
			requestBody: map[string]interface{}{
				"weight": 600.0,
			},
			setupMocks:     func(userRepo *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid profile data",
		},
		{
			name: "year of birth too early",
			requestBody: map[string]interface{}{
				"year_of_birth": 1850,
			},
			setupMocks:     func(userRepo *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid profile data",
		},
		{
			name: "unknown goal",
			requestBody: map[string]interface{}{
				"goals": "bulkFast",
			},
			setupMocks:     func(userRepo *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid profile data",
		},
		{
			name: "unknown diet preference",
			requestBody: map[string]interface{}{
				"diet_preference": "carnivore",
			},
			setupMocks:     func(userRepo *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid profile data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockUserRepo := setupProfileControllerWithMocks()
			tt.setupMocks(mockUserRepo)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.PUT("/profile", addUserAuthMiddleware(1), controller.UpdateProfile)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("PUT", "/profile", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedMsg, response["message"])

			if tt.checkBMI != nil {
				data := response["data"].(map[string]interface{})
				assert.InDelta(t, *tt.checkBMI, data["bmi"], 0.01)
			}

			mockUserRepo.AssertExpectations(t)
		})
	}
}
