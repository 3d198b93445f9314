package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"nutriwise/internal/controllers"
	"nutriwise/internal/models"
	"nutriwise/tests/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// Test helper functions
func setupUserTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func setupUserControllerWithMocks() (*controllers.UserController, *mocks.MockUserRepository, *mocks.MockResetPasswordRepository) {
	mockUserRepo := new(mocks.MockUserRepository)
	mockResetPasswordRepo := new(mocks.MockResetPasswordRepository)
	controller := controllers.NewUserController(mockUserRepo, mockResetPasswordRepo)
	return controller, mockUserRepo, mockResetPasswordRepo
}

func addUserAuthMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func hashTestPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockUserRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful registration",
			requestBody: map[string]interface{}{
				"name":     "Jane Doe",
				"email":    "jane@example.com",
				"password": "password123",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("GetUserByEmail", "jane@example.com").Return(nil, errors.New("not found"))
				userRepo.On("CreateUser", mock.AnythingOfType("*models.User")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "User registered. Please verify your email.",
		},
		{
			name: "duplicate email",
			requestBody: map[string]interface{}{
				"name":     "Jane Doe",
				"email":    "jane@example.com",
				"password": "password123",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("GetUserByEmail", "jane@example.com").Return(&models.User{ID: 1, Email: "jane@example.com"}, nil)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "Email already registered",
		},
		{
			name: "password too short",
			requestBody: map[string]interface{}{
				"name":     "Jane Doe",
				"email":    "jane@example.com",
				"password": "short",
			},
			setupMocks:     func(userRepo *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockUserRepo, _ := setupUserControllerWithMocks()
			tt.setupMocks(mockUserRepo)

			router := setupUserTestRouter()
			router.POST("/users", controller.CreateUser)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/users", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedMsg, response["message"])

			mockUserRepo.AssertExpectations(t)
		})
	}
}

func TestLoginUser(t *testing.T) {
	os.Setenv("JWT_SECRET_KEY", "test-secret-key")
	defer os.Unsetenv("JWT_SECRET_KEY")

	testPassword := "password123"
	testHash := hashTestPassword(t, testPassword)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockUserRepository)
		expectedStatus int
		expectedMsg    string
		checkToken     bool
	}{
		{
			name: "successful login",
			requestBody: map[string]interface{}{
				"email":    "jane@example.com",
				"password": testPassword,
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("GetUserByEmail", "jane@example.com").Return(&models.User{
					ID:       1,
					Email:    "jane@example.com",
					Password: testHash,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Login successful",
			checkToken:     true,
		},
		{
			name: "unknown email",
			requestBody: map[string]interface{}{
				"email":    "nobody@example.com",
				"password": "password123",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("GetUserByEmail", "nobody@example.com").Return(nil, errors.New("not found"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid credentials",
		},
		{
			name: "wrong password",
			requestBody: map[string]interface{}{
				"email":    "jane@example.com",
				"password": "wrongpassword",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("GetUserByEmail", "jane@example.com").Return(&models.User{
					ID:       1,
					Email:    "jane@example.com",
					Password: testHash,
				}, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockUserRepo, _ := setupUserControllerWithMocks()
			tt.setupMocks(mockUserRepo)

			router := setupUserTestRouter()
			router.POST("/users/login", controller.LoginUser)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/users/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedMsg, response["message"])

			if tt.checkToken {
				data := response["data"].(map[string]interface{})
				assert.NotEmpty(t, data["token"])
			}

			mockUserRepo.AssertExpectations(t)
		})
	}
}

func TestGetCurrentUser(t *testing.T) {
	controller, mockUserRepo, _ := setupUserControllerWithMocks()
	mockUserRepo.On("GetUserByID", uint(1)).Return(&models.User{
		ID:    1,
		Name:  "Jane Doe",
		Email: "jane@example.com",
	}, nil)

	router := setupUserTestRouter()
	router.GET("/users/me", addUserAuthMiddleware(1), controller.GetCurrentUser)

	req := httptest.NewRequest("GET", "/users/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "User retrieved successfully", response["message"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "jane@example.com", data["email"])

	mockUserRepo.AssertExpectations(t)
}

func TestPatchUserStripsProtectedFields(t *testing.T) {
	controller, mockUserRepo, _ := setupUserControllerWithMocks()
	mockUserRepo.On("PatchUser", uint(1), map[string]interface{}{
		"name": "New Name",
	}).Return(nil)

	router := setupUserTestRouter()
	router.PATCH("/users/me", addUserAuthMiddleware(1), controller.PatchUser)

	body, _ := json.Marshal(map[string]interface{}{
		"name":     "New Name",
		"email":    "sneaky@example.com",
		"password": "hacked",
		"bmi":      1.0,
	})
	req := httptest.NewRequest("PATCH", "/users/me", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUserRepo.AssertExpectations(t)
}
