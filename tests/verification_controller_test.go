package tests

import (
	"bytes"
	"encoding/json"
	"errors"
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

func setupVerificationControllerWithMocks() (*controllers.VerificationController, *mocks.MockVerificationRepository, *mocks.MockUserRepository) {
	mockVerificationRepo := new(mocks.MockVerificationRepository)
	mockUserRepo := new(mocks.MockUserRepository)
	controller := controllers.NewVerificationController(mockVerificationRepo, mockUserRepo)
	return controller, mockVerificationRepo, mockUserRepo
}

func TestSendVerificationCode(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockVerificationRepository, *mocks.MockUserRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful send",
			requestBody: map[string]interface{}{
				"email": "jane@example.com",
			},
			setupMocks: func(verificationRepo *mocks.MockVerificationRepository, userRepo *mocks.MockUserRepository) {
				userRepo.On("GetUserByEmail", "jane@example.com").Return(&models.User{ID: 1, Email: "jane@example.com"}, nil)
				verificationRepo.On("DeleteByEmail", "jane@example.com").Return(nil)
				verificationRepo.On("CreateVerification", mock.AnythingOfType("*models.Verification")).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Verification code sent successfully",
		},
		{
			name: "unknown user",
			requestBody: map[string]interface{}{
				"email": "nobody@example.com",
			},
			setupMocks: func(verificationRepo *mocks.MockVerificationRepository, userRepo *mocks.MockUserRepository) {
				userRepo.On("GetUserByEmail", "nobody@example.com").Return(nil, errors.New("not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "User not found",
		},
		{
			name: "invalid email",
			requestBody: map[string]interface{}{
				"email": "not-an-email",
			},
			setupMocks:     func(verificationRepo *mocks.MockVerificationRepository, userRepo *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockVerificationRepo, mockUserRepo := setupVerificationControllerWithMocks()
			tt.setupMocks(mockVerificationRepo, mockUserRepo)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.POST("/verify/send", controller.SendVerificationCode)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/verify/send", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedMsg, response["message"])

			mockVerificationRepo.AssertExpectations(t)
			mockUserRepo.AssertExpectations(t)
		})
	}
}

func TestVerifyCode(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockVerificationRepository, *mocks.MockUserRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful verification",
			requestBody: map[string]interface{}{
				"email": "jane@example.com",
				"code":  "123456",
			},
			setupMocks: func(verificationRepo *mocks.MockVerificationRepository, userRepo *mocks.MockUserRepository) {
				verificationRepo.On("FindByEmailAndCode", "jane@example.com", "123456").Return(&models.Verification{
					Email: "jane@example.com",
					Code:  "123456",
				}, nil)
				userRepo.On("SetUserVerified", "jane@example.com").Return(nil)
				verificationRepo.On("DeleteByEmail", "jane@example.com").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Verification successful",
		},
		{
			name: "wrong code",
			requestBody: map[string]interface{}{
				"email": "jane@example.com",
				"code":  "000000",
			},
			setupMocks: func(verificationRepo *mocks.MockVerificationRepository, userRepo *mocks.MockUserRepository) {
				verificationRepo.On("FindByEmailAndCode", "jane@example.com", "000000").Return(nil, errors.New("not found"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid or expired verification code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockVerificationRepo, mockUserRepo := setupVerificationControllerWithMocks()
			tt.setupMocks(mockVerificationRepo, mockUserRepo)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.POST("/verify", controller.VerifyCode)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/verify", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedMsg, response["message"])

			mockVerificationRepo.AssertExpectations(t)
			mockUserRepo.AssertExpectations(t)
		})
	}
}
