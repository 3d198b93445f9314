package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nutriwise/internal/controllers"
	"nutriwise/internal/models"
	"nutriwise/tests/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupDailyLogControllerWithMocks() (*controllers.DailyLogController, *mocks.MockDailyLogRepository) {
	mockRepo := new(mocks.MockDailyLogRepository)
	controller := controllers.NewDailyLogController(mockRepo)
	return controller, mockRepo
}

func TestGetDailyLog(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMocks     func(*mocks.MockDailyLogRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:  "explicit date",
			query: "?date=2026-08-29",
			setupMocks: func(repo *mocks.MockDailyLogRepository) {
				date := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
				repo.On("FindOrCreateByUserAndDate", uint(1), date).Return(&models.DailyLog{
					ID:     5,
					UserID: 1,
					Date:   date,
					Meals:  []models.Meal{},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Daily log retrieved successfully",
		},
		{
			name:  "defaults to today",
			query: "",
			setupMocks: func(repo *mocks.MockDailyLogRepository) {
				repo.On("FindOrCreateByUserAndDate", uint(1), mock.AnythingOfType("time.Time")).Return(&models.DailyLog{
					ID:     6,
					UserID: 1,
					Meals:  []models.Meal{},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Daily log retrieved successfully",
		},
		{
			name:           "malformed date",
			query:          "?date=29-08-2026",
			setupMocks:     func(repo *mocks.MockDailyLogRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid date format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupDailyLogControllerWithMocks()
			tt.setupMocks(mockRepo)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.GET("/daily-logs", addUserAuthMiddleware(1), controller.GetDailyLog)

			req := httptest.NewRequest("GET", "/daily-logs"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedMsg, response["message"])

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUpdateActivity(t *testing.T) {
	start := time.Date(2026, 8, 29, 7, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockDailyLogRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "records exercise window",
			requestBody: map[string]interface{}{
				"date":                "2026-08-29",
				"exercise_start_time": start.Format(time.RFC3339),
				"exercise_end_time":   end.Format(time.RFC3339),
				"exercise_intensity":  "MODERATE",
			},
			setupMocks: func(repo *mocks.MockDailyLogRepository) {
				date := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
				repo.On("UpdateActivity", uint(1), date, mock.Anything).Return(&models.DailyLog{
					ID:     5,
					UserID: 1,
					Date:   date,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Activity recorded successfully",
		},
		{
			name: "rejects unknown intensity",
			requestBody: map[string]interface{}{
				"date":               "2026-08-29",
				"exercise_intensity": "EXTREME",
			},
			setupMocks:     func(repo *mocks.MockDailyLogRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupDailyLogControllerWithMocks()
			tt.setupMocks(mockRepo)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.POST("/daily-logs", addUserAuthMiddleware(1), controller.UpdateActivity)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/daily-logs", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedMsg, response["message"])

			mockRepo.AssertExpectations(t)
		})
	}
}
