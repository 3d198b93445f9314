package mocks

import (
	"time"

	"nutriwise/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) PatchUser(id uint, data map[string]interface{}) error {
	args := m.Called(id, data)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) SetUserVerified(email string) error {
	args := m.Called(email)
	return args.Error(0)
}

func (m *MockUserRepository) IsUserVerified(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

// Shared MockResetPasswordRepository
type MockResetPasswordRepository struct {
	mock.Mock
}

func (m *MockResetPasswordRepository) CreateResetPassword(reset *models.ResetPassword) error {
	args := m.Called(reset)
	return args.Error(0)
}

func (m *MockResetPasswordRepository) FindByEmailAndCode(email, code string) (*models.ResetPassword, error) {
	args := m.Called(email, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ResetPassword), args.Error(1)
}

func (m *MockResetPasswordRepository) DeleteByEmail(email string) error {
	args := m.Called(email)
	return args.Error(0)
}

// Shared MockVerificationRepository
type MockVerificationRepository struct {
	mock.Mock
}

func (m *MockVerificationRepository) CreateVerification(verification *models.Verification) error {
	args := m.Called(verification)
	return args.Error(0)
}

func (m *MockVerificationRepository) FindByEmail(email string) (*models.Verification, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Verification), args.Error(1)
}

func (m *MockVerificationRepository) FindByEmailAndCode(email, code string) (*models.Verification, error) {
	args := m.Called(email, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Verification), args.Error(1)
}

func (m *MockVerificationRepository) DeleteByEmail(email string) error {
	args := m.Called(email)
	return args.Error(0)
}

// Shared MockDailyLogRepository
type MockDailyLogRepository struct {
	mock.Mock
}

func (m *MockDailyLogRepository) FindOrCreateByUserAndDate(userID uint, date time.Time) (*models.DailyLog, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyLog), args.Error(1)
}

func (m *MockDailyLogRepository) FindByID(id uint) (*models.DailyLog, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyLog), args.Error(1)
}

func (m *MockDailyLogRepository) FindRecentByUserID(userID uint, limit int) ([]models.DailyLog, error) {
	args := m.Called(userID, limit)
	return args.Get(0).([]models.DailyLog), args.Error(1)
}

func (m *MockDailyLogRepository) UpdateActivity(userID uint, date time.Time, data map[string]interface{}) (*models.DailyLog, error) {
	args := m.Called(userID, date, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyLog), args.Error(1)
}

// Shared MockMealRepository
type MockMealRepository struct {
	mock.Mock
}

func (m *MockMealRepository) CreateWithTotals(meal *models.Meal) error {
	args := m.Called(meal)
	return args.Error(0)
}

func (m *MockMealRepository) FindByID(id uint) (*models.Meal, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockMealRepository) FindByDailyLogID(dailyLogID uint) ([]models.Meal, error) {
	args := m.Called(dailyLogID)
	return args.Get(0).([]models.Meal), args.Error(1)
}

// Shared MockDishRepository
type MockDishRepository struct {
	mock.Mock
}

func (m *MockDishRepository) Create(dish *models.Dish) error {
	args := m.Called(dish)
	return args.Error(0)
}

func (m *MockDishRepository) FindAll() ([]models.Dish, error) {
	args := m.Called()
	return args.Get(0).([]models.Dish), args.Error(1)
}

func (m *MockDishRepository) FindByID(id uint) (*models.Dish, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dish), args.Error(1)
}

func (m *MockDishRepository) FindByName(name string) (*models.Dish, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dish), args.Error(1)
}

// Shared MockSavedRecipeRepository
type MockSavedRecipeRepository struct {
	mock.Mock
}

func (m *MockSavedRecipeRepository) Create(recipe *models.SavedRecipe) error {
	args := m.Called(recipe)
	return args.Error(0)
}

func (m *MockSavedRecipeRepository) FindByUserAndRecipeID(userID uint, recipeID string) (*models.SavedRecipe, error) {
	args := m.Called(userID, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SavedRecipe), args.Error(1)
}

func (m *MockSavedRecipeRepository) FindAllByUserID(userID uint) ([]models.SavedRecipe, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.SavedRecipe), args.Error(1)
}

func (m *MockSavedRecipeRepository) UpdateRating(userID, id uint, rating int) (*models.SavedRecipe, error) {
	args := m.Called(userID, id, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SavedRecipe), args.Error(1)
}

func (m *MockSavedRecipeRepository) Delete(userID, id uint) error {
	args := m.Called(userID, id)
	return args.Error(0)
}

// Shared MockCommunityRepository
type MockCommunityRepository struct {
	mock.Mock
}

func (m *MockCommunityRepository) Create(recipe *models.CommunityRecipe) error {
	args := m.Called(recipe)
	return args.Error(0)
}

func (m *MockCommunityRepository) Search(query string) ([]models.CommunityRecipe, error) {
	args := m.Called(query)
	return args.Get(0).([]models.CommunityRecipe), args.Error(1)
}

func (m *MockCommunityRepository) FindByID(id uint) (*models.CommunityRecipe, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CommunityRecipe), args.Error(1)
}
