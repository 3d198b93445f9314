package mocks

import (
	"context"

	"nutriwise/internal/recipesearch"
	"nutriwise/internal/spoonacular"

	"github.com/stretchr/testify/mock"
)

// MockImageUploader stands in for the S3 uploader.
type MockImageUploader struct {
	mock.Mock
}

func (m *MockImageUploader) UploadBase64Image(ctx context.Context, dataURL, folder string) (string, error) {
	args := m.Called(ctx, dataURL, folder)
	return args.String(0), args.Error(1)
}

// MockFoodAnalyzer stands in for the Gemini client.
type MockFoodAnalyzer struct {
	mock.Mock
}

func (m *MockFoodAnalyzer) GenerateText(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockFoodAnalyzer) GenerateVision(ctx context.Context, prompt, imageURL string) (string, error) {
	args := m.Called(ctx, prompt, imageURL)
	return args.String(0), args.Error(1)
}

// MockRecipeDiscoverer stands in for the Spoonacular client.
type MockRecipeDiscoverer struct {
	mock.Mock
}

func (m *MockRecipeDiscoverer) ComplexSearch(ctx context.Context, params spoonacular.SearchParams) ([]spoonacular.Recipe, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]spoonacular.Recipe), args.Error(1)
}

func (m *MockRecipeDiscoverer) RecipeNutrition(ctx context.Context, recipeID int64) (*spoonacular.Nutrition, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*spoonacular.Nutrition), args.Error(1)
}

// MockRecipeSearcher stands in for the recipe database client.
type MockRecipeSearcher struct {
	mock.Mock
}

func (m *MockRecipeSearcher) Search(ctx context.Context, searchText string, pageSize int) ([]recipesearch.Recipe, error) {
	args := m.Called(ctx, searchText, pageSize)
	return args.Get(0).([]recipesearch.Recipe), args.Error(1)
}

func (m *MockRecipeSearcher) SearchByContinent(ctx context.Context, continent string, pageSize int) ([]recipesearch.Recipe, error) {
	args := m.Called(ctx, continent, pageSize)
	return args.Get(0).([]recipesearch.Recipe), args.Error(1)
}
