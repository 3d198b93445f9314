package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
)

const defaultBaseURL = "https://api.spoonacular.com/recipes"

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// SearchParams mirrors the complexSearch query surface this application
// uses. Zero values are omitted from the request.
type SearchParams struct {
	Diet         string
	Intolerances []string
	Cuisine      string
	MinProtein   int
	MaxCalories  int
	Number       int
	Sort         string
}

type Recipe struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Image     string `json:"image"`
	ImageType string `json:"imageType"`
}

// Nutrition is the nutritionWidget payload. Spoonacular returns the
// headline values as display strings ("316 kcal", "12g").
type Nutrition struct {
	Calories string `json:"calories"`
	Carbs    string `json:"carbs"`
	Fat      string `json:"fat"`
	Protein  string `json:"protein"`
}

func NewClient() (*Client, error) {
	apiKey := os.Getenv("SPOONACULAR_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("SPOONACULAR_API_KEY environment variable is not set")
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
	}, nil
}

// ComplexSearch runs a filtered recipe search and returns the result page.
func (c *Client) ComplexSearch(ctx context.Context, params SearchParams) ([]Recipe, error) {
	query := url.Values{}
	query.Set("apiKey", c.apiKey)

	number := params.Number
	if number <= 0 {
		number = 10
	}
	query.Set("number", strconv.Itoa(number))

	if params.Diet != "" {
		query.Set("diet", params.Diet)
	}
	if len(params.Intolerances) > 0 {
		query.Set("intolerances", strings.Join(params.Intolerances, ","))
	}
	if params.Cuisine != "" {
		query.Set("cuisine", params.Cuisine)
	}
	if params.MinProtein > 0 {
		query.Set("minProtein", strconv.Itoa(params.MinProtein))
	}
	if params.MaxCalories > 0 {
		query.Set("maxCalories", strconv.Itoa(params.MaxCalories))
	}
	if params.Sort != "" {
		query.Set("sort", params.Sort)
	}

	requestURL := fmt.Sprintf("%s/complexSearch?%s", c.baseURL, query.Encode())
	request, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spoonacular API returned non-200 status code: %d", response.StatusCode)
	}

	var result struct {
		Results []Recipe `json:"results"`
	}
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Results, nil
}

// RecipeNutrition fetches the headline nutrition values for one recipe.
func (c *Client) RecipeNutrition(ctx context.Context, recipeID int64) (*Nutrition, error) {
	requestURL := fmt.Sprintf("%s/%d/nutritionWidget.json?apiKey=%s", c.baseURL, recipeID, c.apiKey)
	request, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spoonacular API returned non-200 status code: %d", response.StatusCode)
	}

	var nutrition Nutrition
	if err := json.NewDecoder(response.Body).Decode(&nutrition); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &nutrition, nil
}
