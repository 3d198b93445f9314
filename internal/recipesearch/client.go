// Package recipesearch wraps the hosted recipe-search REST API
// (cosylab.iiitd.edu.in), which serves regional recipe records with
// nutrient estimates.
package recipesearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"nutriwise/internal/cache"
)

const (
	defaultBaseURL = "https://cosylab.iiitd.edu.in/recipe-search"
	defaultAPIKey  = "cosylab"

	cacheTTL = 30 * time.Minute
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      *cache.RedisClient
}

// Recipe is the typed projection of an upstream recipe record. Raw keeps
// the full serialized object so callers can run text-level exclusion
// checks against every field.
type Recipe struct {
	ID        json.Number `json:"Recipe_id"`
	Title     string      `json:"Recipe_title"`
	ImageURL  string      `json:"img_url"`
	Calories  string      `json:"Calories"`
	CookTime  string      `json:"cook_time"`
	PrepTime  string      `json:"prep_time"`
	Region    string      `json:"Region"`
	SubRegion string      `json:"Sub_region"`
	Continent string      `json:"Continent"`

	Raw json.RawMessage `json:"-"`
}

type searchResponse struct {
	Payload struct {
		Data []json.RawMessage `json:"data"`
	} `json:"payload"`
}

// NewClient builds a client. The redis cache is optional; a nil cache
// disables caching.
func NewClient(redisCache *cache.RedisClient) *Client {
	baseURL := os.Getenv("RECIPE_SEARCH_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	apiKey := os.Getenv("RECIPE_SEARCH_API_KEY")
	if apiKey == "" {
		apiKey = defaultAPIKey
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
		cache:      redisCache,
	}
}

// Search returns recipes matching the free-text query. Results are
// cached per (query, pageSize) for 30 minutes.
func (c *Client) Search(ctx context.Context, searchText string, pageSize int) ([]Recipe, error) {
	cacheKey := fmt.Sprintf("recipe:%s:%d", searchText, pageSize)
	if c.cache != nil {
		var cached []json.RawMessage
		if hit, err := c.cache.GetSearchResults(ctx, cacheKey, &cached); err == nil && hit {
			return decodeRecipes(cached)
		}
	}

	raw, err := c.fetch(ctx, "/recipe", searchText, pageSize)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		// Cache failures only cost the next caller a refetch.
		_ = c.cache.StoreSearchResults(ctx, cacheKey, raw, cacheTTL)
	}

	return decodeRecipes(raw)
}

// SearchByContinent returns recipes for a continent, used by the recipe
// map view.
func (c *Client) SearchByContinent(ctx context.Context, continent string, pageSize int) ([]Recipe, error) {
	raw, err := c.fetch(ctx, "/continents", continent, pageSize)
	if err != nil {
		return nil, err
	}
	return decodeRecipes(raw)
}

func (c *Client) fetch(ctx context.Context, path, searchText string, pageSize int) ([]json.RawMessage, error) {
	query := url.Values{}
	query.Set("searchText", searchText)
	query.Set("pageSize", strconv.Itoa(pageSize))

	requestURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())
	request, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("x-api-key", c.apiKey)
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recipe search API returned non-200 status code: %d", response.StatusCode)
	}

	var result searchResponse
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Payload.Data, nil
}

func decodeRecipes(raw []json.RawMessage) ([]Recipe, error) {
	recipes := make([]Recipe, 0, len(raw))
	for _, item := range raw {
		var recipe Recipe
		if err := json.Unmarshal(item, &recipe); err != nil {
			return nil, fmt.Errorf("failed to parse recipe record: %w", err)
		}
		recipe.Raw = item
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}
