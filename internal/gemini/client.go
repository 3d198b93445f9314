package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

	// TextModel handles prompt-only requests (advice, suggestions).
	TextModel = "gemini-1.5-flash"
	// VisionModel handles requests carrying a food image.
	VisionModel = "gemini-1.5-pro"
)

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type Part struct {
	Text     string    `json:"text,omitempty"`
	FileData *FileData `json:"file_data,omitempty"`
}

type FileData struct {
	MimeType string `json:"mime_type,omitempty"`
	FileURI  string `json:"file_uri"`
}

type Content struct {
	Parts []Part `json:"parts"`
}

type generateRequest struct {
	Contents []Content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func NewClient() (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
	}, nil
}

// GenerateText sends a prompt-only request and returns the raw model text.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, TextModel, []Part{{Text: prompt}})
}

// GenerateVision sends a prompt plus an image URL and returns the raw
// model text.
func (c *Client) GenerateVision(ctx context.Context, prompt, imageURL string) (string, error) {
	parts := []Part{
		{Text: prompt},
		{FileData: &FileData{FileURI: imageURL}},
	}
	return c.generate(ctx, VisionModel, parts)
}

func (c *Client) generate(ctx context.Context, model string, parts []Part) (string, error) {
	reqBody := generateRequest{
		Contents: []Content{{Parts: parts}},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)
	request, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		var errorResponse struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(response.Body).Decode(&errorResponse); err != nil {
			return "", fmt.Errorf("gemini API returned non-200 status code: %d", response.StatusCode)
		}
		return "", fmt.Errorf("gemini API error: %s", errorResponse.Error.Message)
	}

	var result generateResponse
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no completion candidates returned")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
