// Package genai is the adapter around the remote Gemini generateContent API.
// It is fail-fast: one attempt, no retry, and the caller surfaces a single
// failure notice to the user.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.0-flash"
)

var (
	ErrEmptyPrompt = errors.New("genai: prompt is empty")
	ErrMissingKey  = errors.New("genai: api key is not configured")
)

// Checklist is the structured generation result.
type Checklist struct {
	Title      string     `json:"title"`
	Categories []Category `json:"categories"`
}

type Category struct {
	CategoryName string   `json:"categoryName"`
	Items        []string `json:"items"`
}

type Client struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		Model:      defaultModel,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// GenerateChecklist sends a free-text goal to the model and returns the
// structured checklist. An empty-equivalent prompt is rejected before any
// network traffic.
func (c *Client) GenerateChecklist(ctx context.Context, prompt string) (Checklist, error) {
	if strings.TrimSpace(prompt) == "" {
		return Checklist{}, ErrEmptyPrompt
	}
	if c.APIKey == "" {
		return Checklist{}, ErrMissingKey
	}

	text, err := c.generate(ctx, buildChecklistPrompt(prompt), 1000)
	if err != nil {
		return Checklist{}, err
	}

	var out Checklist
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &out); err != nil {
		return Checklist{}, fmt.Errorf("genai: decode checklist: %w", err)
	}
	if err := validateChecklist(out); err != nil {
		return Checklist{}, err
	}
	return out, nil
}

// MotivationalQuote asks for a one-line encouragement matching the current
// progress. Without a configured key it returns a static fallback instead of
// failing, since the quote is decoration.
func (c *Client) MotivationalQuote(ctx context.Context, progressPct, taskCount int) (string, error) {
	if c.APIKey == "" {
		return fallbackQuote, nil
	}
	text, err := c.generate(ctx, buildQuotePrompt(progressPct, taskCount), 120)
	if err != nil {
		return "", err
	}
	quote := strings.TrimSpace(text)
	if quote == "" {
		return fallbackQuote, nil
	}
	return quote, nil
}

type generateRequest struct {
	Contents []content `json:"contents"`
	Config   genConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
	TopP            float64 `json:"topP"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	body := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		Config: genConfig{
			Temperature:     0.3,
			MaxOutputTokens: maxTokens,
			TopP:            0.8,
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("genai: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.BaseURL, c.Model, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("genai: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("genai: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("genai: api returned status %d", resp.StatusCode)
	}

	var res generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", fmt.Errorf("genai: decode response: %w", err)
	}
	if len(res.Candidates) == 0 || len(res.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("genai: no candidates returned")
	}
	return res.Candidates[0].Content.Parts[0].Text, nil
}

// stripCodeFence tolerates models that wrap the JSON in a markdown block.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

func validateChecklist(c Checklist) error {
	if strings.TrimSpace(c.Title) == "" {
		return errors.New("genai: checklist title is empty")
	}
	if len(c.Categories) == 0 {
		return errors.New("genai: checklist has no categories")
	}
	for i, cat := range c.Categories {
		if strings.TrimSpace(cat.CategoryName) == "" {
			return fmt.Errorf("genai: category %d has empty name", i)
		}
		for j, item := range cat.Items {
			if strings.TrimSpace(item) == "" {
				return fmt.Errorf("genai: category %q item %d is empty", cat.CategoryName, j)
			}
		}
	}
	return nil
}
