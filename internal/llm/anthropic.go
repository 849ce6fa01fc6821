package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	// AnthropicAPIURL is the Messages endpoint.
	AnthropicAPIURL       = "https://api.anthropic.com/v1/messages"
	anthropicDefaultModel = "claude-sonnet-4-20250514"
	anthropicAPIVersion   = "2023-06-01"
)

// AnthropicProvider implements Provider using the Anthropic Messages API.
type AnthropicProvider struct {
	apiKey string
	apiURL string
	client *http.Client
}

// NewAnthropic creates an Anthropic provider. An empty apiURL selects the
// public endpoint.
func NewAnthropic(apiKey, apiURL string) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic: API key not set")
	}
	if apiURL == "" {
		apiURL = AnthropicAPIURL
	}
	return &AnthropicProvider{apiKey: apiKey, apiURL: apiURL, client: &http.Client{}}, nil
}

func (a *AnthropicProvider) Name() string { return "anthropic" }

// Generate sends one user turn and returns the first text block of the reply.
func (a *AnthropicProvider) Generate(ctx context.Context, prompt string, s Settings) (string, error) {
	model := s.Model
	if model == "" {
		model = anthropicDefaultModel
	}

	maxTokens := s.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 25
	}

	reqBody := anthropicRequest{
		Model:       model,
		MaxTokens:   maxTokens,
		Temperature: &s.Temperature,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("anthropic: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("anthropic: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", a.apiKey)
	req.Header.Set("Anthropic-Version", anthropicAPIVersion)

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("anthropic: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("anthropic: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", newAnthropicError(resp.StatusCode, respBody)
	}

	var result anthropicResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("anthropic: parse response: %w", err)
	}

	// Only the first block counts; a leading non-text block is treated as no answer.
	if len(result.Content) == 0 || result.Content[0].Type != "text" {
		return "", fmt.Errorf("anthropic: %w", ErrNoText)
	}
	return result.Content[0].Text, nil
}

func newAnthropicError(status int, body []byte) *APIError {
	apiErr := &APIError{Provider: "anthropic", StatusCode: status}
	var env anthropicErrorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error.Message != "" {
		apiErr.Type = env.Error.Type
		apiErr.Message = env.Error.Message
		return apiErr
	}
	apiErr.Message = strings.TrimSpace(string(body))
	return apiErr
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature *float64           `json:"temperature,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []anthropicContentBlock `json:"content"`
}

type anthropicContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type anthropicErrorEnvelope struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}
