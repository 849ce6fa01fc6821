// Package llm defines the provider interface and the Anthropic implementation
// used to put questionnaire statements to a model.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Settings configures the LLM request.
type Settings struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// Provider generates text from a single-turn prompt.
type Provider interface {
	Generate(ctx context.Context, prompt string, settings Settings) (string, error)
	Name() string
}

var (
	// ErrRateLimited reports that the provider asked the caller to slow down.
	ErrRateLimited = errors.New("llm: rate limited")
	// ErrNoText reports a well-formed response without any text block.
	ErrNoText = errors.New("llm: no text content in response")
)

// APIError is a non-2xx answer from the provider.
type APIError struct {
	Provider   string
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("%s: API returned %d (%s): %s", e.Provider, e.StatusCode, e.Type, e.Message)
	}
	return fmt.Sprintf("%s: API returned %d: %s", e.Provider, e.StatusCode, e.Message)
}

// Is lets errors.Is(err, ErrRateLimited) match throttling responses.
func (e *APIError) Is(target error) bool {
	return target == ErrRateLimited && e.RateLimited()
}

// RateLimited reports whether the response was a throttling signal.
func (e *APIError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.Type == "rate_limit_error"
}
