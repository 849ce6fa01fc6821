package llm

import (
	"context"
	"fmt"
	"strings"
)

// ResolveProvider builds the Anthropic provider for the configured model.
// Model names may carry an "anthropic:" prefix; anything else that is not a
// Claude model is rejected.
func ResolveProvider(apiKey, apiURL, model string) (Provider, error) {
	p, err := NewAnthropic(apiKey, apiURL)
	if err != nil {
		return nil, err
	}
	if model == "" {
		return p, nil
	}

	lower := strings.ToLower(model)
	switch {
	case strings.HasPrefix(lower, "anthropic:"):
		return &modelOverride{Provider: p, model: model[len("anthropic:"):]}, nil
	case strings.HasPrefix(lower, "claude"):
		return &modelOverride{Provider: p, model: model}, nil
	}
	return nil, fmt.Errorf("llm: unsupported model %q", model)
}

// modelOverride wraps a provider to override the model in settings.
type modelOverride struct {
	Provider
	model string
}

func (m *modelOverride) Generate(ctx context.Context, prompt string, s Settings) (string, error) {
	s.Model = m.model
	return m.Provider.Generate(ctx, prompt, s)
}
