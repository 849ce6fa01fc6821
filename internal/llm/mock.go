package llm

import "context"

// MockReply is one scripted provider result.
type MockReply struct {
	Text string
	Err  error
}

// MockProvider is a test double that plays back scripted replies in order.
// Once the script runs out the last reply repeats.
type MockProvider struct {
	Replies []MockReply
	Prompts []string
	Calls   []Settings
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) Generate(_ context.Context, prompt string, s Settings) (string, error) {
	n := len(m.Prompts)
	m.Prompts = append(m.Prompts, prompt)
	m.Calls = append(m.Calls, s)
	if len(m.Replies) == 0 {
		return "", ErrNoText
	}
	if n >= len(m.Replies) {
		n = len(m.Replies) - 1
	}
	r := m.Replies[n]
	return r.Text, r.Err
}
