// Package completion talks to the chat completion APIs that synthesize
// course content.
package completion

import "context"

const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 4000
	DefaultOpenAIModel = "gpt-3.5-turbo"
	DefaultGeminiModel = "gemini-1.5-flash"
)

// Prompt is a system instruction plus a single user message.
type Prompt struct {
	System string
	User   string
}

// Settings are the sampling parameters sent with every request.
type Settings struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

func (s Settings) withDefaults(model string) Settings {
	if s.Model == "" {
		s.Model = model
	}
	if s.Temperature == 0 {
		s.Temperature = DefaultTemperature
	}
	if s.MaxTokens == 0 {
		s.MaxTokens = DefaultMaxTokens
	}
	return s
}

// Client completes a prompt into raw model text.
type Client interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}
