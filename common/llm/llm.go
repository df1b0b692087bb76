package llm

import (
	"context"
	"fmt"
)

// Provider constants for LLM provider selection.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config holds LLM client configuration.
type Config struct {
	Provider string // "openai" or "anthropic"
	APIKey   string // Required: API key for the provider
	BaseURL  string // Optional: custom API endpoint
	Model    string // Model name (e.g. "gpt-4o-mini", "claude-sonnet-4-5")
}

// Client maps a prompt pair to generated text. One call, one completion;
// no tools, no streaming.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	Model() string
}

// Request is a single completion request.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  *float64 // nil = model default
	// Fallback is returned verbatim when the provider answers successfully
	// but with empty content. Empty-but-successful is not an error.
	Fallback string
}

// New creates a Client for the configured provider.
func New(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	switch cfg.Provider {
	case ProviderAnthropic:
		return newAnthropicClient(cfg)
	case ProviderOpenAI, "":
		return newOpenAIClient(cfg)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
}

// Temp is a helper for setting Request.Temperature inline.
func Temp(t float64) *float64 {
	return &t
}
