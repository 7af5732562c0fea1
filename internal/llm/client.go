// Package llm provides the transport layer for AI resume customization.
// It abstracts over chat-completion providers and normalizes every call
// into a Response value; transport failures never surface as errors past
// this package.
package llm

import (
	"context"
	"fmt"
)

// Response is the outcome of one AI round trip.
type Response struct {
	Success      bool
	Content      string
	ErrorMessage string
	StatusCode   int
}

// Client is an abstraction over AI completion providers.
type Client interface {
	// CustomizeContent issues one completion call with a system prompt,
	// a user context block, and per-call model parameters.
	CustomizeContent(ctx context.Context, systemPrompt, contextText string, params ModelParams) Response
	// IsAvailable probes the endpoint with a minimal request and reports
	// reachability only.
	IsAvailable(ctx context.Context) bool
	// Close releases any resources held by the client.
	Close() error
}

// Provider identifies a completion backend.
type Provider string

// Supported providers.
const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

// NewClient creates a client for the configured provider.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	case ProviderOpenAI:
		return NewOpenAIClient(config, apiKey)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", config.Provider)
	}
}
