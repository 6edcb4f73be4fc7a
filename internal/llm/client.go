// Package llm provides client abstractions over chat-completion model
// providers. The advice service owns mode selection and sampling parameters;
// clients here only carry a request to a provider and hand back raw text.
package llm

import (
	"context"
	"fmt"
)

// Provider identifies an LLM provider.
type Provider string

// Supported providers.
const (
	// ProviderDeepSeek is any OpenAI-compatible chat-completions endpoint.
	ProviderDeepSeek Provider = "deepseek"
	// ProviderGemini is Google Gemini via the official SDK.
	ProviderGemini Provider = "gemini"
)

// CompletionRequest is a single chat-completion call: one system instruction,
// one user message, and sampling parameters.
type CompletionRequest struct {
	Model       string
	System      string
	User        string
	Temperature float32
	MaxTokens   int
}

// Client is an abstraction over LLM providers.
type Client interface {
	// Complete issues one chat-completion request and returns the raw
	// assistant text.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// Config holds provider selection and credentials.
type Config struct {
	Provider Provider
	APIKey   string
	BaseURL  string // DeepSeek-compatible endpoints only; empty uses the default
}

// NewClient creates a client for the configured provider.
func NewClient(ctx context.Context, cfg Config) (Client, error) {
	switch cfg.Provider {
	case ProviderDeepSeek, "":
		return NewDeepSeekClient(cfg.APIKey, cfg.BaseURL), nil
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg.APIKey)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}
