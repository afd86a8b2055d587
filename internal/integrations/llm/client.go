// Package llm wraps the conversational model providers behind a
// single completion interface. Providers are plain HTTP clients; the
// base URL is configurable so tests can point at a fake server.
package llm

import "context"

// Client defines the interface for chat completion providers.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Config selects and configures a provider.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int
}
