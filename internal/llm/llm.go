package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts text-completion providers for delivery extraction.
type Client interface {
	ExtractDelivery(ctx context.Context, input ExtractInput) (json.RawMessage, error)
}

// ExtractInput captures the inputs for a single extraction call.
type ExtractInput struct {
	EmailText string
	MaxTokens int
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("LLM not configured")

// PlaceholderClient is a stub implementation used when no provider is wired.
type PlaceholderClient struct{}

// ExtractDelivery returns ErrNotConfigured.
func (PlaceholderClient) ExtractDelivery(ctx context.Context, input ExtractInput) (json.RawMessage, error) {
	_ = ctx
	_ = input
	return nil, ErrNotConfigured
}
