package llm

import (
	"context"
	"errors"
)

// Client abstracts text-generation providers for the advisory pipeline.
type Client interface {
	Generate(ctx context.Context, input GenerateInput) (string, error)
}

// GenerateInput captures one generation request.
type GenerateInput struct {
	// Operation labels the pipeline step for logs and metrics
	// (e.g. "skills.extract", "roadmap.generate").
	Operation string
	Prompt    string
	// JSONOutput asks the provider for a structured JSON response
	// instead of free text.
	JSONOutput bool
}

// ErrUnavailable covers transport-level failures: network errors,
// timeouts, quota exhaustion, open circuit. Callers surface it to the
// user; there is no automatic retry beyond the resilient wrapper.
var ErrUnavailable = errors.New("llm unavailable")

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is a stub implementation used when no provider is wired.
type PlaceholderClient struct{}

// Generate returns ErrNotConfigured.
func (PlaceholderClient) Generate(ctx context.Context, input GenerateInput) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotConfigured
}
