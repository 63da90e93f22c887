package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"caroai-backend/internal/llm"
	"caroai-backend/internal/shared/telemetry"
)

// Client implements llm.Client using the Gemini API.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewClient constructs a new Gemini client.
func NewClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for Gemini")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Client{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

func (c *Client) Generate(ctx context.Context, input llm.GenerateInput) (string, error) {
	if strings.TrimSpace(input.Prompt) == "" {
		return "", fmt.Errorf("gemini: empty prompt")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0),
	}
	if input.JSONOutput {
		cfg.ResponseMIMEType = "application/json"
	}

	started := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(input.Prompt), cfg)
	if err != nil {
		return "", mapError(input.Operation, err)
	}

	content := strings.TrimSpace(resp.Text())
	if content == "" {
		return "", fmt.Errorf("gemini: empty response for %s", input.Operation)
	}
	logUsage(c.model, input.Operation, time.Since(started), resp)
	return content, nil
}

// mapError folds transport and quota failures into llm.ErrUnavailable so the
// resilience layer retries them.
func mapError(operation string, err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "deadline exceeded"),
		strings.Contains(msg, "quota"),
		strings.Contains(msg, "resource_exhausted"),
		strings.Contains(msg, "rate limit"),
		strings.Contains(msg, "unavailable"),
		strings.Contains(msg, "http status 5"),
		strings.Contains(msg, "500"),
		strings.Contains(msg, "503"):
		return fmt.Errorf("%w: gemini %s: %v", llm.ErrUnavailable, operation, err)
	}
	return fmt.Errorf("gemini %s: %w", operation, err)
}

func logUsage(model, operation string, elapsed time.Duration, resp *genai.GenerateContentResponse) {
	fields := map[string]any{
		"model":       model,
		"operation":   operation,
		"duration_ms": elapsed.Milliseconds(),
	}
	if resp.UsageMetadata != nil {
		fields["prompt_tokens"] = resp.UsageMetadata.PromptTokenCount
		fields["completion_tokens"] = resp.UsageMetadata.CandidatesTokenCount
		fields["total_tokens"] = resp.UsageMetadata.TotalTokenCount
	}
	telemetry.Info("llm.response", fields)
}

var _ llm.Client = (*Client)(nil)
