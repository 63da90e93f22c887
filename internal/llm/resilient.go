package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"

	"caroai-backend/internal/shared/metrics"
	"caroai-backend/internal/shared/telemetry"
)

// ResilienceConfig controls retry and circuit-breaker behavior for the
// resilient client wrapper.
type ResilienceConfig struct {
	RetryMaxAttempts    int
	RetryInitialBackoff time.Duration
	RetryMaxBackoff     time.Duration

	BreakerMinRequests      uint32
	BreakerFailureRatio     float64
	BreakerOpenTimeout      time.Duration
	BreakerHalfOpenMaxCalls uint32
}

// DefaultResilienceConfig mirrors the defaults used for external calls.
func DefaultResilienceConfig() ResilienceConfig {
	return ResilienceConfig{
		RetryMaxAttempts:        3,
		RetryInitialBackoff:     300 * time.Millisecond,
		RetryMaxBackoff:         2 * time.Second,
		BreakerMinRequests:      10,
		BreakerFailureRatio:     0.5,
		BreakerOpenTimeout:      30 * time.Second,
		BreakerHalfOpenMaxCalls: 2,
	}
}

func (c ResilienceConfig) normalize() ResilienceConfig {
	def := DefaultResilienceConfig()
	if c.RetryMaxAttempts <= 0 {
		c.RetryMaxAttempts = def.RetryMaxAttempts
	}
	if c.RetryInitialBackoff <= 0 {
		c.RetryInitialBackoff = def.RetryInitialBackoff
	}
	if c.RetryMaxBackoff < c.RetryInitialBackoff {
		c.RetryMaxBackoff = c.RetryInitialBackoff
	}
	if c.BreakerMinRequests == 0 {
		c.BreakerMinRequests = def.BreakerMinRequests
	}
	if c.BreakerFailureRatio <= 0 || c.BreakerFailureRatio > 1 {
		c.BreakerFailureRatio = def.BreakerFailureRatio
	}
	if c.BreakerOpenTimeout <= 0 {
		c.BreakerOpenTimeout = def.BreakerOpenTimeout
	}
	if c.BreakerHalfOpenMaxCalls == 0 {
		c.BreakerHalfOpenMaxCalls = def.BreakerHalfOpenMaxCalls
	}
	return c
}

type resilientClient struct {
	base    Client
	cfg     ResilienceConfig
	breaker *gobreaker.CircuitBreaker[string]
}

// NewResilientClient wraps base with bounded retry for transient errors
// and a circuit breaker shared across all operations.
func NewResilientClient(base Client, cfg ResilienceConfig) Client {
	if base == nil {
		return nil
	}
	cfg = cfg.normalize()

	settings := gobreaker.Settings{
		Name:        "llm",
		MaxRequests: cfg.BreakerHalfOpenMaxCalls,
		Timeout:     cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.BreakerMinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.BreakerFailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			telemetry.Warn("llm.breaker_state", map[string]any{
				"from": from.String(),
				"to":   to.String(),
			})
		},
	}

	return &resilientClient{
		base:    base,
		cfg:     cfg,
		breaker: gobreaker.NewCircuitBreaker[string](settings),
	}
}

func (r *resilientClient) Generate(ctx context.Context, input GenerateInput) (string, error) {
	out, err := r.breaker.Execute(func() (string, error) {
		return r.generateWithRetry(ctx, input)
	})
	if err != nil {
		metrics.IncLLMCall(input.Operation, "error")
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%w: circuit open", ErrUnavailable)
		}
		return "", err
	}
	metrics.IncLLMCall(input.Operation, "ok")
	return out, nil
}

func (r *resilientClient) generateWithRetry(ctx context.Context, input GenerateInput) (string, error) {
	backoff := r.cfg.RetryInitialBackoff

	var lastErr error
	for attempt := 1; attempt <= r.cfg.RetryMaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		out, err := r.base.Generate(ctx, input)
		if err == nil {
			return out, nil
		}
		lastErr = err
		if !IsTransient(err) || attempt == r.cfg.RetryMaxAttempts {
			return "", err
		}

		telemetry.Warn("llm.retry", map[string]any{
			"operation":    input.Operation,
			"attempt":      attempt,
			"max_attempts": r.cfg.RetryMaxAttempts,
			"backoff_ms":   float64(backoff.Microseconds()) / 1000.0,
			"error":        err.Error(),
		})

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", lastErr
		case <-timer.C:
		}

		backoff *= 2
		if backoff > r.cfg.RetryMaxBackoff {
			backoff = r.cfg.RetryMaxBackoff
		}
	}
	return "", lastErr
}

// IsTransient reports whether an error is worth retrying: timeouts,
// connection drops, provider 5xx and rate-limit responses.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, ErrUnavailable) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "http status 5") || strings.Contains(msg, "server_error") {
		return true
	}
	if strings.Contains(msg, "rate limit") || strings.Contains(msg, "quota") || strings.Contains(msg, "resource_exhausted") {
		return true
	}
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline") {
		return true
	}
	if strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection closed") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "tls handshake timeout") ||
		strings.Contains(msg, "eof") {
		return true
	}

	return false
}

var _ Client = (*resilientClient)(nil)
