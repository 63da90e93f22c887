package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func newLimitedEngine(rules map[string]RateLimitRule, groupFor func(*gin.Context) string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(RateLimitConfig{
		Rules:    rules,
		GroupFor: groupFor,
	}))
	r.POST("/plan", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRateLimitRejectsBeyondBurst(t *testing.T) {
	r := newLimitedEngine(map[string]RateLimitRule{
		"PLAN": {Rate: rate.Limit(0.001), Burst: 2},
	}, func(*gin.Context) string { return "PLAN" })

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/plan", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		statuses = append(statuses, resp.Code)
	}

	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
		t.Fatalf("expected first two requests to pass, got %v", statuses)
	}
	if statuses[2] != http.StatusTooManyRequests {
		t.Fatalf("expected third request to be limited, got %v", statuses)
	}
}

func TestRateLimitUnknownGroupPassesThrough(t *testing.T) {
	r := newLimitedEngine(map[string]RateLimitRule{
		"PLAN": {Rate: rate.Limit(0.001), Burst: 1},
	}, func(*gin.Context) string { return "OTHER" })

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/plan", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, resp.Code)
		}
	}
}

func TestRateLimitKeysAreIndependent(t *testing.T) {
	r := newLimitedEngine(map[string]RateLimitRule{
		"PLAN": {Rate: rate.Limit(0.001), Burst: 1},
	}, func(*gin.Context) string { return "PLAN" })

	for i, addr := range []string{"10.0.0.3:1", "10.0.0.4:1"} {
		req := httptest.NewRequest(http.MethodPost, "/plan", nil)
		req.RemoteAddr = addr
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("client %d: expected 200, got %d", i, resp.Code)
		}
	}
}
