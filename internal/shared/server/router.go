package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"caroai-backend/internal/advice"
	"caroai-backend/internal/internships"
	"caroai-backend/internal/sessions"
	"caroai-backend/internal/shared/config"
	"caroai-backend/internal/shared/metrics"
	"caroai-backend/internal/shared/server/middleware"
	"caroai-backend/internal/shared/server/respond"
)

const planRateGroup = "PLAN"

// RouterDeps carries the wired handlers into NewRouter.
type RouterDeps struct {
	Config            config.Config
	SessionHandler    *sessions.Handler
	AdviceHandler     *advice.Handler
	InternshipHandler *internships.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigins),
		middleware.RateLimit(rateLimitConfig()),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.SessionHandler != nil {
		deps.SessionHandler.RegisterRoutes(api)
	}
	if deps.AdviceHandler != nil {
		deps.AdviceHandler.RegisterRoutes(api)
	}
	if deps.InternshipHandler != nil {
		deps.InternshipHandler.RegisterRoutes(api)
	}

	r.GET("/metrics", metrics.Handler())

	return r
}

// rateLimitConfig throttles plan generation harder than the rest of the
// API because each plan run fans into several model calls.
func rateLimitConfig() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			planRateGroup: {Rate: rate.Limit(0.2), Burst: 3},
			"DEFAULT":     {Rate: rate.Limit(10), Burst: 20},
		},
		DefaultGroup: "DEFAULT",
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && strings.HasSuffix(c.FullPath(), "/plan") {
				return planRateGroup
			}
			return "DEFAULT"
		},
		Limiter: middleware.NewRateLimiter(),
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
