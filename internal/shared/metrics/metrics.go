package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	planStartedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "plan_started_total",
		Help: "Total advisory plans started",
	})
	planCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "plan_completed_total",
		Help: "Total advisory plans completed",
	})
	planFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "plan_failed_total",
		Help: "Total advisory plans failed",
	})
	planDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "plan_duration_ms",
		Help:    "Advisory plan generation duration in milliseconds",
		Buckets: []float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000, 120000},
	})
	llmCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "llm_calls_total",
		Help: "Total LLM calls by operation and outcome",
	}, []string{"operation", "outcome"})
)

// IncPlanStarted increments the started counter.
func IncPlanStarted() {
	planStartedTotal.Inc()
}

// IncPlanCompleted increments the completed counter.
func IncPlanCompleted() {
	planCompletedTotal.Inc()
}

// IncPlanFailed increments the failed counter.
func IncPlanFailed() {
	planFailedTotal.Inc()
}

// ObservePlanDurationMs records a plan generation duration in milliseconds.
func ObservePlanDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	planDuration.Observe(value)
}

// IncLLMCall records the outcome of a single LLM call.
func IncLLMCall(operation, outcome string) {
	llmCallsTotal.WithLabelValues(operation, outcome).Inc()
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
