// Package metrics exposes the prometheus collectors of the onboarding backend.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "onboarding"

var (
	// httpRequests counts handled requests.
	// Labels: method, route (gin full path), status
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests handled",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"method", "route"})

	// completions counts progress writes.
	// Labels: kind (step, item), action (mark, unmark)
	completions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "progress_changes_total",
		Help:      "Total step and checklist item progress changes",
	}, []string{"kind", "action"})

	// propagationFailures counts swallowed status propagation errors.
	// Labels: target (client, platform)
	propagationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "propagation_failures_total",
		Help:      "Status propagation failures that were logged and ignored",
	}, []string{"target"})

	storePings = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "ping_duration_seconds",
		Help:      "Latency of store health checks",
		Buckets:   prometheus.DefBuckets,
	}, []string{"driver", "status"})
)

// ObserveRequest records one handled HTTP request
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ProgressChanged records a mark or unmark of a step ("step") or checklist item ("item")
func ProgressChanged(kind, action string) {
	completions.WithLabelValues(kind, action).Inc()
}

// PropagationFailed records a swallowed propagation error for target
func PropagationFailed(target string) {
	propagationFailures.WithLabelValues(target).Inc()
}

// StorePinged records a health check against the store
func StorePinged(driver string, err error, elapsed time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	storePings.WithLabelValues(driver, status).Observe(elapsed.Seconds())
}

// Handler serves the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
