// Package metrics holds the process-wide prometheus collectors of the service.
// Collectors register on the default registry and are served by promhttp at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mailroom"

var (
	SlotsAllocated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "slots_allocated_total",
		Help:      "Package numbers taken from a pool.",
	})

	SlotsReleased = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "slots_released_total",
		Help:      "Package numbers returned to a pool, by reason.",
	}, []string{"reason"})

	QueueExhausted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "queue_exhausted_total",
		Help:      "Allocations rejected because the pool was empty.",
	})

	SlotsLeaked = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "slots_leaked_total",
		Help:      "Compensating releases that failed and left a slot unavailable.",
	})

	PackageTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "package_transitions_total",
		Help:      "Package status transitions, by target status and outcome.",
	}, []string{"status", "outcome"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests, by route, method and status code.",
	}, []string{"route", "method", "code"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency, by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})
)

// Release reasons.
const (
	ReleaseManual       = "manual"
	ReleaseTransition   = "transition"
	ReleaseCompensation = "compensation"
	ReleaseReconcile    = "reconcile"
)
