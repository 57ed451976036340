// Package metrics registers Prometheus instrumentation for the aggregation
// pipeline. Collectors are process-wide and safe for concurrent use.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamRequests counts discovery API requests by endpoint and outcome.
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eventpulse",
		Subsystem: "discovery",
		Name:      "requests_total",
		Help:      "Discovery API requests by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	// UpstreamRequestDuration observes discovery API round-trip latency.
	UpstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "eventpulse",
		Subsystem: "discovery",
		Name:      "request_duration_seconds",
		Help:      "Discovery API request latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})

	// RecordsAggregated counts normalized records produced per pipeline.
	RecordsAggregated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eventpulse",
		Subsystem: "aggregator",
		Name:      "records_total",
		Help:      "Normalized records produced, by pipeline.",
	}, []string{"pipeline"})

	// FetchFailures counts aggregation runs degraded by an upstream error.
	FetchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eventpulse",
		Subsystem: "aggregator",
		Name:      "fetch_failures_total",
		Help:      "Aggregation runs degraded by an upstream failure, by pipeline.",
	}, []string{"pipeline"})

	// AlertsPublished counts impact alerts published to the event bus.
	AlertsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "eventpulse",
		Subsystem: "alerts",
		Name:      "published_total",
		Help:      "Impact alerts published to the event bus.",
	})
)
