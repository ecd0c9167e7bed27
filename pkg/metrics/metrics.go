package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	CompletionsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "completions_recorded_total",
			Help: "Total number of completion records created or removed",
		},
		[]string{"action"}, // action: recorded, removed, duplicate
	)

	AnalyticsCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_cache_lookups_total",
			Help: "Analytics cache lookups by outcome",
		},
		[]string{"kind", "outcome"}, // outcome: hit, miss
	)

	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Domain events published to the broker",
		},
		[]string{"routing_key", "status"}, // status: success, failed
	)
)

// RecordHTTPRequestDuration records one served HTTP request.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// IncrementCompletions counts a completion write by action.
func IncrementCompletions(action string) {
	CompletionsRecorded.WithLabelValues(action).Inc()
}

// IncrementCacheLookup counts an analytics cache hit or miss.
func IncrementCacheLookup(kind, outcome string) {
	AnalyticsCacheLookups.WithLabelValues(kind, outcome).Inc()
}

// IncrementEventPublished counts a publish attempt.
func IncrementEventPublished(routingKey, status string) {
	EventsPublished.WithLabelValues(routingKey, status).Inc()
}
