// Package observability provides Prometheus metrics and OpenTelemetry
// tracing for the application.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clubverse_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// CollectionPersistLatency records whole-file persist latency per
	// collection. Every mutation rewrites the full backing file, so this is
	// the number to watch as collections grow.
	CollectionPersistLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "clubverse_collection_persist_latency_seconds",
		Help:    "Collection file persist latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"collection"})

	// CollectionRecords is the gauge of records held per collection.
	CollectionRecords = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "clubverse_collection_records",
		Help: "Number of records per collection",
	}, []string{"collection"})

	// AuthAttempts counts authentication attempts by outcome.
	AuthAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clubverse_auth_attempts_total",
		Help: "Total authentication attempts by outcome",
	}, []string{"outcome"})

	// EngagementToggles counts like/save toggles by relation and direction.
	EngagementToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clubverse_engagement_toggles_total",
		Help: "Total like/save toggles by relation and direction",
	}, []string{"relation", "direction"})

	// AssistantRequests counts assistant calls by operation and outcome.
	AssistantRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clubverse_assistant_requests_total",
		Help: "Total assistant requests by operation and outcome",
	}, []string{"operation", "outcome"})
)

// ObservePersist records the latency of a collection persist.
func ObservePersist(collection string, start time.Time) {
	CollectionPersistLatency.WithLabelValues(collection).Observe(time.Since(start).Seconds())
}

// SetCollectionSize updates the record-count gauge for a collection.
func SetCollectionSize(collection string, n int) {
	CollectionRecords.WithLabelValues(collection).Set(float64(n))
}
