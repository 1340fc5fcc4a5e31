// Package metrics provides Prometheus metrics for the rose service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CompletionsTotal tracks completion calls by kind (text, structured) and outcome
	CompletionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rose",
			Subsystem: "completion",
			Name:      "requests_total",
			Help:      "Total number of completion requests by kind and status",
		},
		[]string{"kind", "model", "status"},
	)

	// CompletionDuration tracks how long the provider takes to answer
	CompletionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rose",
			Subsystem: "completion",
			Name:      "request_duration_seconds",
			Help:      "Duration of completion requests in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
		},
		[]string{"kind", "model"},
	)

	// CompletionTokens tracks token usage reported by the provider
	CompletionTokens = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rose",
			Subsystem: "completion",
			Name:      "tokens_total",
			Help:      "Total number of tokens reported by the completion provider",
		},
		[]string{"model", "type"},
	)

	// HTTPRequestsTotal tracks outbound HTTP requests
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rose",
			Subsystem: "http_client",
			Name:      "requests_total",
			Help:      "Total number of outbound HTTP requests",
		},
		[]string{"method", "status_code"},
	)

	// HTTPRequestDuration tracks outbound HTTP request duration
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rose",
			Subsystem: "http_client",
			Name:      "request_duration_seconds",
			Help:      "Duration of outbound HTTP requests in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method"},
	)

	// GenerationsTotal tracks persisted coaching artifacts
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rose",
			Subsystem: "coaching",
			Name:      "generations_total",
			Help:      "Total number of generated coaching artifacts by kind and status",
		},
		[]string{"kind", "status"},
	)

	// KafkaMessagesPublished tracks Kafka messages published
	KafkaMessagesPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rose",
			Subsystem: "kafka",
			Name:      "messages_published_total",
			Help:      "Total number of messages published to Kafka",
		},
		[]string{"topic", "status"},
	)

	// DatabaseQueryDuration tracks database query duration
	DatabaseQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rose",
			Subsystem: "database",
			Name:      "query_duration_seconds",
			Help:      "Duration of database queries in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"operation"},
	)
)

// RecordCompletion records a completion call metric
func RecordCompletion(kind, model, status string, durationSeconds float64) {
	CompletionsTotal.WithLabelValues(kind, model, status).Inc()
	CompletionDuration.WithLabelValues(kind, model).Observe(durationSeconds)
}

func RecordCompletionTokens(model string, prompt, completion int) {
	CompletionTokens.WithLabelValues(model, "prompt").Add(float64(prompt))
	CompletionTokens.WithLabelValues(model, "completion").Add(float64(completion))
}

// RecordHTTPRequest records an outbound HTTP request metric
func RecordHTTPRequest(method, statusCode string, durationSeconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, statusCode).Inc()
	HTTPRequestDuration.WithLabelValues(method).Observe(durationSeconds)
}

func RecordGeneration(kind, status string) {
	GenerationsTotal.WithLabelValues(kind, status).Inc()
}

func RecordKafkaPublish(topic, status string) {
	KafkaMessagesPublished.WithLabelValues(topic, status).Inc()
}

// RecordQuery records the duration of one repository operation
func RecordQuery(operation string, durationSeconds float64) {
	DatabaseQueryDuration.WithLabelValues(operation).Observe(durationSeconds)
}

// QueryTimer starts timing a repository operation; call the result when it finishes.
func QueryTimer(operation string) func() {
	start := time.Now()
	return func() {
		RecordQuery(operation, time.Since(start).Seconds())
	}
}
