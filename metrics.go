package nocodb

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are recorded per transport attempt, so a request retried twice
// contributes three samples to requestsTotal and two to retriesTotal.
var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nocodb_client",
			Name:      "requests_total",
			Help:      "HTTP attempts by method and outcome (status code or 'error').",
		},
		[]string{"method", "outcome"},
	)

	retriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nocodb_client",
			Name:      "retries_total",
			Help:      "Attempts that were retried after a recoverable failure.",
		},
		[]string{"method"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "nocodb_client",
			Name:      "request_duration_seconds",
			Help:      "Latency of individual HTTP attempts.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)
