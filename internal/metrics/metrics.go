// Package metrics defines Prometheus metrics for orderpulse.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "orderpulse"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Health probe gauges set by the metrics middleware.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the last liveness probe succeeded (1) or failed (0).",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the last readiness probe succeeded (1) or failed (0).",
	})
)

// Ingestion metrics.
var (
	IngestionOrdersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingestion_orders_total",
		Help:      "Total number of orders ingested.",
	})

	IngestionErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingestion_errors_total",
		Help:      "Total number of order ingestion errors.",
	})

	IngestionThrottledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingestion_throttled_total",
		Help:      "Total number of ingestion requests rejected by rate limiting.",
	})
)

// Evaluation metrics.
var (
	EvaluationCycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "evaluation_cycle_duration_seconds",
		Help:      "Duration of rule evaluation cycles in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	EvaluationRulesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "evaluation_rules_total",
		Help:      "Total number of rule evaluations performed.",
	})

	EvaluationErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "evaluation_errors_total",
		Help:      "Total number of rule evaluation errors.",
	})

	EvaluationLastRun = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "evaluation_last_run_timestamp",
		Help:      "Unix timestamp of the last completed evaluation cycle.",
	})

	EvaluationNextRun = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "evaluation_next_run_timestamp",
		Help:      "Unix timestamp of the next scheduled evaluation cycle.",
	})
)

// Alert metrics.
var (
	AlertsFiredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_fired_total",
		Help:      "Total number of alert events published.",
	})

	PublishFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "publish_failures_total",
		Help:      "Total number of alert publish failures.",
	})
)

// Websocket fan-out metrics.
var (
	FanoutSessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "fanout_sessions_active",
		Help:      "Number of websocket sessions currently connected.",
	})

	FanoutDeliveredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fanout_delivered_total",
		Help:      "Total number of alert messages delivered to websocket sessions.",
	})

	FanoutDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fanout_dropped_total",
		Help:      "Total number of alert messages dropped due to slow websocket sessions.",
	})
)
