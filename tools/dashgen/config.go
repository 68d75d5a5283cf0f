package main

import "errors"

// KnownMetrics is the set of metric names exported by orderpulse plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"orderpulse_http_request_duration_seconds": true,
	"orderpulse_http_requests_total":           true,

	// Health metrics.
	"orderpulse_healthz_up": true,
	"orderpulse_readyz_up":  true,

	// Ingestion metrics.
	"orderpulse_ingestion_orders_total":    true,
	"orderpulse_ingestion_errors_total":    true,
	"orderpulse_ingestion_throttled_total": true,

	// Evaluation metrics.
	"orderpulse_evaluation_cycle_duration_seconds": true,
	"orderpulse_evaluation_rules_total":            true,
	"orderpulse_evaluation_errors_total":           true,
	"orderpulse_evaluation_last_run_timestamp":     true,
	"orderpulse_evaluation_next_run_timestamp":     true,

	// Alert metrics.
	"orderpulse_alerts_fired_total":     true,
	"orderpulse_publish_failures_total": true,

	// Websocket fan-out metrics.
	"orderpulse_fanout_sessions_active": true,
	"orderpulse_fanout_delivered_total": true,
	"orderpulse_fanout_dropped_total":   true,

	// Recording rules.
	"orderpulse:http_requests:rate5m":     true,
	"orderpulse:http_errors:rate5m":       true,
	"orderpulse:ingestion_orders:rate5m":  true,
	"orderpulse:ingestion_errors:rate5m":  true,
	"orderpulse:evaluation_errors:rate5m": true,
	"orderpulse:fanout_dropped:rate5m":    true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
