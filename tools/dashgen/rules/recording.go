package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "orderpulse-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "orderpulse-recording",
					Rules: []Rule{
						{
							Record: "orderpulse:http_requests:rate5m",
							Expr:   `sum(rate(orderpulse_http_requests_total[5m]))`,
						},
						{
							Record: "orderpulse:http_errors:rate5m",
							Expr:   `sum(rate(orderpulse_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "orderpulse:ingestion_orders:rate5m",
							Expr:   `rate(orderpulse_ingestion_orders_total[5m])`,
						},
						{
							Record: "orderpulse:ingestion_errors:rate5m",
							Expr:   `rate(orderpulse_ingestion_errors_total[5m])`,
						},
						{
							Record: "orderpulse:evaluation_errors:rate5m",
							Expr:   `rate(orderpulse_evaluation_errors_total[5m])`,
						},
						{
							Record: "orderpulse:fanout_dropped:rate5m",
							Expr:   `rate(orderpulse_fanout_dropped_total[5m])`,
						},
					},
				},
			},
		},
	}
}
