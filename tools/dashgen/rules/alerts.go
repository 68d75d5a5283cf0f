package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// orderpulse operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "orderpulse-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "orderpulse-alerts",
					Rules: []Rule{
						{
							Alert: "OrderpulseDown",
							Expr:  `absent(up{job="orderpulse"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "OrderPulse is down",
								"description": "The orderpulse job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "OrderpulseReadinessDown",
							Expr:  `orderpulse_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "OrderPulse readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes. Postgres or Redis is likely unreachable.",
							},
						},
						{
							Alert: "OrderpulseHighErrorRate",
							Expr:  `orderpulse:http_errors:rate5m / orderpulse:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on OrderPulse",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "OrderpulseIngestionErrors",
							Expr:  `orderpulse:ingestion_errors:rate5m > 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Order ingestion errors detected",
								"description": "Order ingestion has been producing errors for more than 5 minutes.",
							},
						},
						{
							Alert: "OrderpulseEvaluationErrors",
							Expr:  `orderpulse:evaluation_errors:rate5m > 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Rule evaluation errors detected",
								"description": "The rule evaluation engine has been producing errors for more than 5 minutes.",
							},
						},
						{
							Alert: "OrderpulsePublishFailures",
							Expr:  `increase(orderpulse_publish_failures_total[5m]) > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Alert publish failures detected",
								"description": "One or more alert events have failed to publish to the bus.",
							},
						},
						{
							Alert: "OrderpulseFanoutDrops",
							Expr:  `orderpulse:fanout_dropped:rate5m > 0.1`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Websocket fan-out is dropping messages",
								"description": "Slow websocket sessions are dropping more than 0.1 messages/s over the last 5 minutes.",
							},
						},
					},
				},
			},
		},
	}
}
