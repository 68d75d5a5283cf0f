package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CycleDuration returns a timeseries panel showing the p95 rule evaluation
// cycle duration.
func CycleDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Cycle Duration (p95)").
		Description("95th percentile rule evaluation cycle duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(orderpulse_evaluation_cycle_duration_seconds_bucket{job="orderpulse"}[5m])) by (le))`,
			"p95",
			"A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RulesEvaluatedRate returns a timeseries panel showing rule evaluations
// per second.
func RulesEvaluatedRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Rules Evaluated").
		Description("Rule evaluations per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`rate(orderpulse_evaluation_rules_total{job="orderpulse"}[5m])`,
			"rules/s", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// EvaluationErrors returns a timeseries panel showing evaluation errors
// per minute.
func EvaluationErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Evaluation Errors / min").
		Description("Rate of metric computation and rule listing errors per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`orderpulse:evaluation_errors:rate5m * 60`, "errors/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
