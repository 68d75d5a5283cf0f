package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// OrdersRate returns a timeseries panel showing ingested orders per minute.
func OrdersRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Orders / min").
		Description("Rate of orders ingested per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`orderpulse:ingestion_orders:rate5m * 60`, "orders/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// IngestionErrors returns a timeseries panel showing ingestion errors per minute.
func IngestionErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Errors / min").
		Description("Rate of order ingestion errors per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`orderpulse:ingestion_errors:rate5m * 60`, "errors/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ThrottledRate returns a timeseries panel showing rate-limited ingestion
// requests per minute.
func ThrottledRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Throttled / min").
		Description("Ingestion requests rejected by rate limiting per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`rate(orderpulse_ingestion_throttled_total{job="orderpulse"}[5m]) * 60`,
			"throttled/min", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
