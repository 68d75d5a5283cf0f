package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// DeliveredRate returns a timeseries panel showing websocket deliveries
// per second.
func DeliveredRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Delivered Rate").
		Description("Alert messages delivered to websocket sessions per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`rate(orderpulse_fanout_delivered_total{job="orderpulse"}[5m])`,
			"delivered/s", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// DroppedRate returns a timeseries panel showing messages dropped for slow
// websocket sessions per minute.
func DroppedRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Dropped / min").
		Description("Alert messages dropped due to slow websocket sessions per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`orderpulse:fanout_dropped:rate5m * 60`, "dropped/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
