// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/orderpulse/orderpulse/tools/dashgen/panels"
)

// BuildOverview constructs the OrderPulse Overview dashboard with all
// metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("OrderPulse Overview").
		Uid("orderpulse-overview").
		Tags([]string{"orderpulse"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.SessionsStat()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Ingestion.
	b.WithRow(dashboard.NewRowBuilder("Ingestion").
		WithPanel(panels.OrdersRate()).
		WithPanel(panels.IngestionErrors()).
		WithPanel(panels.ThrottledRate()))

	// Row 4: Evaluation.
	b.WithRow(dashboard.NewRowBuilder("Evaluation").
		WithPanel(panels.CycleDuration()).
		WithPanel(panels.RulesEvaluatedRate()).
		WithPanel(panels.EvaluationErrors()))

	// Row 5: Alerts.
	b.WithRow(dashboard.NewRowBuilder("Alerts").
		WithPanel(panels.AlertsRate()).
		WithPanel(panels.PublishFailures()))

	// Row 6: Fan-out.
	b.WithRow(dashboard.NewRowBuilder("Fan-out").
		WithPanel(panels.DeliveredRate()).
		WithPanel(panels.DroppedRate()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
