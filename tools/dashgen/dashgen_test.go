package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/orderpulse/orderpulse/tools/dashgen/dashboards"
	"github.com/orderpulse/orderpulse/tools/dashgen/rules"
	"github.com/orderpulse/orderpulse/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	builder := dashboards.BuildOverview()
	dash, err := builder.Build()
	require.NoError(t, err)

	// Verify dashboard metadata.
	require.NotNil(t, dash.Uid)
	assert.Equal(t, "orderpulse-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "OrderPulse Overview", *dash.Title)

	// Verify template variable.
	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	// Verify we have 6 rows.
	assert.Len(t, dash.Panels, 6)

	// Count total inner panels.
	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 17, totalPanels)

	// Validate PromQL and metrics.
	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "orderpulse-recording-rules", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "orderpulse-recording", group.Name)
	require.Len(t, group.Rules, 6)

	expectedRecords := []string{
		"orderpulse:http_requests:rate5m",
		"orderpulse:http_errors:rate5m",
		"orderpulse:ingestion_orders:rate5m",
		"orderpulse:ingestion_errors:rate5m",
		"orderpulse:evaluation_errors:rate5m",
		"orderpulse:fanout_dropped:rate5m",
	}
	for i, rule := range group.Rules {
		assert.Equal(t, expectedRecords[i], rule.Record)
		assert.NotEmpty(t, rule.Expr)
	}

	// Verify YAML marshaling works.
	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "orderpulse-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "orderpulse-alerts", group.Name)
	require.Len(t, group.Rules, 7)

	expectedAlerts := []string{
		"OrderpulseDown",
		"OrderpulseReadinessDown",
		"OrderpulseHighErrorRate",
		"OrderpulseIngestionErrors",
		"OrderpulseEvaluationErrors",
		"OrderpulsePublishFailures",
		"OrderpulseFanoutDrops",
	}
	for i, rule := range group.Rules {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.NotEmpty(t, rule.Expr)
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}
}

func TestRuleExprsValid(t *testing.T) {
	t.Parallel()

	exprs := ruleExprs(rules.RecordingRules(), rules.AlertRules())
	require.NotEmpty(t, exprs)

	result := validate.Exprs(exprs, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
}

func TestRunValidateOnly(t *testing.T) {
	t.Parallel()

	cfg := Config{OutputDir: t.TempDir(), DashboardEnabled: true, RulesEnabled: true}
	require.NoError(t, run(cfg, true))
}

func TestRunWritesArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Config{OutputDir: dir, DashboardEnabled: true, RulesEnabled: true}
	require.NoError(t, run(cfg, false))

	for _, rel := range []string{
		"grafana/data/orderpulse-overview.json",
		"prometheus/orderpulse-recording-rules.yaml",
		"prometheus/orderpulse-alerts.yaml",
	} {
		assert.FileExists(t, dir+"/"+rel)
	}
}
