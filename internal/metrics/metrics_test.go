package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, IngestionOrdersTotal)
	assert.NotNil(t, IngestionErrorsTotal)
	assert.NotNil(t, IngestionThrottledTotal)
	assert.NotNil(t, EvaluationCycleDuration)
	assert.NotNil(t, EvaluationRulesTotal)
	assert.NotNil(t, EvaluationErrorsTotal)
	assert.NotNil(t, EvaluationLastRun)
	assert.NotNil(t, EvaluationNextRun)
	assert.NotNil(t, AlertsFiredTotal)
	assert.NotNil(t, PublishFailuresTotal)
	assert.NotNil(t, FanoutSessionsActive)
	assert.NotNil(t, FanoutDeliveredTotal)
	assert.NotNil(t, FanoutDroppedTotal)
}
