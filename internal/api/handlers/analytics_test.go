package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/orderpulse/orderpulse/internal/analytics"
	"github.com/orderpulse/orderpulse/internal/api/handlers"
	storeMocks "github.com/orderpulse/orderpulse/internal/store/mocks"
	domain "github.com/orderpulse/orderpulse/pkg/types"
)

func newAnalyticsAPI(t *testing.T) (humatest.TestAPI, *storeMocks.MockStore) {
	t.Helper()
	ms := storeMocks.NewMockStore(t)
	svc := analytics.NewService(ms)
	_, api := humatest.New(t)
	handlers.RegisterAnalyticsRoutes(api, handlers.NewAnalyticsHandler(svc))
	return api, ms
}

func TestGetAOV_Defined(t *testing.T) {
	t.Parallel()

	api, ms := newAnalyticsAPI(t)
	ms.EXPECT().
		SumOrdersInWindow(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("195.50", 2, nil).
		Once()

	resp := api.Get("/api/v1/metrics/aov?window=30d")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"aov":"97.75"`)
	assert.Contains(t, resp.Body.String(), `"defined":true`)
	assert.Contains(t, resp.Body.String(), `"order_count":2`)
}

func TestGetAOV_EmptyWindowIsUndefined(t *testing.T) {
	t.Parallel()

	api, ms := newAnalyticsAPI(t)
	ms.EXPECT().
		SumOrdersInWindow(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("0", 0, nil).
		Once()

	resp := api.Get("/api/v1/metrics/aov")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"aov":null`)
	assert.Contains(t, resp.Body.String(), `"defined":false`)
}

func TestGetAOV_BadWindow(t *testing.T) {
	t.Parallel()

	api, _ := newAnalyticsAPI(t)

	resp := api.Get("/api/v1/metrics/aov?window=fortnight")
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestGetRFM_Success(t *testing.T) {
	t.Parallel()

	api, ms := newAnalyticsAPI(t)
	ms.EXPECT().
		CustomerOrderStats(mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.CustomerOrderStats{
			{
				CustomerID:  "c1",
				LastOrderAt: time.Now().Add(-24 * time.Hour),
				Frequency:   4,
				Monetary:    decimal.RequireFromString("250.00"),
			},
		}, nil).
		Once()

	resp := api.Get("/api/v1/metrics/rfm")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"customer_id":"c1"`)
	// A single customer collapses every dimension to the neutral score.
	assert.Contains(t, resp.Body.String(), `"total":9`)
	assert.Contains(t, resp.Body.String(), `"average_total":9`)
}

func TestGetRFM_Empty(t *testing.T) {
	t.Parallel()

	api, ms := newAnalyticsAPI(t)
	ms.EXPECT().
		CustomerOrderStats(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil).
		Once()

	resp := api.Get("/api/v1/metrics/rfm")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"scores":[]`)
	assert.Contains(t, resp.Body.String(), `"average_total":null`)
}

func TestGetCohorts_Success(t *testing.T) {
	t.Parallel()

	api, ms := newAnalyticsAPI(t)
	ms.EXPECT().
		CohortMatrix(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.CohortCell{
			{
				CohortMonth: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
				OrderMonth:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
				CohortSize:  10,
				Active:      10,
			},
			{
				CohortMonth: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
				OrderMonth:  time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
				CohortSize:  10,
				Active:      4,
			},
		}, nil).
		Once()

	resp := api.Get("/api/v1/metrics/cohorts?from=2026-01&to=2026-02")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"cohort":"2026-01"`)
	assert.Contains(t, resp.Body.String(), `"size":10`)
}

func TestGetCohorts_BadMonth(t *testing.T) {
	t.Parallel()

	api, _ := newAnalyticsAPI(t)

	resp := api.Get("/api/v1/metrics/cohorts?from=January")
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestGetCohorts_InvertedRange(t *testing.T) {
	t.Parallel()

	api, _ := newAnalyticsAPI(t)

	resp := api.Get("/api/v1/metrics/cohorts?from=2026-06&to=2026-01")
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
