package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/orderpulse/orderpulse/internal/api/handlers"
	"github.com/orderpulse/orderpulse/internal/bus"
	"github.com/orderpulse/orderpulse/internal/store/mocks"
)

func TestHealthz(t *testing.T) {
	t.Parallel()

	mockStore := mocks.NewMockStore(t)
	h := handlers.NewHealthHandler(mockStore, bus.NewMemoryBus())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Healthz(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReadyz(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pingErr    error
		closeBus   bool
		wantStatus int
		wantBody   string
	}{
		{
			name:       "returns 200 when store and bus are reachable",
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ready"}`,
		},
		{
			name:       "returns 503 when store ping fails",
			pingErr:    errors.New("connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"database unavailable"}`,
		},
		{
			name:       "returns 503 when bus is down",
			closeBus:   true,
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"bus unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockStore := mocks.NewMockStore(t)
			mockStore.EXPECT().Ping(mock.Anything).Return(tt.pingErr).Once()

			b := bus.NewMemoryBus()
			if tt.closeBus {
				require.NoError(t, b.Close())
			}

			h := handlers.NewHealthHandler(mockStore, b)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, h.Readyz(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
