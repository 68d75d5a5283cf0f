package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orderpulse/orderpulse/internal/bus"
	"github.com/orderpulse/orderpulse/internal/store"
)

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	store store.Store
	bus   bus.Bus
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(s store.Store, b bus.Bus) *HealthHandler {
	return &HealthHandler{store: s, bus: b}
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz returns 200 if the database and alert bus are reachable, 503
// otherwise.
func (h *HealthHandler) Readyz(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.store.Ping(ctx); err != nil {
		return c.JSON(
			http.StatusServiceUnavailable,
			map[string]string{"status": "database unavailable"},
		)
	}
	if err := h.bus.Ping(ctx); err != nil {
		return c.JSON(
			http.StatusServiceUnavailable,
			map[string]string{"status": "bus unavailable"},
		)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
