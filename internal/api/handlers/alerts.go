package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/orderpulse/orderpulse/internal/api/middleware"
	"github.com/orderpulse/orderpulse/internal/fanout"
)

// AlertsHandler upgrades clients to the live alert stream. Auth runs as
// middleware; by the time Stream is called the merchant identity is on
// the request.
type AlertsHandler struct {
	hub      *fanout.Hub
	upgrader websocket.Upgrader
	log      *slog.Logger
}

// NewAlertsHandler creates a new AlertsHandler.
func NewAlertsHandler(hub *fanout.Hub, log *slog.Logger) *AlertsHandler {
	return &AlertsHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		log: log,
	}
}

// Stream handles GET /ws/alerts. The connection receives every alert
// published for the authenticated merchant, and only that merchant, for
// as long as it stays open.
func (h *AlertsHandler) Stream(c echo.Context) error {
	merchantID := middleware.MerchantID(c)
	if merchantID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing merchant identity")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote the error response.
		h.log.Warn("websocket upgrade failed", "error", err, "merchant_id", merchantID)
		return nil
	}

	session := h.hub.NewSession(conn, merchantID)
	session.Serve()
	return nil
}
