package fanout

import (
	"time"

	"github.com/gorilla/websocket"
)

// Session is one WebSocket connection scoped to a single merchant.
type Session struct {
	hub        *Hub
	conn       *websocket.Conn
	merchantID string
	send       chan []byte
}

// NewSession wraps an upgraded connection and registers it with the hub.
func (h *Hub) NewSession(conn *websocket.Conn, merchantID string) *Session {
	s := &Session{
		hub:        h,
		conn:       conn,
		merchantID: merchantID,
		send:       make(chan []byte, h.sendQueueSize),
	}
	h.register(s)
	return s
}

// Serve pumps queued events to the client until the connection drops.
// It blocks and must be called from the connection's handler goroutine;
// the read side runs in the background to consume control frames.
func (s *Session) Serve() {
	go s.readPump()
	s.writePump()
}

// readPump discards inbound messages. Clients are listeners; reading is
// only needed so close and pong frames are processed.
func (s *Session) readPump() {
	defer s.close()

	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(s.hub.pingInterval * 2))
	})
	_ = s.conn.SetReadDeadline(time.Now().Add(s.hub.pingInterval * 2))

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Session) writePump() {
	ticker := time.NewTicker(s.hub.pingInterval)
	defer ticker.Stop()
	defer s.close()

	for {
		select {
		case payload, ok := <-s.send:
			if !ok {
				return
			}
			_ = s.conn.SetWriteDeadline(time.Now().Add(s.hub.writeTimeout))
			if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(s.hub.writeTimeout))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (s *Session) close() {
	s.hub.unregister(s)
	_ = s.conn.Close()
}
