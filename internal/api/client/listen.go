package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
)

// Listen connects to the live alert stream and calls handler for every
// alert payload until ctx is cancelled or the connection drops.
func (c *Client) Listen(ctx context.Context, handler func(payload []byte)) error {
	wsURL, err := c.streamURL()
	if err != nil {
		return err
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("connecting to alert stream (HTTP %d): %w", resp.StatusCode, err)
		}
		return fmt.Errorf("connecting to alert stream: %w", err)
	}
	defer conn.Close() //nolint:errcheck // best-effort cleanup

	// Unblock the read loop when ctx is cancelled.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-stop:
		}
	}()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("reading alert stream: %w", err)
		}
		handler(payload)
	}
}

func (c *Client) streamURL() (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parsing base url: %w", err)
	}

	switch u.Scheme {
	case "http", "":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		if !strings.HasPrefix(u.Scheme, "ws") {
			return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
		}
	}

	u.Path = "/ws/alerts"
	if c.token != "" {
		q := u.Query()
		q.Set("token", c.token)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}
