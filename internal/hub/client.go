package hub

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/pingr-im/pingr-go/internal/infra"
	"github.com/pingr-im/pingr-go/internal/model"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
	sendBufferSize = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type client struct {
	hub    *Hub
	conn   *websocket.Conn
	userID string
	roomID string
	send   chan []byte
}

// ServeWS upgrades the request to a websocket connection and attaches it to
// the hub. The access token comes from the Authorization header or the token
// query parameter.
func (h *Hub) ServeWS(tokenValidator infra.TokenValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenString := infra.BearerToken(r)
		claims, err := tokenValidator.Validate(tokenString)
		if err != nil {
			http.Error(w, "invalid authorization token", http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Error(fmt.Sprintf("websocket upgrade failed: %v", err))
			return
		}

		c := &client{
			hub:    h,
			conn:   conn,
			userID: claims.Subject,
			send:   make(chan []byte, sendBufferSize),
		}

		h.register <- c
		go c.writePump()
		go c.readPump()
	}
}

func (c *client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.Warn(fmt.Sprintf("read error for user=%s: %v", c.userID, err))
			}
			return
		}

		var event model.Event
		if err := json.Unmarshal(raw, &event); err != nil {
			c.hub.logger.Warn(fmt.Sprintf("dropping malformed frame from user=%s: %v", c.userID, err))
			continue
		}

		c.hub.dispatch(c, event)
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
