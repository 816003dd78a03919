package chat

import (
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	handshakeWait  = 10 * time.Second
	maxMessageSize = 4096
	sendBufferSize = 256
)

// Client represents one authenticated websocket connection. A user may
// hold several clients at once (multi-device).
type Client struct {
	conn *websocket.Conn
	send chan []byte

	UserID   uuid.UUID
	Username string
}

func newClient(conn *websocket.Conn, userID uuid.UUID, username string) *Client {
	return &Client{
		conn:     conn,
		send:     make(chan []byte, sendBufferSize),
		UserID:   userID,
		Username: username,
	}
}

// Emit queues an event frame for delivery. A full buffer drops the frame
// rather than blocking the caller; the slow connection will be reaped by
// its write pump timing out.
func (c *Client) Emit(event string, payload interface{}) {
	frame, err := newEnvelope(event, payload)
	if err != nil {
		return
	}
	select {
	case c.send <- frame:
	default:
	}
}

// writePump drains the send buffer onto the wire and keeps the
// connection alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
