package wsserver

import (
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ErrSendBufferFull is returned when a peer cannot keep up with the frames
// queued for it. The broadcaster treats it like a dead peer.
var ErrSendBufferFull = errors.New("send buffer full")

// ErrConnClosed is returned when sending on a closed connection.
var ErrConnClosed = errors.New("connection closed")

// conn wraps one WebSocket connection behind the chat.Sender capability.
// Writes go through a buffered channel drained by a single write goroutine,
// so a slow reader never blocks the goroutine doing the fan-out.
type conn struct {
	ws           *websocket.Conn
	send         chan []byte
	done         chan struct{}
	writeTimeout time.Duration
	closeOnce    sync.Once
}

func newConn(ws *websocket.Conn, bufferSize int, writeTimeout time.Duration) *conn {
	return &conn{
		ws:           ws,
		send:         make(chan []byte, bufferSize),
		done:         make(chan struct{}),
		writeTimeout: writeTimeout,
	}
}

// Send queues payload for delivery without blocking. A full buffer means
// the peer has stalled; the caller is expected to drop the connection.
func (c *conn) Send(payload []byte) error {
	select {
	case <-c.done:
		return ErrConnClosed
	default:
	}

	select {
	case c.send <- payload:
		return nil
	default:
		return ErrSendBufferFull
	}
}

// Close shuts the connection down. Idempotent.
func (c *conn) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
	})
	return c.ws.Close()
}

// writePump drains the send channel onto the wire. It exits when the
// connection closes; each write carries a deadline so a wedged peer cannot
// hold the goroutine forever.
func (c *conn) writePump() {
	for {
		select {
		case <-c.done:
			return
		case payload := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(c.writeTimeout))
			if err := c.ws.WriteMessage(websocket.TextMessage, payload); err != nil {
				c.Close()
				return
			}
		}
	}
}
