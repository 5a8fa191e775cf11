// Package wsserver exposes the chat wire protocol over WebSocket. Each
// connection gets a session, a read pump processing its frames strictly in
// order, and a write pump draining its send buffer.
package wsserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"chat-server/internal/config"
	"chat-server/internal/domain/chat"
	"chat-server/internal/domain/message"
	"chat-server/internal/infrastructure/metrics"
)

// Handler upgrades HTTP requests at /ws into chat sessions.
type Handler struct {
	cfg         *config.Config
	store       message.Store
	registry    *chat.Registry
	broadcaster *chat.Broadcaster
	log         zerolog.Logger
	upgrader    websocket.Upgrader
}

// New creates a WebSocket handler.
func New(cfg *config.Config, log zerolog.Logger, store message.Store, registry *chat.Registry, broadcaster *chat.Broadcaster) *Handler {
	return &Handler{
		cfg:         cfg,
		store:       store,
		registry:    registry,
		broadcaster: broadcaster,
		log:         log.With().Str("component", "wsserver").Logger(),
		upgrader: websocket.Upgrader{
			// The chat client is served from arbitrary origins in
			// development; production deployments sit behind a gateway
			// that enforces origin policy.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handle runs one connection to completion.
func (h *Handler) Handle(c *gin.Context) {
	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Debug().Err(err).Msg("upgrade failed")
		return
	}

	wsc := newConn(ws, h.cfg.SendBufferSize, h.cfg.WriteTimeout)
	sess := chat.NewSession(uuid.NewString(), wsc, h.store, h.registry, h.broadcaster, h.log)
	metrics.RecordConnectionOpened()

	go wsc.writePump()
	h.readPump(wsc, sess)
}

// readPump reads frames until the peer goes away. Store operations run on a
// background context: closing the connection stops new frames but lets an
// in-flight persistence write finish.
func (h *Handler) readPump(wsc *conn, sess *chat.Session) {
	defer func() {
		sess.Close()
		metrics.RecordConnectionClosed()
	}()

	ctx := context.Background()
	for {
		_, raw, err := wsc.ws.ReadMessage()
		if err != nil {
			return
		}
		sess.HandleFrame(ctx, raw)
	}
}
