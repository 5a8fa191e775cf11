// Package api registers the REST surface consumed by the chat client:
// the room directory and media upload.
package api

import (
	"github.com/gin-gonic/gin"

	"chat-server/internal/interfaces/httpserver/handlers"
)

// Routes holds the /api route configuration.
type Routes struct {
	handlers *handlers.Provider
}

// NewRoutes creates a new api routes instance.
func NewRoutes(handlerProvider *handlers.Provider) *Routes {
	return &Routes{
		handlers: handlerProvider,
	}
}

// Register registers all /api routes on the engine.
func (r *Routes) Register(engine *gin.Engine) {
	api := engine.Group("/api")
	RegisterRoomRoutes(api, r.handlers.Room)
	api.POST("/upload", r.handlers.Upload.Upload)
}
