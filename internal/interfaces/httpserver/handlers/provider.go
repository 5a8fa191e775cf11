package handlers

import (
	"github.com/rs/zerolog"

	"chat-server/internal/config"
	"chat-server/internal/domain/room"
)

// Provider holds all HTTP handlers.
type Provider struct {
	Room   *RoomHandler
	Upload *UploadHandler
}

// NewProvider creates a new handler provider.
func NewProvider(cfg *config.Config, log zerolog.Logger, roomService *room.Service) (*Provider, error) {
	upload, err := NewUploadHandler(cfg, log)
	if err != nil {
		return nil, err
	}
	return &Provider{
		Room:   NewRoomHandler(roomService),
		Upload: upload,
	}, nil
}
