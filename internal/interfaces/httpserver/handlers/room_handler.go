package handlers

import (
	"context"

	"chat-server/internal/domain/room"
)

// RoomHandler handles room directory HTTP requests.
type RoomHandler struct {
	service *room.Service
}

// NewRoomHandler creates a new room handler.
func NewRoomHandler(service *room.Service) *RoomHandler {
	return &RoomHandler{service: service}
}

// CreateRoom creates a new room, hashing the password when present.
func (h *RoomHandler) CreateRoom(ctx context.Context, name, description, password, username string) (*room.Room, error) {
	return h.service.Create(ctx, name, description, password, username)
}

// GetRoom retrieves a room by ID.
func (h *RoomHandler) GetRoom(ctx context.Context, id int64) (*room.Room, error) {
	return h.service.Get(ctx, id)
}

// ListRooms retrieves all rooms.
func (h *RoomHandler) ListRooms(ctx context.Context) ([]*room.Room, error) {
	return h.service.List(ctx)
}

// CheckPassword runs the room access gate.
func (h *RoomHandler) CheckPassword(ctx context.Context, id int64, password string) (bool, error) {
	return h.service.CheckPassword(ctx, id, password)
}

// DeleteRoom deletes a room after verifying its password and cascades into
// messages and live membership.
func (h *RoomHandler) DeleteRoom(ctx context.Context, id int64, password string) error {
	return h.service.Delete(ctx, id, password)
}
