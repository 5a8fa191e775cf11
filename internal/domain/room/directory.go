package room

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a room does not exist.
var ErrNotFound = errors.New("room not found")

// Directory defines the interface for room storage.
type Directory interface {
	// Create stores a new room and assigns its ID.
	Create(ctx context.Context, room *Room) error

	// Get retrieves a room by ID, or ErrNotFound.
	Get(ctx context.Context, id int64) (*Room, error)

	// List returns all rooms.
	List(ctx context.Context) ([]*Room, error)

	// Delete removes a room by ID, or ErrNotFound.
	Delete(ctx context.Context, id int64) error
}
