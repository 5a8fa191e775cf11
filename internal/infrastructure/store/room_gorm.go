package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"chat-server/internal/domain/room"
)

// GormDirectory persists rooms in SQLite through GORM.
type GormDirectory struct {
	db *gorm.DB
}

// NewGormDirectory creates a room directory over the given database.
func NewGormDirectory(db *gorm.DB) *GormDirectory {
	return &GormDirectory{db: db}
}

// Create stores a new room; GORM fills ID and CreatedAt.
func (d *GormDirectory) Create(ctx context.Context, r *room.Room) error {
	if err := d.db.WithContext(ctx).Create(r).Error; err != nil {
		return fmt.Errorf("create room: %w", err)
	}
	return nil
}

// Get retrieves a room by ID.
func (d *GormDirectory) Get(ctx context.Context, id int64) (*room.Room, error) {
	var r room.Room
	if err := d.db.WithContext(ctx).First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, room.ErrNotFound
		}
		return nil, fmt.Errorf("get room: %w", err)
	}
	return &r, nil
}

// List returns all rooms in creation order.
func (d *GormDirectory) List(ctx context.Context) ([]*room.Room, error) {
	var rooms []*room.Room
	if err := d.db.WithContext(ctx).Order("id").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

// Delete removes a room by ID.
func (d *GormDirectory) Delete(ctx context.Context, id int64) error {
	res := d.db.WithContext(ctx).Delete(&room.Room{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete room: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return room.ErrNotFound
	}
	return nil
}
