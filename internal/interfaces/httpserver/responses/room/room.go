// Package room contains HTTP response DTOs for room directory endpoints.
package room

import domain "chat-server/internal/domain/room"

// RoomSummary is the listing and creation response shape.
type RoomSummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RoomDetail is the single-room response shape.
type RoomDetail struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	HasPassword bool   `json:"has_password"`
	CreatedBy   string `json:"created_by"`
}

// CheckPasswordResponse reports the password gate's verdict.
type CheckPasswordResponse struct {
	Valid bool `json:"valid"`
}

// DeleteRoomResponse is the deletion acknowledgment.
type DeleteRoomResponse struct {
	Success bool `json:"success"`
}

// NewRoomSummary builds the summary DTO for a room.
func NewRoomSummary(r *domain.Room) RoomSummary {
	return RoomSummary{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
	}
}

// NewRoomList builds the listing for GET /api/rooms.
func NewRoomList(rooms []*domain.Room) []RoomSummary {
	list := make([]RoomSummary, 0, len(rooms))
	for _, r := range rooms {
		list = append(list, NewRoomSummary(r))
	}
	return list
}

// NewRoomDetail builds the DTO for GET /api/rooms/:id.
func NewRoomDetail(r *domain.Room) RoomDetail {
	return RoomDetail{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		HasPassword: r.HasPassword(),
		CreatedBy:   r.CreatedBy,
	}
}
