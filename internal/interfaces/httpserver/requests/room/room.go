// Package room contains HTTP request DTOs for room directory endpoints.
package room

// CreateRoomRequest is the body of POST /api/rooms.
type CreateRoomRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Password    string `json:"password"`
	Username    string `json:"username"`
}

// CheckPasswordRequest is the body of POST /api/rooms/:id/check-password.
type CheckPasswordRequest struct {
	Password string `json:"password"`
}

// DeleteRoomRequest is the body of DELETE /api/rooms/:id.
type DeleteRoomRequest struct {
	Password string `json:"password"`
}
