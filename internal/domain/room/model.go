package room

import "time"

// Room is one chat room as stored by the directory. PasswordHash is nil for
// open rooms; it never leaves the server.
type Room struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"size:128;not null" json:"name"`
	Description  string    `gorm:"size:512" json:"description"`
	PasswordHash *string   `gorm:"column:password" json:"-"`
	CreatedBy    string    `gorm:"size:64" json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the table name for the Room model.
func (Room) TableName() string {
	return "rooms"
}

// HasPassword reports whether joining the room requires a password.
func (r *Room) HasPassword() bool {
	return r.PasswordHash != nil && *r.PasswordHash != ""
}
