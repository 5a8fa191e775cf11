package message

import "time"

// Kind selects how a message renders and whether it can be edited.
type Kind string

const (
	KindText  Kind = "text"
	KindImage Kind = "image"
	KindVideo Kind = "video"
	KindAudio Kind = "audio"
)

// Valid reports whether k is one of the defined message kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindText, KindImage, KindVideo, KindAudio:
		return true
	}
	return false
}

// Editable reports whether messages of this kind accept edits.
// Media messages are never convertible to text edits.
func (k Kind) Editable() bool {
	return k == KindText
}

// Message is one persisted chat message. For media kinds the Text field
// holds the media URL.
type Message struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomID    int64     `gorm:"index;not null" json:"room_id"`
	Username  string    `gorm:"size:64;not null" json:"username"`
	Text      string    `gorm:"not null" json:"text"`
	CreatedAt time.Time `gorm:"index" json:"time"`
	IsEdited  bool      `gorm:"not null;default:false" json:"is_edited"`
	Kind      Kind      `gorm:"column:type;size:8;not null;default:text" json:"type"`
}

// TableName returns the table name for the Message model.
func (Message) TableName() string {
	return "messages"
}
