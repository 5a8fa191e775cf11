package chat

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"chat-server/internal/domain/message"
)

// Frame types beyond the four message kinds.
const (
	FrameJoin    = "join"
	FrameEdit    = "edit"
	FrameDelete  = "delete"
	FrameHistory = "history"
)

// timeLayout is the clock-string format carried in server frames.
const timeLayout = "15:04:05"

// ErrInvalidFrame is returned by DecodeClientFrame for malformed frames.
// Invalid frames are dropped by the session with no error sent back; the
// protocol has no negative acknowledgment channel.
var ErrInvalidFrame = errors.New("invalid frame")

// ID is a numeric identifier that tolerates being sent as either a JSON
// number or a quoted string, which browser clients do interchangeably.
type ID int64

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: bad id %q", ErrInvalidFrame, data)
	}
	*id = ID(n)
	return nil
}

// ClientFrame is one decoded client-to-server frame. Field presence depends
// on Type; Validate enforces the per-type requirements.
type ClientFrame struct {
	Type      string `json:"type"`
	RoomID    ID     `json:"roomId,omitempty"`
	Username  string `json:"username,omitempty"`
	Text      string `json:"text,omitempty"`
	URL       string `json:"url,omitempty"`
	MessageID ID     `json:"messageId,omitempty"`
	NewText   string `json:"newText,omitempty"`
}

// Kind returns the message kind selected by the frame type, or false when
// the frame is not a message-class frame.
func (f *ClientFrame) Kind() (message.Kind, bool) {
	switch f.Type {
	case "message":
		return message.KindText, true
	case string(message.KindImage), string(message.KindVideo), string(message.KindAudio):
		return message.Kind(f.Type), true
	}
	return "", false
}

// Validate checks that every field the frame type requires is present.
func (f *ClientFrame) Validate() error {
	switch f.Type {
	case FrameJoin:
		if f.RoomID <= 0 || f.Username == "" {
			return fmt.Errorf("%w: join requires roomId and username", ErrInvalidFrame)
		}
	case "message":
		if f.Text == "" {
			return fmt.Errorf("%w: message requires text", ErrInvalidFrame)
		}
	case string(message.KindImage), string(message.KindVideo), string(message.KindAudio):
		if f.URL == "" {
			return fmt.Errorf("%w: %s requires url", ErrInvalidFrame, f.Type)
		}
	case FrameEdit:
		if f.MessageID <= 0 || f.NewText == "" {
			return fmt.Errorf("%w: edit requires messageId and newText", ErrInvalidFrame)
		}
	case FrameDelete:
		if f.MessageID <= 0 {
			return fmt.Errorf("%w: delete requires messageId", ErrInvalidFrame)
		}
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidFrame, f.Type)
	}
	return nil
}

// DecodeClientFrame parses and validates one raw frame.
func DecodeClientFrame(raw []byte) (*ClientFrame, error) {
	var frame ClientFrame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrame, err)
	}
	if err := frame.Validate(); err != nil {
		return nil, err
	}
	return &frame, nil
}

type historyEntry struct {
	ID       int64        `json:"id"`
	Username string       `json:"username"`
	Text     string       `json:"text"`
	Time     string       `json:"time"`
	IsEdited bool         `json:"is_edited"`
	Kind     message.Kind `json:"type"`
	CanEdit  bool         `json:"canEdit"`
}

type historyFrame struct {
	Type     string         `json:"type"`
	Messages []historyEntry `json:"messages"`
}

// EncodeHistory builds the one-time history frame sent privately to a
// freshly joined session. CanEdit is computed per viewer.
func EncodeHistory(msgs []*message.Message, viewer string) ([]byte, error) {
	entries := make([]historyEntry, 0, len(msgs))
	for _, m := range msgs {
		entries = append(entries, historyEntry{
			ID:       m.ID,
			Username: m.Username,
			Text:     m.Text,
			Time:     m.CreatedAt.Format(timeLayout),
			IsEdited: m.IsEdited,
			Kind:     m.Kind,
			CanEdit:  m.Username == viewer,
		})
	}
	return json.Marshal(historyFrame{Type: FrameHistory, Messages: entries})
}

type messageFrame struct {
	Type     message.Kind `json:"type"`
	ID       int64        `json:"id"`
	RoomID   int64        `json:"room_id"`
	Username string       `json:"username"`
	Text     string       `json:"text"`
	URL      string       `json:"url,omitempty"`
	Time     string       `json:"time"`
	IsEdited bool         `json:"is_edited"`
	CanEdit  bool         `json:"canEdit"`
}

// EncodeMessage builds the full-record broadcast frame for a new message.
// CanEdit is computed against the author at send time, so every room member
// receives the same frame.
func EncodeMessage(m *message.Message, url string) ([]byte, error) {
	return json.Marshal(messageFrame{
		Type:     m.Kind,
		ID:       m.ID,
		RoomID:   m.RoomID,
		Username: m.Username,
		Text:     m.Text,
		URL:      url,
		Time:     m.CreatedAt.Format(timeLayout),
		IsEdited: m.IsEdited,
		CanEdit:  true,
	})
}

type editFrame struct {
	Type     string `json:"type"`
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Text     string `json:"text"`
	Time     string `json:"time"`
	IsEdited bool   `json:"is_edited"`
	CanEdit  bool   `json:"canEdit"`
}

// EncodeEdit builds the compact delta broadcast after a successful edit.
func EncodeEdit(m *message.Message) ([]byte, error) {
	return json.Marshal(editFrame{
		Type:     FrameEdit,
		ID:       m.ID,
		Username: m.Username,
		Text:     m.Text,
		Time:     m.CreatedAt.Format(timeLayout),
		IsEdited: m.IsEdited,
		CanEdit:  true,
	})
}

type deleteFrame struct {
	Type      string `json:"type"`
	MessageID int64  `json:"messageId"`
}

// EncodeDelete builds the deletion delta broadcast after a removal.
func EncodeDelete(messageID int64) ([]byte, error) {
	return json.Marshal(deleteFrame{Type: FrameDelete, MessageID: messageID})
}
