package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"chat-server/internal/domain/message"
)

// GormMessageStore persists messages in SQLite through GORM.
type GormMessageStore struct {
	db *gorm.DB
}

// NewGormMessageStore creates a message store over the given database.
func NewGormMessageStore(db *gorm.DB) *GormMessageStore {
	return &GormMessageStore{db: db}
}

// Append persists a new message. GORM fills ID (autoincrement) and
// CreatedAt on insert.
func (s *GormMessageStore) Append(ctx context.Context, roomID int64, username string, kind message.Kind, text string) (*message.Message, error) {
	msg := &message.Message{
		RoomID:   roomID,
		Username: username,
		Text:     text,
		Kind:     kind,
	}
	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, fmt.Errorf("append message: %w", err)
	}
	return msg, nil
}

// History returns the room's messages ordered by creation time, ID as the
// tie-break.
func (s *GormMessageStore) History(ctx context.Context, roomID int64) ([]*message.Message, error) {
	var msgs []*message.Message
	err := s.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at, id").
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return msgs, nil
}

// Edit replaces the text of a text message authored by username. The guard
// conditions live in the UPDATE's WHERE clause, so the author/kind check
// and the mutation are one atomic statement; concurrent deletes or edits
// cannot slip between them.
func (s *GormMessageStore) Edit(ctx context.Context, id int64, username, newText string) (*message.Message, error) {
	res := s.db.WithContext(ctx).
		Model(&message.Message{}).
		Where("id = ? AND username = ? AND type = ?", id, username, message.KindText).
		Updates(map[string]interface{}{"text": newText, "is_edited": true})
	if res.Error != nil {
		return nil, fmt.Errorf("edit message: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, s.classifyEditFailure(ctx, id, username)
	}

	var msg message.Message
	if err := s.db.WithContext(ctx).First(&msg, id).Error; err != nil {
		return nil, fmt.Errorf("reload edited message: %w", err)
	}
	return &msg, nil
}

// classifyEditFailure distinguishes why a guarded edit matched no rows.
func (s *GormMessageStore) classifyEditFailure(ctx context.Context, id int64, username string) error {
	var msg message.Message
	err := s.db.WithContext(ctx).First(&msg, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return message.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("inspect message: %w", err)
	}
	if !msg.Kind.Editable() {
		return message.ErrNotEditable
	}
	if msg.Username != username {
		return message.ErrNotAuthor
	}
	return message.ErrNotFound
}

// Delete removes the message iff username is its author, reporting whether
// a row was removed.
func (s *GormMessageStore) Delete(ctx context.Context, id int64, username string) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("id = ? AND username = ?", id, username).
		Delete(&message.Message{})
	if res.Error != nil {
		return false, fmt.Errorf("delete message: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// DeleteRoom removes every message of a room.
func (s *GormMessageStore) DeleteRoom(ctx context.Context, roomID int64) error {
	if err := s.db.WithContext(ctx).Where("room_id = ?", roomID).Delete(&message.Message{}).Error; err != nil {
		return fmt.Errorf("delete room messages: %w", err)
	}
	return nil
}
