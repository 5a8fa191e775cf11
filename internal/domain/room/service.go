package room

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"chat-server/internal/domain/message"
)

// ErrInvalidPassword is returned when a password-guarded operation is
// attempted with the wrong password.
var ErrInvalidPassword = errors.New("invalid room password")

// Hasher is the password hashing capability the service delegates to.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// Membership is the live-connection side of a room, notified when the room
// is deleted so stale fan-out cannot occur.
type Membership interface {
	DropRoom(roomID int64)
}

// Service implements the room directory operations and the password gate
// consulted before a client joins over the WebSocket.
type Service struct {
	directory Directory
	messages  message.Store
	members   Membership
	hasher    Hasher
	log       zerolog.Logger
}

// NewService creates a new room service.
func NewService(directory Directory, messages message.Store, members Membership, hasher Hasher, log zerolog.Logger) *Service {
	return &Service{
		directory: directory,
		messages:  messages,
		members:   members,
		hasher:    hasher,
		log:       log.With().Str("component", "room-service").Logger(),
	}
}

// Create stores a new room, hashing the password when one is supplied.
func (s *Service) Create(ctx context.Context, name, description, password, username string) (*Room, error) {
	room := &Room{
		Name:        name,
		Description: description,
		CreatedBy:   username,
	}
	if password != "" {
		hash, err := s.hasher.Hash(password)
		if err != nil {
			return nil, err
		}
		room.PasswordHash = &hash
	}

	if err := s.directory.Create(ctx, room); err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("room_id", room.ID).
		Str("created_by", username).
		Bool("has_password", room.HasPassword()).
		Msg("room created")

	return room, nil
}

// Get retrieves a room by ID.
func (s *Service) Get(ctx context.Context, id int64) (*Room, error) {
	return s.directory.Get(ctx, id)
}

// List returns all rooms.
func (s *Service) List(ctx context.Context) ([]*Room, error) {
	return s.directory.List(ctx)
}

// CheckPassword reports whether the supplied password grants access to the
// room. A room without a password accepts any input, including the empty
// string. This gate is consulted by a dedicated pre-join request; the
// WebSocket join frame itself does not re-verify.
func (s *Service) CheckPassword(ctx context.Context, id int64, password string) (bool, error) {
	room, err := s.directory.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if !room.HasPassword() {
		return true, nil
	}
	return s.hasher.Verify(password, *room.PasswordHash), nil
}

// Delete removes a room after verifying its password, then cascades into
// the message store and the live membership so no session keeps receiving
// fan-out for a room that no longer exists.
func (s *Service) Delete(ctx context.Context, id int64, password string) error {
	valid, err := s.CheckPassword(ctx, id, password)
	if err != nil {
		return err
	}
	if !valid {
		return ErrInvalidPassword
	}

	if err := s.directory.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.messages.DeleteRoom(ctx, id); err != nil {
		s.log.Error().Err(err).Int64("room_id", id).Msg("failed to cascade message deletion")
		return err
	}
	if s.members != nil {
		s.members.DropRoom(id)
	}

	s.log.Info().Int64("room_id", id).Msg("room deleted")
	return nil
}
