package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"chat-server/internal/domain/message"
	"chat-server/internal/infrastructure/metrics"
)

// State represents the lifecycle state of a connection session.
type State string

const (
	// StateUnjoined indicates the connection is open but not in a room.
	StateUnjoined State = "unjoined"
	// StateJoined indicates the session is registered in a room.
	StateJoined State = "joined"
	// StateClosed is terminal; no further frames are processed.
	StateClosed State = "closed"
)

// Sender is the opaque send capability of one live connection. Send must be
// non-blocking or bounded-blocking so one slow client cannot starve a
// room's broadcast; a send error means the peer is gone.
type Sender interface {
	Send(payload []byte) error
	Close() error
}

// Session drives the join/send/edit/delete protocol for one connection.
// HandleFrame is called from a single goroutine per connection, so frames
// from one client are processed strictly in order; the mutex only guards
// against concurrent Close and detach from other goroutines.
type Session struct {
	id          string
	conn        Sender
	store       message.Store
	registry    *Registry
	broadcaster *Broadcaster
	log         zerolog.Logger

	mu       sync.Mutex
	state    State
	roomID   int64
	username string
}

// NewSession creates a session in the Unjoined state.
func NewSession(id string, conn Sender, store message.Store, registry *Registry, broadcaster *Broadcaster, log zerolog.Logger) *Session {
	return &Session{
		id:          id,
		conn:        conn,
		store:       store,
		registry:    registry,
		broadcaster: broadcaster,
		log:         log.With().Str("component", "session").Str("session_id", id).Logger(),
		state:       StateUnjoined,
	}
}

// ID returns the session identifier used for logging.
func (s *Session) ID() string {
	return s.id
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Send forwards payload to the connection.
func (s *Session) Send(payload []byte) error {
	return s.conn.Send(payload)
}

// HandleFrame processes one raw client frame. Malformed frames, frames
// arriving before a join and mutations that fail authorization are all
// dropped silently: the client observes either a broadcast or nothing.
func (s *Session) HandleFrame(ctx context.Context, raw []byte) {
	frame, err := DecodeClientFrame(raw)
	if err != nil {
		s.log.Debug().Err(err).Msg("dropping malformed frame")
		return
	}

	switch frame.Type {
	case FrameJoin:
		s.handleJoin(ctx, frame)
	case FrameEdit:
		s.handleEdit(ctx, frame)
	case FrameDelete:
		s.handleDelete(ctx, frame)
	default:
		if kind, ok := frame.Kind(); ok {
			s.handleMessage(ctx, kind, frame)
		}
	}
}

// handleJoin registers the session in the room and replays the room's
// history to this connection only. Joining while already joined is a fresh
// join: the old membership is dropped before the new one is added so no
// stale fan-out can reach this session. The room password is not
// re-verified here; the gate runs on a dedicated pre-join request.
func (s *Session) handleJoin(ctx context.Context, frame *ClientFrame) {
	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		return
	}
	oldRoom, wasJoined := s.roomID, s.state == StateJoined
	s.roomID = int64(frame.RoomID)
	s.username = frame.Username
	s.state = StateJoined
	s.mu.Unlock()

	if wasJoined {
		s.registry.Remove(oldRoom, s)
	}
	s.registry.Add(int64(frame.RoomID), s)

	start := time.Now()
	history, err := s.store.History(ctx, int64(frame.RoomID))
	if err != nil {
		s.log.Error().Err(err).Int64("room_id", int64(frame.RoomID)).Msg("failed to load history")
		return
	}
	payload, err := EncodeHistory(history, frame.Username)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to encode history")
		return
	}
	if err := s.conn.Send(payload); err != nil {
		s.log.Debug().Err(err).Msg("history send failed")
		s.Close()
		return
	}
	metrics.HistoryReplayDuration.Observe(time.Since(start).Seconds())

	s.log.Info().
		Int64("room_id", int64(frame.RoomID)).
		Str("username", frame.Username).
		Int("history_len", len(history)).
		Msg("session joined room")
}

// handleMessage persists the message and only then fans the full record out
// to the room, so every observer sees creates before edits or deletes of
// the same message.
func (s *Session) handleMessage(ctx context.Context, kind message.Kind, frame *ClientFrame) {
	roomID, username, joined := s.membership()
	if !joined {
		return
	}

	text := frame.Text
	if !kind.Editable() {
		// Media messages carry the URL in the text column.
		text = frame.URL
	}

	msg, err := s.store.Append(ctx, roomID, username, kind, text)
	if err != nil {
		s.log.Error().Err(err).Int64("room_id", roomID).Msg("failed to persist message")
		return
	}

	payload, err := EncodeMessage(msg, frame.URL)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to encode message")
		return
	}
	s.broadcaster.Broadcast(roomID, payload)
	metrics.RecordMessage(string(kind))
}

// handleEdit mutates the stored message through the store's atomic
// check-and-update and broadcasts the edit delta on success. Authorization
// and not-found failures are silent no-ops so non-authors learn nothing.
func (s *Session) handleEdit(ctx context.Context, frame *ClientFrame) {
	roomID, username, joined := s.membership()
	if !joined {
		return
	}

	msg, err := s.store.Edit(ctx, int64(frame.MessageID), username, frame.NewText)
	if err != nil {
		if errors.Is(err, message.ErrNotFound) || errors.Is(err, message.ErrNotAuthor) || errors.Is(err, message.ErrNotEditable) {
			s.log.Debug().Err(err).Int64("message_id", int64(frame.MessageID)).Msg("edit rejected")
		} else {
			s.log.Error().Err(err).Int64("message_id", int64(frame.MessageID)).Msg("edit failed")
		}
		return
	}

	payload, err := EncodeEdit(msg)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to encode edit")
		return
	}
	s.broadcaster.Broadcast(roomID, payload)
}

// handleDelete removes the message and broadcasts the deletion delta only
// if the store reports a row was actually removed.
func (s *Session) handleDelete(ctx context.Context, frame *ClientFrame) {
	roomID, username, joined := s.membership()
	if !joined {
		return
	}

	removed, err := s.store.Delete(ctx, int64(frame.MessageID), username)
	if err != nil {
		s.log.Error().Err(err).Int64("message_id", int64(frame.MessageID)).Msg("delete failed")
		return
	}
	if !removed {
		return
	}

	payload, err := EncodeDelete(int64(frame.MessageID))
	if err != nil {
		s.log.Error().Err(err).Msg("failed to encode delete")
		return
	}
	s.broadcaster.Broadcast(roomID, payload)
}

// Close deregisters the session and closes the connection. It is
// idempotent; no frames are processed afterwards. In-flight store calls
// started before Close are allowed to complete.
func (s *Session) Close() {
	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		return
	}
	roomID, wasJoined := s.roomID, s.state == StateJoined
	s.state = StateClosed
	s.mu.Unlock()

	if wasJoined {
		s.registry.Remove(roomID, s)
	}
	if err := s.conn.Close(); err != nil {
		s.log.Debug().Err(err).Msg("connection close")
	}
	s.log.Info().Msg("session closed")
}

// detach reverts the session to Unjoined when its room is dropped out from
// under it. The connection stays open; the client may join another room.
func (s *Session) detach(roomID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateJoined && s.roomID == roomID {
		s.state = StateUnjoined
		s.roomID = 0
	}
}

func (s *Session) membership() (roomID int64, username string, joined bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roomID, s.username, s.state == StateJoined
}
