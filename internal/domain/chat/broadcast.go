package chat

import (
	"github.com/rs/zerolog"

	"chat-server/internal/infrastructure/metrics"
)

// Broadcaster fans frames out to every session registered in a room.
type Broadcaster struct {
	registry *Registry
	log      zerolog.Logger
}

// NewBroadcaster creates a broadcaster over the given registry.
func NewBroadcaster(registry *Registry, log zerolog.Logger) *Broadcaster {
	return &Broadcaster{
		registry: registry,
		log:      log.With().Str("component", "broadcaster").Logger(),
	}
}

// Broadcast delivers payload to every member of the room present in the
// registry snapshot taken at call time. Delivery is best-effort per
// connection: a session whose send fails is closed and evicted, and the
// failure is never escalated to the caller. Zero recipients is a success.
func (b *Broadcaster) Broadcast(roomID int64, payload []byte) {
	members := b.registry.Members(roomID)
	for _, s := range members {
		if err := s.Send(payload); err != nil {
			metrics.BroadcastSendErrors.Inc()
			b.log.Debug().
				Err(err).
				Int64("room_id", roomID).
				Str("session_id", s.ID()).
				Msg("evicting unreachable session")
			s.Close()
		}
	}
	metrics.ObserveFanout(len(members))
}
