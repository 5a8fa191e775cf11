package chat

import (
	"sync"

	"chat-server/internal/infrastructure/metrics"
)

// Registry tracks which sessions are currently joined to which room. It is
// membership, not ownership: sessions are owned by the connection layer.
// All concurrency-unsafe access to the room table is confined here.
type Registry struct {
	mu    sync.RWMutex
	rooms map[int64]map[*Session]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[int64]map[*Session]struct{}),
	}
}

// Add inserts a session into the room's member set, creating the set on
// first member.
func (r *Registry) Add(roomID int64, s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.rooms[roomID]
	if !ok {
		members = make(map[*Session]struct{})
		r.rooms[roomID] = members
		metrics.ActiveRooms.Inc()
	}
	members[s] = struct{}{}
}

// Remove removes a session from the room's member set. It is idempotent.
// The room entry is garbage-collected when its last member leaves, so
// membership storage is bounded by currently-active rooms.
func (r *Registry) Remove(roomID int64, s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.rooms[roomID]
	if !ok {
		return
	}
	delete(members, s)
	if len(members) == 0 {
		delete(r.rooms, roomID)
		metrics.ActiveRooms.Dec()
	}
}

// Members returns a snapshot of the room's member set. Joins and leaves
// after the call do not affect a fan-out already iterating the snapshot.
func (r *Registry) Members(roomID int64) []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := r.rooms[roomID]
	snapshot := make([]*Session, 0, len(members))
	for s := range members {
		snapshot = append(snapshot, s)
	}
	return snapshot
}

// DropRoom removes the whole member set of a room and detaches every
// session in it. Invoked when the room directory deletes the room.
func (r *Registry) DropRoom(roomID int64) {
	r.mu.Lock()
	members, ok := r.rooms[roomID]
	if ok {
		delete(r.rooms, roomID)
		metrics.ActiveRooms.Dec()
	}
	r.mu.Unlock()

	// Detach outside the registry lock; detach takes each session's lock.
	for s := range members {
		s.detach(roomID)
	}
}
