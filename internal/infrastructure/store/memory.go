package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"chat-server/internal/domain/message"
	"chat-server/internal/domain/room"
)

// MemoryMessageStore is a mutex-based in-memory message store.
// Thread-safe via sync.RWMutex.
type MemoryMessageStore struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]*message.Message
	byRoom map[int64][]int64
	now    func() time.Time
}

// NewMemoryMessageStore creates a new in-memory message store.
func NewMemoryMessageStore() *MemoryMessageStore {
	return &MemoryMessageStore{
		nextID: 1,
		byID:   make(map[int64]*message.Message),
		byRoom: make(map[int64][]int64),
		now:    time.Now,
	}
}

// Append persists a new message, assigning the next ID and the current
// timestamp.
func (s *MemoryMessageStore) Append(ctx context.Context, roomID int64, username string, kind message.Kind, text string) (*message.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := &message.Message{
		ID:        s.nextID,
		RoomID:    roomID,
		Username:  username,
		Text:      text,
		CreatedAt: s.now(),
		Kind:      kind,
	}
	s.nextID++
	s.byID[msg.ID] = msg
	s.byRoom[roomID] = append(s.byRoom[roomID], msg.ID)
	return copyMessage(msg), nil
}

// History returns the room's messages ordered by creation time then ID.
func (s *MemoryMessageStore) History(ctx context.Context, roomID int64) ([]*message.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byRoom[roomID]
	msgs := make([]*message.Message, 0, len(ids))
	for _, id := range ids {
		msgs = append(msgs, copyMessage(s.byID[id]))
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].CreatedAt.Equal(msgs[j].CreatedAt) {
			return msgs[i].ID < msgs[j].ID
		}
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	})
	return msgs, nil
}

// Edit atomically checks author and kind, then replaces the text.
func (s *MemoryMessageStore) Edit(ctx context.Context, id int64, username, newText string) (*message.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, ok := s.byID[id]
	if !ok {
		return nil, message.ErrNotFound
	}
	if !msg.Kind.Editable() {
		return nil, message.ErrNotEditable
	}
	if msg.Username != username {
		return nil, message.ErrNotAuthor
	}
	msg.Text = newText
	msg.IsEdited = true
	return copyMessage(msg), nil
}

// Delete removes the message iff username is its author.
func (s *MemoryMessageStore) Delete(ctx context.Context, id int64, username string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, ok := s.byID[id]
	if !ok || msg.Username != username {
		return false, nil
	}
	delete(s.byID, id)
	s.byRoom[msg.RoomID] = removeID(s.byRoom[msg.RoomID], id)
	return true, nil
}

// DeleteRoom removes every message of a room.
func (s *MemoryMessageStore) DeleteRoom(ctx context.Context, roomID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.byRoom[roomID] {
		delete(s.byID, id)
	}
	delete(s.byRoom, roomID)
	return nil
}

func copyMessage(m *message.Message) *message.Message {
	c := *m
	return &c
}

func removeID(ids []int64, id int64) []int64 {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// MemoryDirectory is a mutex-based in-memory room directory.
type MemoryDirectory struct {
	mu     sync.RWMutex
	nextID int64
	rooms  map[int64]*room.Room
	now    func() time.Time
}

// NewMemoryDirectory creates a new in-memory room directory.
func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{
		nextID: 1,
		rooms:  make(map[int64]*room.Room),
		now:    time.Now,
	}
}

// Create stores a new room and assigns its ID.
func (d *MemoryDirectory) Create(ctx context.Context, r *room.Room) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	r.ID = d.nextID
	r.CreatedAt = d.now()
	d.nextID++
	stored := *r
	d.rooms[r.ID] = &stored
	return nil
}

// Get retrieves a room by ID.
func (d *MemoryDirectory) Get(ctx context.Context, id int64) (*room.Room, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	r, ok := d.rooms[id]
	if !ok {
		return nil, room.ErrNotFound
	}
	c := *r
	return &c, nil
}

// List returns all rooms in creation order.
func (d *MemoryDirectory) List(ctx context.Context) ([]*room.Room, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	rooms := make([]*room.Room, 0, len(d.rooms))
	for _, r := range d.rooms {
		c := *r
		rooms = append(rooms, &c)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms, nil
}

// Delete removes a room by ID.
func (d *MemoryDirectory) Delete(ctx context.Context, id int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.rooms[id]; !ok {
		return room.ErrNotFound
	}
	delete(d.rooms, id)
	return nil
}
