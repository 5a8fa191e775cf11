package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"chat-server/internal/domain/message"
	"chat-server/internal/domain/room"
)

func TestMemoryMessageStore_AppendAssignsMonotonicIDs(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryMessageStore()

	first, err := s.Append(ctx, 1, "alice", message.KindText, "one")
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	second, err := s.Append(ctx, 1, "alice", message.KindText, "two")
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	if first.ID <= 0 || second.ID <= first.ID {
		t.Errorf("IDs = %d, %d; want positive and strictly increasing", first.ID, second.ID)
	}
	if first.CreatedAt.IsZero() {
		t.Error("CreatedAt not assigned")
	}
	if first.IsEdited {
		t.Error("new message born edited")
	}
}

func TestMemoryMessageStore_HistoryOrderAndIsolation(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryMessageStore()
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	clock := base
	s.now = func() time.Time { return clock }

	s.Append(ctx, 1, "alice", message.KindText, "one")
	clock = base.Add(time.Second)
	s.Append(ctx, 1, "bob", message.KindText, "two")
	s.Append(ctx, 2, "carol", message.KindText, "elsewhere")

	history, err := s.History(ctx, 1)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("History(1) = %d messages, want 2", len(history))
	}
	if history[0].Text != "one" || history[1].Text != "two" {
		t.Errorf("history out of order: %q, %q", history[0].Text, history[1].Text)
	}

	// Same timestamp falls back to ID order.
	tied := NewMemoryMessageStore()
	tied.now = func() time.Time { return base }
	tied.Append(ctx, 1, "a", message.KindText, "first")
	tied.Append(ctx, 1, "a", message.KindText, "second")
	tiedHistory, _ := tied.History(ctx, 1)
	if tiedHistory[0].Text != "first" || tiedHistory[1].Text != "second" {
		t.Errorf("tie-break by ID failed: %q, %q", tiedHistory[0].Text, tiedHistory[1].Text)
	}

	// Mutating a returned message must not touch the stored copy.
	history[0].Text = "mutated"
	again, _ := s.History(ctx, 1)
	if again[0].Text != "one" {
		t.Error("History() leaked internal state")
	}

	empty, err := s.History(ctx, 99)
	if err != nil {
		t.Fatalf("History(99) error = %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("History(99) = %d messages, want 0", len(empty))
	}
}

func TestMemoryMessageStore_Edit(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryMessageStore()
	text, _ := s.Append(ctx, 1, "alice", message.KindText, "original")
	media, _ := s.Append(ctx, 1, "alice", message.KindImage, "/uploads/pic.png")

	tests := []struct {
		name     string
		id       int64
		username string
		wantErr  error
	}{
		{"author edits text", text.ID, "alice", nil},
		{"unknown id", 9999, "alice", message.ErrNotFound},
		{"non-author", text.ID, "bob", message.ErrNotAuthor},
		{"media message", media.ID, "alice", message.ErrNotEditable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Edit(ctx, tt.id, tt.username, "updated")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Edit() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil {
				if got.Text != "updated" || !got.IsEdited {
					t.Errorf("Edit() = %+v, want updated text with IsEdited", got)
				}
			}
		})
	}

	// The rejected media edit left the row untouched.
	history, _ := s.History(ctx, 1)
	if history[1].Text != "/uploads/pic.png" || history[1].IsEdited {
		t.Errorf("media row mutated by rejected edit: %+v", history[1])
	}
}

func TestMemoryMessageStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryMessageStore()
	msg, _ := s.Append(ctx, 1, "alice", message.KindText, "doomed")

	tests := []struct {
		name        string
		id          int64
		username    string
		wantRemoved bool
	}{
		{"non-author", msg.ID, "bob", false},
		{"unknown id", 9999, "alice", false},
		{"author", msg.ID, "alice", true},
		{"already removed", msg.ID, "alice", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			removed, err := s.Delete(ctx, tt.id, tt.username)
			if err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if removed != tt.wantRemoved {
				t.Errorf("Delete() = %v, want %v", removed, tt.wantRemoved)
			}
		})
	}

	if history, _ := s.History(ctx, 1); len(history) != 0 {
		t.Errorf("History() = %d messages after delete, want 0", len(history))
	}
}

func TestMemoryMessageStore_DeleteRoom(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryMessageStore()
	kept, _ := s.Append(ctx, 2, "bob", message.KindText, "survivor")
	s.Append(ctx, 1, "alice", message.KindText, "one")
	s.Append(ctx, 1, "alice", message.KindImage, "/uploads/pic.png")

	if err := s.DeleteRoom(ctx, 1); err != nil {
		t.Fatalf("DeleteRoom() error = %v", err)
	}
	if history, _ := s.History(ctx, 1); len(history) != 0 {
		t.Errorf("room 1 still has %d messages", len(history))
	}
	other, _ := s.History(ctx, 2)
	if len(other) != 1 || other[0].ID != kept.ID {
		t.Error("cascade crossed room boundaries")
	}

	// Deleting an empty room is a no-op.
	if err := s.DeleteRoom(ctx, 99); err != nil {
		t.Fatalf("DeleteRoom(99) error = %v", err)
	}
}

func TestMemoryDirectory_CRUD(t *testing.T) {
	ctx := context.Background()
	d := NewMemoryDirectory()

	hash := "$2a$10$fakehash"
	r := &room.Room{Name: "general", Description: "talk", PasswordHash: &hash, CreatedBy: "alice"}
	if err := d.Create(ctx, r); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if r.ID <= 0 || r.CreatedAt.IsZero() {
		t.Fatalf("Create() did not assign ID/CreatedAt: %+v", r)
	}

	got, err := d.Get(ctx, r.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name != "general" || !got.HasPassword() {
		t.Errorf("Get() = %+v, want stored room", got)
	}

	second := &room.Room{Name: "random", CreatedBy: "bob"}
	d.Create(ctx, second)
	rooms, err := d.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(rooms) != 2 || rooms[0].ID >= rooms[1].ID {
		t.Errorf("List() = %v, want 2 rooms in ID order", rooms)
	}

	if err := d.Delete(ctx, r.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := d.Get(ctx, r.ID); !errors.Is(err, room.ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
	if err := d.Delete(ctx, r.ID); !errors.Is(err, room.ErrNotFound) {
		t.Errorf("Delete() twice error = %v, want ErrNotFound", err)
	}
}
