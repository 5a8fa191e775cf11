package message

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a message does not exist.
	ErrNotFound = errors.New("message not found")
	// ErrNotAuthor is returned when a mutation is requested by someone
	// other than the message author.
	ErrNotAuthor = errors.New("requester is not the message author")
	// ErrNotEditable is returned when an edit targets a media message.
	ErrNotEditable = errors.New("message kind is not editable")
)

// Store defines the interface for message persistence.
//
// Each operation is individually atomic; no multi-row transactions are
// required by callers. Implementations must allow concurrent calls for
// unrelated rooms without serializing them behind one lock.
type Store interface {
	// Append persists a new message, assigning its ID and creation
	// timestamp, and returns the full record. IDs are strictly increasing
	// within a room and never reused.
	Append(ctx context.Context, roomID int64, username string, kind Kind, text string) (*Message, error)

	// History returns all messages of a room ordered by creation time,
	// with ID as the tie-break. It has no side effects and may be called
	// repeatedly.
	History(ctx context.Context, roomID int64) ([]*Message, error)

	// Edit replaces the text of a message and marks it edited. It succeeds
	// only if the message exists, is of an editable kind, and username is
	// its author; the check and the update are one atomic step. On failure
	// it returns ErrNotFound, ErrNotEditable or ErrNotAuthor.
	Edit(ctx context.Context, id int64, username, newText string) (*Message, error)

	// Delete removes a message iff it exists and username is its author.
	// The returned bool reports whether a row was actually removed; false
	// with a nil error means there is nothing to announce.
	Delete(ctx context.Context, id int64, username string) (bool, error)

	// DeleteRoom removes every message of a room. Invoked when the room
	// directory deletes the room.
	DeleteRoom(ctx context.Context, roomID int64) error
}
