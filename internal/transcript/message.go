// Package transcript holds the conversation the composer edits: messages,
// their persistence contract and the service the UI talks to.
package transcript

import (
	"context"
	"errors"
	"time"
)

// Role identifies who a message belongs to.
type Role string

const (
	RoleUser Role = "user"
	RoleNote Role = "note"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleNote
}

// Message is one transcript entry.
type Message struct {
	ID        string
	Role      Role
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Edited reports whether the message changed after it was created.
func (m Message) Edited() bool {
	return m.UpdatedAt.After(m.CreatedAt)
}

var (
	// ErrEmptyMessage is returned when submitted text is blank.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrMessageNotFound is returned when no message has the given ID.
	ErrMessageNotFound = errors.New("message not found")
)

// Repository persists messages in creation order.
type Repository interface {
	List(ctx context.Context) ([]Message, error)
	Get(ctx context.Context, id string) (Message, error)
	Append(ctx context.Context, msg Message) error
	Update(ctx context.Context, msg Message) error
	Delete(ctx context.Context, id string) error
}
