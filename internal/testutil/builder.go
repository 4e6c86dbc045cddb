package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Builder accumulates messages and inserts them in order.
type Builder struct {
	t        *testing.T
	db       *sql.DB
	messages []messageData
	clock    time.Time
}

// NewBuilder creates a builder for the given test database.
func NewBuilder(t *testing.T, db *sql.DB) *Builder {
	t.Helper()
	return &Builder{
		t:     t,
		db:    db,
		clock: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

// WithMessage adds a message. Without CreatedAt, each message is one minute
// after the previous one.
func (b *Builder) WithMessage(id string, opts ...MessageOption) *Builder {
	b.clock = b.clock.Add(time.Minute)
	msg := defaultMessage(id, b.clock)
	for _, opt := range opts {
		opt(&msg)
	}
	b.messages = append(b.messages, msg)
	return b
}

// WithConversation adds a short conversation with one edited message.
func (b *Builder) WithConversation() *Builder {
	return b.
		WithMessage("m1", Text("Hello there")).
		WithMessage("m2", Text("Remember: the **deploy** is on Friday"), Note()).
		WithMessage("m3", Text("Can you review\nthe draft?"), EditedAt(b.clock.Add(time.Hour)))
}

// Build inserts all accumulated messages into the database.
func (b *Builder) Build() {
	b.t.Helper()
	for _, msg := range b.messages {
		_, err := b.db.Exec(
			`INSERT INTO messages (id, role, text, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
			msg.id, msg.role, msg.text, msg.createdAt.UnixNano(), msg.updatedAt.UnixNano(),
		)
		require.NoError(b.t, err)
	}
}
