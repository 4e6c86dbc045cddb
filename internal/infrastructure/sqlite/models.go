package sqlite

import (
	"time"

	"github.com/Karvyz/halfmoon/internal/transcript"
)

// MessageModel represents the database row for the messages table.
// Time values are stored as Unix nanoseconds so edits within one second
// still change updated_at.
type MessageModel struct {
	Seq       int64
	ID        string
	Role      string
	Text      string
	CreatedAt int64
	UpdatedAt int64
}

// toMessageModel converts a domain Message to a database MessageModel.
func toMessageModel(m transcript.Message) MessageModel {
	return MessageModel{
		ID:        m.ID,
		Role:      string(m.Role),
		Text:      m.Text,
		CreatedAt: m.CreatedAt.UnixNano(),
		UpdatedAt: m.UpdatedAt.UnixNano(),
	}
}

// toDomain converts the row back to a Message.
func (m MessageModel) toDomain() transcript.Message {
	return transcript.Message{
		ID:        m.ID,
		Role:      transcript.Role(m.Role),
		Text:      m.Text,
		CreatedAt: time.Unix(0, m.CreatedAt),
		UpdatedAt: time.Unix(0, m.UpdatedAt),
	}
}
