package testutil

import "time"

// messageData holds all data for a message to be inserted.
type messageData struct {
	id        string
	role      string
	text      string
	createdAt time.Time
	updatedAt time.Time
}

// defaultMessage returns a user message whose text is its ID.
func defaultMessage(id string, at time.Time) messageData {
	return messageData{
		id:        id,
		role:      "user",
		text:      id,
		createdAt: at,
		updatedAt: at,
	}
}

// MessageOption configures a message during builder setup.
type MessageOption func(*messageData)

// Text sets the message text.
func Text(text string) MessageOption {
	return func(m *messageData) { m.text = text }
}

// Note makes the message a note instead of a user message.
func Note() MessageOption {
	return func(m *messageData) { m.role = "note" }
}

// CreatedAt sets both timestamps.
func CreatedAt(t time.Time) MessageOption {
	return func(m *messageData) {
		m.createdAt = t
		m.updatedAt = t
	}
}

// EditedAt sets the update timestamp.
func EditedAt(t time.Time) MessageOption {
	return func(m *messageData) { m.updatedAt = t }
}
