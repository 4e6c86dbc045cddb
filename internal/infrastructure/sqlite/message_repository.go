package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Karvyz/halfmoon/internal/transcript"
)

const messageColumns = `seq, id, role, text, created_at, updated_at`

// messageRepository implements transcript.Repository using SQLite.
type messageRepository struct {
	db *sql.DB
}

// NewMessageRepository creates a repository over an already migrated connection.
func NewMessageRepository(db *sql.DB) transcript.Repository {
	return &messageRepository{db: db}
}

// Ensure messageRepository implements transcript.Repository.
var _ transcript.Repository = (*messageRepository)(nil)

// scanMessage scans a row into a MessageModel.
func scanMessage(scanner interface{ Scan(...any) error }) (MessageModel, error) {
	var model MessageModel
	err := scanner.Scan(&model.Seq, &model.ID, &model.Role, &model.Text, &model.CreatedAt, &model.UpdatedAt)
	return model, err
}

// List returns all messages in insertion order.
func (r *messageRepository) List(ctx context.Context) ([]transcript.Message, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+messageColumns+` FROM messages ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var msgs []transcript.Message
	for rows.Next() {
		model, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		msgs = append(msgs, model.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}
	return msgs, nil
}

// Get retrieves a message by ID.
// Returns transcript.ErrMessageNotFound if no message matches.
func (r *messageRepository) Get(ctx context.Context, id string) (transcript.Message, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+messageColumns+` FROM messages WHERE id = ?`, id)
	model, err := scanMessage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return transcript.Message{}, transcript.ErrMessageNotFound
	}
	if err != nil {
		return transcript.Message{}, fmt.Errorf("failed to get message: %w", err)
	}
	return model.toDomain(), nil
}

// Append inserts a new message at the end of the transcript.
func (r *messageRepository) Append(ctx context.Context, msg transcript.Message) error {
	model := toMessageModel(msg)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO messages (id, role, text, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		model.ID, model.Role, model.Text, model.CreatedAt, model.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

// Update rewrites the text and updated_at of an existing message.
// Returns transcript.ErrMessageNotFound if no message matches.
func (r *messageRepository) Update(ctx context.Context, msg transcript.Message) error {
	model := toMessageModel(msg)
	result, err := r.db.ExecContext(ctx,
		`UPDATE messages SET role = ?, text = ?, updated_at = ? WHERE id = ?`,
		model.Role, model.Text, model.UpdatedAt, model.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update message: %w", err)
	}
	return requireAffected(result)
}

// Delete removes a message.
// Returns transcript.ErrMessageNotFound if no message matches.
func (r *messageRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return requireAffected(result)
}

func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return transcript.ErrMessageNotFound
	}
	return nil
}
