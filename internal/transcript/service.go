package transcript

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Karvyz/halfmoon/internal/log"
)

// Service applies composer actions to a Repository.
type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator replaces uuid.NewString.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// NewService creates a Service over repo.
func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every message in creation order.
func (s *Service) List(ctx context.Context) ([]Message, error) {
	msgs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	return msgs, nil
}

// Submit appends a new message. Trailing blank lines are dropped and blank
// text is rejected with ErrEmptyMessage.
func (s *Service) Submit(ctx context.Context, role Role, text string) (Message, error) {
	text = normalize(text)
	if text == "" {
		return Message{}, ErrEmptyMessage
	}
	if !role.Valid() {
		return Message{}, fmt.Errorf("unknown role %q", role)
	}

	now := s.now()
	msg := Message{
		ID:        s.newID(),
		Role:      role,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Append(ctx, msg); err != nil {
		return Message{}, fmt.Errorf("appending message: %w", err)
	}
	log.Debug(log.CatStore, "message appended", "id", msg.ID, "role", role)
	return msg, nil
}

// Edit replaces the text of message id and reports what changed. An edit
// that leaves the text as it was is not written.
func (s *Service) Edit(ctx context.Context, id, text string) (Message, EditSummary, error) {
	msg, err := s.repo.Get(ctx, id)
	if err != nil {
		return Message{}, EditSummary{}, fmt.Errorf("loading message %s: %w", id, err)
	}

	text = normalize(text)
	if text == "" {
		return msg, EditSummary{}, ErrEmptyMessage
	}
	if text == msg.Text {
		return msg, EditSummary{}, nil
	}

	summary := Summarize(msg.Text, text)
	msg.Text = text
	msg.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, msg); err != nil {
		return Message{}, EditSummary{}, fmt.Errorf("updating message %s: %w", id, err)
	}
	log.Debug(log.CatStore, "message edited", "id", id, "summary", summary)
	return msg, summary, nil
}

// Delete removes message id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting message %s: %w", id, err)
	}
	log.Debug(log.CatStore, "message deleted", "id", id)
	return nil
}

func normalize(text string) string {
	text = strings.TrimRight(text, " \t\n")
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return text
}
