// Package messages implements direct-message storage access: sending,
// single-message lookup, mark-read, and per-user inbox/outbox queries.
package messages

import (
	"context"
	"database/sql"
)

type Service struct {
	db      *sql.DB
	newRepo RepositoryFactory
}

func NewService(db *sql.DB, newRepo RepositoryFactory) *Service {
	return &Service{db: db, newRepo: newRepo}
}

// Send stores a message from the authenticated sender. The sender is taken
// from the verified token by the caller and cannot be forged through the
// request body. An absent recipient surfaces as common.ErrorNotFound.
func (s *Service) Send(ctx context.Context, from, to, body string) (*Message, error) {
	repo := s.newRepo(s.db)
	return repo.Create(ctx, &Message{FromUsername: from, ToUsername: to, Body: body})
}

// Get returns the detail view of a single message.
func (s *Service) Get(ctx context.Context, id int64) (*Detail, error) {
	repo := s.newRepo(s.db)
	return repo.GetByID(ctx, id)
}

// MarkRead stamps read_at for a message, first write wins; repeated calls
// return the original stamp.
func (s *Service) MarkRead(ctx context.Context, id int64) (*ReadReceipt, error) {
	repo := s.newRepo(s.db)

	readAt, err := repo.MarkRead(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ReadReceipt{ID: id, ReadAt: readAt}, nil
}

// Inbox returns the messages addressed to username, with sender cards.
func (s *Service) Inbox(ctx context.Context, username string) ([]InboxItem, error) {
	repo := s.newRepo(s.db)
	return repo.Inbox(ctx, username)
}

// Outbox returns the messages sent by username, with recipient cards.
func (s *Service) Outbox(ctx context.Context, username string) ([]OutboxItem, error) {
	repo := s.newRepo(s.db)
	return repo.Outbox(ctx, username)
}
