package messages

import (
	"context"
	"time"

	"github.com/messagely/messagely/internal/dbx"
)

type Repository interface {
	Create(ctx context.Context, msg *Message) (*Message, error)
	GetByID(ctx context.Context, id int64) (*Detail, error)
	MarkRead(ctx context.Context, id int64) (time.Time, error)
	Inbox(ctx context.Context, username string) ([]InboxItem, error)
	Outbox(ctx context.Context, username string) ([]OutboxItem, error)
}

// RepositoryFactory binds a repository to a *sql.DB or an open transaction.
type RepositoryFactory func(db dbx.DBTX) Repository
