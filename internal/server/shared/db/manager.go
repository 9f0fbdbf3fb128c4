// Package db wires the PostgreSQL connection, schema migrations, and
// repository construction behind a small manager interface.
package db

import (
	"context"
	"database/sql"

	"github.com/messagely/messagely/internal/dbx"
	"github.com/messagely/messagely/internal/server/messages"
	"github.com/messagely/messagely/internal/server/users"
)

// RepositoryManager hands out repositories bound to a connection or an open
// transaction.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Messages(db dbx.DBTX) messages.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
