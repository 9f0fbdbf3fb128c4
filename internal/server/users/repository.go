package users

import (
	"context"

	"github.com/messagely/messagely/internal/dbx"
)

type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	UpdateLastLogin(ctx context.Context, username string) error
	List(ctx context.Context) ([]PublicUser, error)
}

// RepositoryFactory binds a repository to a *sql.DB or an open transaction.
type RepositoryFactory func(db dbx.DBTX) Repository
