// Package users implements identity management: registration, credential
// verification, login stamping, and profile lookups.
package users

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/messagely/messagely/internal/common"
	"github.com/messagely/messagely/internal/dbx"
	"github.com/messagely/messagely/internal/server/auth"
	"github.com/messagely/messagely/internal/server/config"
)

// AuthResult is the outcome of a credential check. The outward contract
// collapses InvalidCredentials and UnknownUser into one observable failure so
// username existence cannot be probed; the distinction exists only inside the
// service.
type AuthResult int

const (
	Authenticated AuthResult = iota
	InvalidCredentials
	UnknownUser
)

// RegisterParams are the profile fields supplied at registration.
type RegisterParams struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

type Service struct {
	db        *sql.DB
	newRepo   RepositoryFactory
	hasher    auth.PasswordHasher
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewService(db *sql.DB, newRepo RepositoryFactory, hasher auth.PasswordHasher, cfg *config.Config) *Service {
	return &Service{
		db:        db,
		newRepo:   newRepo,
		hasher:    hasher,
		jwtSecret: []byte(cfg.SecretKey),
		tokenTTL:  cfg.TokenTTL,
	}
}

// Register hashes the password, inserts the identity, and stamps
// last_login_at, all in one transaction. A duplicate username surfaces as
// common.ErrorDuplicateUsername.
func (s *Service) Register(ctx context.Context, p RegisterParams) (*User, error) {

	hash, err := s.hasher.Hash(p.Password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &User{
		Username:     p.Username,
		PasswordHash: hash,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Phone:        p.Phone,
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.newRepo(tx)

		user, err = repo.Create(ctx, user)
		if err != nil {
			return err
		}

		// Registration counts as a login.
		return repo.UpdateLastLogin(ctx, user.Username)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate checks a username/password pair against the store. A missing
// identity burns a dummy hash comparison so present and absent usernames cost
// the same. The error return carries store failures only.
func (s *Service) Authenticate(ctx context.Context, username, password string) (AuthResult, error) {
	repo := s.newRepo(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = s.hasher.Verify(password, auth.DummyPasswordHash)
			return UnknownUser, nil
		}
		return UnknownUser, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return InvalidCredentials, nil
	}

	return Authenticated, nil
}

// TouchLastLogin stamps last_login_at for an existing identity.
func (s *Service) TouchLastLogin(ctx context.Context, username string) error {
	repo := s.newRepo(s.db)
	return repo.UpdateLastLogin(ctx, username)
}

// Login verifies credentials, stamps the login time, and mints a token.
// Invalid credentials and unknown usernames both yield common.ErrorUnauthorized.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {

	result, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	if result != Authenticated {
		return "", common.ErrorUnauthorized
	}

	if err := s.TouchLastLogin(ctx, username); err != nil {
		return "", err
	}

	return s.IssueToken(username)
}

// IssueToken signs a token for username under the service secret.
func (s *Service) IssueToken(username string) (string, error) {
	token, err := auth.GenerateToken(username, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// Get returns the full profile of an identity.
func (s *Service) Get(ctx context.Context, username string) (*User, error) {
	repo := s.newRepo(s.db)
	return repo.GetByUsername(ctx, username)
}

// List returns the public fields of every identity.
func (s *Service) List(ctx context.Context) ([]PublicUser, error) {
	repo := s.newRepo(s.db)
	return repo.List(ctx)
}
