package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/messagely/messagely/internal/common"
	"github.com/messagely/messagely/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new identity. A unique-constraint violation on username is
// translated to common.ErrorDuplicateUsername; other failures pass through.
func (r *PostgresRepository) Create(ctx context.Context, user *User) (*User, error) {

	query :=
		`INSERT INTO users (username, password_hash, first_name, last_name, phone, join_at)
         VALUES ($1, $2, $3, $4, $5, now())
		 RETURNING join_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.PasswordHash, user.FirstName, user.LastName, user.Phone).Scan(&user.JoinAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, common.ErrorDuplicateUsername
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	query :=
		`SELECT username, password_hash, first_name, last_name, phone, join_at, last_login_at FROM users
		 WHERE username = $1
		 `

	user := &User{}
	var lastLogin sql.NullTime
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.Username, &user.PasswordHash, &user.FirstName, &user.LastName, &user.Phone, &user.JoinAt, &lastLogin)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if lastLogin.Valid {
		user.LastLoginAt = &lastLogin.Time
	}

	return user, nil
}

func (r *PostgresRepository) UpdateLastLogin(ctx context.Context, username string) error {
	query :=
		`UPDATE users SET last_login_at = now()
		 WHERE username = $1
		 RETURNING last_login_at
		 `

	var lastLogin sql.NullTime
	err := r.db.QueryRowContext(ctx, query, username).Scan(&lastLogin)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]PublicUser, error) {
	query :=
		`SELECT username, first_name, last_name FROM users
		 ORDER BY username
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]PublicUser, 0)
	for rows.Next() {
		var u PublicUser
		if err := rows.Scan(&u.Username, &u.FirstName, &u.LastName); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
