package messages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

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

// Create inserts a message. A foreign-key violation on to_username (the
// recipient does not exist) is translated to common.ErrorNotFound.
func (r *PostgresRepository) Create(ctx context.Context, msg *Message) (*Message, error) {

	query :=
		`INSERT INTO messages (from_username, to_username, body, sent_at)
         VALUES ($1, $2, $3, now())
		 RETURNING id, sent_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		msg.FromUsername, msg.ToUsername, msg.Body).Scan(&msg.ID, &msg.SentAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return msg, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Detail, error) {
	query :=
		`SELECT m.id, m.body, m.sent_at, m.read_at,
		        f.username, f.first_name, f.last_name, f.phone,
		        t.username, t.first_name, t.last_name, t.phone
		 FROM messages AS m
		 JOIN users AS f ON f.username = m.from_username
		 JOIN users AS t ON t.username = m.to_username
		 WHERE m.id = $1
		 `

	d := &Detail{}
	var readAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.Body, &d.SentAt, &readAt,
		&d.From.Username, &d.From.FirstName, &d.From.LastName, &d.From.Phone,
		&d.To.Username, &d.To.FirstName, &d.To.LastName, &d.To.Phone)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if readAt.Valid {
		d.ReadAt = &readAt.Time
	}

	return d, nil
}

// MarkRead stamps read_at once; the first write wins. A second call returns
// the original stamp unchanged. Two concurrent calls race at the store, and
// the read_at IS NULL predicate lets exactly one of them perform the write.
func (r *PostgresRepository) MarkRead(ctx context.Context, id int64) (time.Time, error) {
	query :=
		`UPDATE messages SET read_at = now()
		 WHERE id = $1 AND read_at IS NULL
		 RETURNING read_at
		 `

	var readAt time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(&readAt)
	if err == nil {
		return readAt, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, fmt.Errorf("db error: %w", err)
	}

	// No row updated: either the message is absent or it was already read.
	var stored sql.NullTime
	err = r.db.QueryRowContext(ctx, `SELECT read_at FROM messages WHERE id = $1`, id).Scan(&stored)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, common.ErrorNotFound
		}
		return time.Time{}, fmt.Errorf("db error: %w", err)
	}
	if !stored.Valid {
		return time.Time{}, common.ErrorInternal
	}

	return stored.Time, nil
}

func (r *PostgresRepository) Inbox(ctx context.Context, username string) ([]InboxItem, error) {
	query :=
		`SELECT m.id, m.body, m.sent_at, m.read_at,
		        u.username, u.first_name, u.last_name, u.phone
		 FROM messages AS m
		 JOIN users AS u ON u.username = m.from_username
		 WHERE m.to_username = $1
		 ORDER BY m.id
		 `

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]InboxItem, 0)
	for rows.Next() {
		var item InboxItem
		var readAt sql.NullTime
		if err := rows.Scan(&item.ID, &item.Body, &item.SentAt, &readAt,
			&item.From.Username, &item.From.FirstName, &item.From.LastName, &item.From.Phone); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if readAt.Valid {
			item.ReadAt = &readAt.Time
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Outbox(ctx context.Context, username string) ([]OutboxItem, error) {
	query :=
		`SELECT m.id, m.body, m.sent_at, m.read_at,
		        u.username, u.first_name, u.last_name, u.phone
		 FROM messages AS m
		 JOIN users AS u ON u.username = m.to_username
		 WHERE m.from_username = $1
		 ORDER BY m.id
		 `

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]OutboxItem, 0)
	for rows.Next() {
		var item OutboxItem
		var readAt sql.NullTime
		if err := rows.Scan(&item.ID, &item.Body, &item.SentAt, &readAt,
			&item.To.Username, &item.To.FirstName, &item.To.LastName, &item.To.Phone); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if readAt.Valid {
			item.ReadAt = &readAt.Time
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
