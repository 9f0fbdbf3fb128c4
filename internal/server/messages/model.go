package messages

import (
	"time"

	"github.com/messagely/messagely/internal/server/users"
)

// Message is the stored record. read_at transitions from null to a timestamp
// exactly once, triggered by the recipient; there is no way back to unread.
type Message struct {
	ID           int64      `json:"id"`
	FromUsername string     `json:"from_username"`
	ToUsername   string     `json:"to_username"`
	Body         string     `json:"body"`
	SentAt       time.Time  `json:"sent_at"`
	ReadAt       *time.Time `json:"read_at,omitempty"`
}

// Detail is the single-message view with both counterparty cards.
type Detail struct {
	ID     int64      `json:"id"`
	Body   string     `json:"body"`
	SentAt time.Time  `json:"sent_at"`
	ReadAt *time.Time `json:"read_at"`
	From   users.Card `json:"from_user"`
	To     users.Card `json:"to_user"`
}

// InboxItem is a message addressed to the queried user, with the sender card.
type InboxItem struct {
	ID     int64      `json:"id"`
	Body   string     `json:"body"`
	SentAt time.Time  `json:"sent_at"`
	ReadAt *time.Time `json:"read_at"`
	From   users.Card `json:"from_user"`
}

// OutboxItem is a message sent by the queried user, with the recipient card.
type OutboxItem struct {
	ID     int64      `json:"id"`
	Body   string     `json:"body"`
	SentAt time.Time  `json:"sent_at"`
	ReadAt *time.Time `json:"read_at"`
	To     users.Card `json:"to_user"`
}

// ReadReceipt is returned by mark-read.
type ReadReceipt struct {
	ID     int64     `json:"id"`
	ReadAt time.Time `json:"read_at"`
}
