package api

import "time"

// PublicUser is the listing view of an identity.
type PublicUser struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// User is the full profile, visible only to its owner.
type User struct {
	Username    string     `json:"username"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Phone       string     `json:"phone"`
	JoinAt      time.Time  `json:"join_at"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

// Card identifies a message counterparty.
type Card struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// Message is the response to a send.
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
	From   Card       `json:"from_user"`
	To     Card       `json:"to_user"`
}

// InboxMessage is a received message with the sender card.
type InboxMessage struct {
	ID     int64      `json:"id"`
	Body   string     `json:"body"`
	SentAt time.Time  `json:"sent_at"`
	ReadAt *time.Time `json:"read_at"`
	From   Card       `json:"from_user"`
}

// OutboxMessage is a sent message with the recipient card.
type OutboxMessage struct {
	ID     int64      `json:"id"`
	Body   string     `json:"body"`
	SentAt time.Time  `json:"sent_at"`
	ReadAt *time.Time `json:"read_at"`
	To     Card       `json:"to_user"`
}

// ReadReceipt is returned by mark-read.
type ReadReceipt struct {
	ID     int64     `json:"id"`
	ReadAt time.Time `json:"read_at"`
}

// RegisterParams are the profile fields supplied at registration.
type RegisterParams struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}
