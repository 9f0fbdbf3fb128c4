package users

import "time"

// User is a registered identity. Username is the immutable primary key.
// PasswordHash never leaves the server process.
type User struct {
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Phone        string     `json:"phone"`
	JoinAt       time.Time  `json:"join_at"`
	LastLoginAt  *time.Time `json:"last_login_at"`
}

// PublicUser is the projection returned by the user listing.
type PublicUser struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Card is the short profile embedded in message views as the counterparty.
type Card struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}
