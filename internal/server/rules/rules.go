// Package rules holds the per-resource ownership predicates: one pure
// function per (resource, action) pair, decided on the authenticated
// username and the record alone. The user detail/inbox/outbox scope is the
// guard's EnsureSelf comparison and is not duplicated here.
//
// Callers translate a false result into the uniform Unauthorized failure;
// the predicates themselves carry no error shapes and mutate nothing.
package rules

import "github.com/messagely/messagely/internal/server/messages"

// CanViewMessage reports whether username may view the message: only the
// sender and the recipient may.
func CanViewMessage(username string, m *messages.Detail) bool {
	return username == m.From.Username || username == m.To.Username
}

// CanMarkRead reports whether username may mark the message read: only the
// recipient may; the sender cannot mark their own sent message.
func CanMarkRead(username string, m *messages.Detail) bool {
	return username == m.To.Username
}

// CanSendAs reports whether the authenticated username may send a message
// with the given from_username. The sender is always the caller; a forged
// sender is rejected.
func CanSendAs(username, fromUsername string) bool {
	return username == fromUsername
}

// CanListUsers reports whether an authenticated identity may list the public
// fields of all users. Any authenticated identity may.
func CanListUsers(username string) bool {
	return username != ""
}
