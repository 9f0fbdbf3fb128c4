package httpapi

import (
	"net/http"

	"github.com/messagely/messagely/internal/common"
	"github.com/messagely/messagely/internal/server/messages"
	"github.com/messagely/messagely/internal/server/rules"
	"github.com/messagely/messagely/internal/server/users"
)

type usersResponse struct {
	Users []users.PublicUser `json:"users"`
}

type userResponse struct {
	User *users.User `json:"user"`
}

type inboxResponse struct {
	Messages []messages.InboxItem `json:"messages"`
}

type outboxResponse struct {
	Messages []messages.OutboxItem `json:"messages"`
}

// handleListUsers returns the public fields of every identity. Any
// authenticated identity may list.
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	username, err := s.guard.EnsureAuthenticated(tokenOf(r, ""))
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	if !rules.CanListUsers(username) {
		s.writeError(r.Context(), w, common.ErrorUnauthorized)
		return
	}

	list, err := s.users.List(r.Context())
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, usersResponse{Users: list})
}

// handleGetUser returns the full profile; only for the caller's own username.
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	target := r.PathValue("username")

	if _, err := s.guard.EnsureSelf(tokenOf(r, ""), target); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	user, err := s.users.Get(r.Context(), target)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, userResponse{User: user})
}

// handleInbox returns the messages addressed to the caller's own username.
func (s *Server) handleInbox(w http.ResponseWriter, r *http.Request) {
	target := r.PathValue("username")

	if _, err := s.guard.EnsureSelf(tokenOf(r, ""), target); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	items, err := s.messages.Inbox(r.Context(), target)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, inboxResponse{Messages: items})
}

// handleOutbox returns the messages sent by the caller's own username.
func (s *Server) handleOutbox(w http.ResponseWriter, r *http.Request) {
	target := r.PathValue("username")

	if _, err := s.guard.EnsureSelf(tokenOf(r, ""), target); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	items, err := s.messages.Outbox(r.Context(), target)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, outboxResponse{Messages: items})
}
