package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/messagely/messagely/internal/common"
	"github.com/messagely/messagely/internal/server/messages"
	"github.com/messagely/messagely/internal/server/rules"
)

type sendMessageRequest struct {
	bodyToken
	FromUsername string `json:"from_username"`
	ToUsername   string `json:"to_username"`
	Body         string `json:"body"`
}

type messageDetailResponse struct {
	Message *messages.Detail `json:"message"`
}

type messageResponse struct {
	Message *messages.Message `json:"message"`
}

type readReceiptResponse struct {
	Message *messages.ReadReceipt `json:"message"`
}

func messageID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, common.ErrorNotFound
	}
	return id, nil
}

// handleGetMessage returns a single message; only its sender or recipient
// may view it.
func (s *Server) handleGetMessage(w http.ResponseWriter, r *http.Request) {
	id, err := messageID(r)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	username, err := s.guard.EnsureAuthenticated(tokenOf(r, ""))
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	msg, err := s.messages.Get(r.Context(), id)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	if !rules.CanViewMessage(username, msg) {
		s.writeError(r.Context(), w, common.ErrorUnauthorized)
		return
	}

	s.writeJSON(w, http.StatusOK, messageDetailResponse{Message: msg})
}

// handleSendMessage stores a message from the authenticated caller. A
// from_username in the body, if present, must match the token identity.
func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeBadRequest(w)
		return
	}

	username, err := s.guard.EnsureAuthenticated(tokenOf(r, req.Token))
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	if req.FromUsername != "" && !rules.CanSendAs(username, req.FromUsername) {
		s.writeError(r.Context(), w, common.ErrorUnauthorized)
		return
	}

	msg, err := s.messages.Send(r.Context(), username, req.ToUsername, req.Body)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

// handleMarkRead stamps read_at; only the recipient may, and only the first
// call writes.
func (s *Server) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := messageID(r)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	// The body is optional here and carries at most the token.
	var bt bodyToken
	_ = json.NewDecoder(r.Body).Decode(&bt)

	username, err := s.guard.EnsureAuthenticated(tokenOf(r, bt.Token))
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	msg, err := s.messages.Get(r.Context(), id)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	if !rules.CanMarkRead(username, msg) {
		s.writeError(r.Context(), w, common.ErrorUnauthorized)
		return
	}

	receipt, err := s.messages.MarkRead(r.Context(), id)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, readReceiptResponse{Message: receipt})
}
