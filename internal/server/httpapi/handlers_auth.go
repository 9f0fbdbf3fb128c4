package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/messagely/messagely/internal/server/users"
)

type credentialsRequest struct {
	bodyToken
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	bodyToken
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// handleLogin verifies credentials and returns a fresh token. Bad and
// unknown credentials produce the same 401.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeBadRequest(w)
		return
	}

	token, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// handleRegister creates the identity, logs it in, and returns a token.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeBadRequest(w)
		return
	}

	user, err := s.users.Register(r.Context(), users.RegisterParams{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	token, err := s.users.IssueToken(user.Username)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}
