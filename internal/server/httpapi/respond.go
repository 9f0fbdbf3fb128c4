package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/messagely/messagely/internal/common"
)

// errorBody is the failure envelope surfaced to callers.
type errorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(context.Background(), "response encoding failed", "error", err.Error())
	}
}

// writeError maps domain errors to the outward failure envelope. All guard
// and ownership failures collapse to one 401 shape; only the duplicate
// username is translated to 409; unknown failures are logged and become 500.
func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrorUnauthorized) || errors.Is(err, common.ErrInvalidToken):
		s.writeJSON(w, http.StatusUnauthorized, errorBody{Status: http.StatusUnauthorized, Message: "Unauthorized"})
	case errors.Is(err, common.ErrorDuplicateUsername):
		s.writeJSON(w, http.StatusConflict, errorBody{Status: http.StatusConflict, Message: "username must be unique"})
	case errors.Is(err, common.ErrorNotFound):
		s.writeJSON(w, http.StatusNotFound, errorBody{Status: http.StatusNotFound, Message: "not found"})
	default:
		s.logger.Error(ctx, "request failed", "error", err.Error())
		s.writeJSON(w, http.StatusInternalServerError, errorBody{Status: http.StatusInternalServerError, Message: "internal error"})
	}
}

func (s *Server) writeBadRequest(w http.ResponseWriter) {
	s.writeJSON(w, http.StatusBadRequest, errorBody{Status: http.StatusBadRequest, Message: "invalid request body"})
}
