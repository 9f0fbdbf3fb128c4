// Package httpapi exposes the messaging service over HTTP/JSON: the auth
// routes, user routes, and message routes of the public API. Transport is
// thin glue; authorization decisions live in the auth guards and the
// ownership rules.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/messagely/messagely/internal/logging"
	"github.com/messagely/messagely/internal/server/auth"
	"github.com/messagely/messagely/internal/server/messages"
	"github.com/messagely/messagely/internal/server/users"
)

type Server struct {
	address  string
	logger   logging.Logger
	users    *users.Service
	messages *messages.Service
	guard    *auth.Guard
}

func NewServer(address string, l logging.Logger, us *users.Service, ms *messages.Service, guard *auth.Guard) *Server {
	return &Server{
		address:  address,
		logger:   l.With("module", "http_server"),
		users:    us,
		messages: ms,
		guard:    guard,
	}
}

// Handler builds the route table. Guards run inside the handlers, before any
// service call; a guard failure short-circuits the protected operation.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("POST /register", s.handleRegister)

	mux.HandleFunc("GET /users", s.handleListUsers)
	mux.HandleFunc("GET /users/{username}", s.handleGetUser)
	mux.HandleFunc("GET /users/{username}/to", s.handleInbox)
	mux.HandleFunc("GET /users/{username}/from", s.handleOutbox)

	mux.HandleFunc("GET /messages/{id}", s.handleGetMessage)
	mux.HandleFunc("POST /messages", s.handleSendMessage)
	mux.HandleFunc("POST /messages/{id}/read", s.handleMarkRead)

	return s.withRequestID(s.withLogging(mux))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{Addr: s.address, Handler: s.Handler()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
