// Package server initializes and runs the messaging service: it loads
// configuration, connects storage, applies migrations, and starts the HTTP
// server with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/messagely/messagely/internal/logging"
	"github.com/messagely/messagely/internal/server/auth"
	"github.com/messagely/messagely/internal/server/config"
	"github.com/messagely/messagely/internal/server/httpapi"
	"github.com/messagely/messagely/internal/server/messages"
	"github.com/messagely/messagely/internal/server/shared/db"
	"github.com/messagely/messagely/internal/server/users"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	userService    *users.Service
	messageService *messages.Service
	guard          *auth.Guard
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	sqlDB, err := db.Open(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := db.NewPostgresRepositoryManager()
	if err := m.RunMigrations(context.Background(), sqlDB); err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	hasher := auth.NewBcryptHasher(c.BcryptCost)
	us := users.NewService(sqlDB, m.Users, hasher, c)
	ms := messages.NewService(sqlDB, m.Messages)
	guard := auth.NewGuard(c.SecretKey)

	return &App{config: c, logger: logger, userService: us, messageService: ms, guard: guard}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.messageService, app.guard)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
