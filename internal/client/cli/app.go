// Package cli implements the interactive messaging client: a small REPL over
// the HTTP API with prompt-driven commands.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/messagely/messagely/internal/client/api"
	"github.com/messagely/messagely/internal/client/config"
)

type App struct {
	config   *config.Config
	api      *api.Client
	username string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerEndpointAddr),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.username != ""
}

func (a *App) getStatus() string {
	if a.username == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.username)
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Messagely CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
