package main

import (
	"context"

	"github.com/messagely/messagely/internal/client/cli"
	"github.com/messagely/messagely/internal/client/config"
)

func main() {
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)
	app.Run(context.Background())
}
