package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/velvetresearch/velvet/internal/client/cli"
	"github.com/velvetresearch/velvet/internal/client/config"
	"github.com/velvetresearch/velvet/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
