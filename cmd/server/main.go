package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/velvetresearch/velvet/internal/logging"
	"github.com/velvetresearch/velvet/internal/server"
	"github.com/velvetresearch/velvet/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	app := server.NewApp(cfg, logger)

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
