// Package cli is the interactive terminal front end of the Velvet Research
// client. It owns the read/eval loop and implements the workflow UI
// surface, so every prompt, notice, and state change the controllers
// request is rendered here and nowhere else.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/velvetresearch/velvet/internal/client/api"
	"github.com/velvetresearch/velvet/internal/client/config"
	"github.com/velvetresearch/velvet/internal/client/session"
	"github.com/velvetresearch/velvet/internal/client/staging"
	"github.com/velvetresearch/velvet/internal/client/storage"
	"github.com/velvetresearch/velvet/internal/client/workflow"
	"github.com/velvetresearch/velvet/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	ctrl   *workflow.Controller
	logger logging.Logger

	reader *bufio.Reader
	out    io.Writer

	label string

	closeStore func() error
}

func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	db, store, err := storage.Open(ctx, cfg.StorePath)
	if err != nil {
		logger.Error(ctx, "error initializing local store", "error", err)
		return nil, err
	}

	policy, err := workflow.ParseResumePolicy(cfg.ResumePolicy)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	sessions := session.NewService(store)
	files := staging.NewList()
	client := api.NewHTTPClient(cfg.ServerBaseURL)

	app := &App{
		config:     cfg,
		logger:     logger,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
		closeStore: db.Close,
	}
	app.ctrl = workflow.NewController(sessions, files, client, app, policy)

	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	defer func() { _ = a.closeStore() }()

	if err := a.ctrl.Init(ctx); err != nil {
		return err
	}
	a.Root(ctx)
	return nil
}
