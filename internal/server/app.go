// Package server serves the Velvet Research front end: the static pages,
// styles, and scripts of the mockup phase. It carries no application
// endpoints beyond a health probe; the workflow talks to a separate
// backend API.
package server

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/velvetresearch/velvet/internal/logging"
	"github.com/velvetresearch/velvet/internal/server/config"
)

// Version is the mockup-phase build tag reported by the health probe.
const Version = "0.1.0"

type App struct {
	config *config.Config
	logger logging.Logger
	fiber  *fiber.App
}

func NewApp(cfg *config.Config, logger logging.Logger) *App {
	app := fiber.New(fiber.Config{
		AppName:               "velvet-research",
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		IdleTimeout:           60 * time.Second,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())

	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		logger.Info(c.UserContext(), "request",
			"method", c.Method(), "path", c.Path(),
			"status", c.Response().StatusCode())
		return err
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"phase":   "I",
			"version": Version,
		})
	})

	app.Static("/", cfg.StaticDir)

	// Unmatched paths fall back to the landing page so client-routed
	// locations survive a full reload.
	index := filepath.Join(cfg.StaticDir, "index.html")
	app.Use(func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodGet {
			return c.SendStatus(fiber.StatusMethodNotAllowed)
		}
		return c.SendFile(index)
	})

	return &App{config: cfg, logger: logger, fiber: app}
}

// Fiber exposes the underlying app for tests.
func (a *App) Fiber() *fiber.App {
	return a.fiber
}

// Run listens on the configured address until the context is cancelled or
// an interrupt arrives, then drains in-flight requests before returning.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info(ctx, "serving static assets",
			"addr", a.config.Addr, "dir", a.config.StaticDir)
		errCh <- a.fiber.Listen(a.config.Addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	case <-ctx.Done():
	}

	a.logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return a.fiber.ShutdownWithContext(shutdownCtx)
}
