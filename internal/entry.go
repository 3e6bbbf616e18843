// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/starford/wynn/internal/lsp"
	"github.com/starford/wynn/internal/mcpserver"
	"github.com/starford/wynn/internal/notes"
	"github.com/starford/wynn/internal/search"
	"github.com/starford/wynn/internal/session"
	"github.com/starford/wynn/internal/vault"
	"github.com/starford/wynn/internal/workspace"
)

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Structured JSON logger on stderr: stdout carries the protocol.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	vaultDir, err := cfg.VaultDir()
	if err != nil {
		return fmt.Errorf("resolve vault: %w", err)
	}

	logger.Info("Configuration loaded",
		slog.String("vault_path", vaultDir),
		slog.Bool("mcp_enabled", cfg.MCP.Enabled),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Ensure vault directory exists.
	if err := os.MkdirAll(vaultDir, 0o755); err != nil {
		return fmt.Errorf("create vault dir: %w", err)
	}

	store, err := vault.NewFS(vaultDir)
	if err != nil {
		return fmt.Errorf("init vault: %w", err)
	}

	idx := notes.New(store, logger)
	scorer := search.New(search.DefaultConfig())
	ws := workspace.NewManager(store, logger)
	srv := lsp.New(logger, session.NewStore(), idx, ws, scorer)

	g, gCtx := errgroup.WithContext(ctx)

	// Keep the title cache in step with the vault.
	g.Go(func() error {
		return idx.Watch(gCtx)
	})

	// Serve the protocol on stdio. RunStdio cannot be cancelled, so it
	// runs detached and the group goroutine just stops waiting on
	// shutdown; the process exit reaps it.
	g.Go(func() error {
		logger.Info("Language server starting on stdio")
		done := make(chan error, 1)
		go func() { done <- srv.RunStdio() }()
		select {
		case err := <-done:
			if err != nil {
				return err
			}
			// Clean client disconnect: cancel the group so the watcher
			// and sidecar wind down too.
			return context.Canceled
		case <-gCtx.Done():
			return nil
		}
	})

	// Optional MCP sidecar over HTTP.
	var httpServer *http.Server
	if cfg.MCP.Enabled {
		mcpSrv := mcpserver.New(idx, scorer)

		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		r.Use(middleware.RealIP)
		r.Use(middleware.Recoverer)

		r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
		r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})

		r.Mount("/mcp", mcpSrv.Handler())

		httpServer = &http.Server{
			Addr:    cfg.MCP.Address(),
			Handler: r,
		}

		g.Go(func() error {
			logger.Info("Starting MCP HTTP server", slog.String("address", cfg.MCP.Address()))
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("MCP HTTP server error: %w", err)
			}
			return nil
		})
	}

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		if httpServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.Error("MCP HTTP server shutdown error", slog.String("error", err.Error()))
			}
		}

		return context.Canceled
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}
