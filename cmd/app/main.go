package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wichananm65/outfit-finder-backend/internal/analyze"
	"github.com/wichananm65/outfit-finder-backend/internal/config"
	"github.com/wichananm65/outfit-finder-backend/internal/search"
	"github.com/wichananm65/outfit-finder-backend/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	for _, w := range cfg.Warnings() {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpClient := &http.Client{Timeout: cfg.UpstreamTimeout}
	model, err := analyze.NewVisionModel(ctx, cfg, httpClient)
	if err != nil {
		slog.Error("failed to create vision model", "provider", cfg.VisionProvider, "error", err)
		os.Exit(1)
	}

	analyzeHandler := analyze.NewHandler(analyze.NewService(cfg, model))
	searchHandler := search.NewHandler(search.NewService(cfg,
		search.NewSerpAPI(cfg.SerpAPIURL, cfg.SerpAPIKey, cfg.UpstreamTimeout)))

	app := server.New(cfg, analyzeHandler, searchHandler)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", cfg.Addr, "provider", cfg.VisionProvider, "model", cfg.VisionModel, "origin", cfg.FrontendOrigin)
		errCh <- app.Listen(cfg.Addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
		}
	}
}
