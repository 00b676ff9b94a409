package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/AlterEgo_Go/internal/bootstrap"
	"github.com/osse101/AlterEgo_Go/internal/config"
	"github.com/osse101/AlterEgo_Go/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Invalid environment", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	for _, w := range warnings {
		slog.Warn(w)
	}

	slog.Info(bootstrap.LogMsgStarting,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"row_store", cfg.RowStore,
		"discord", cfg.DiscordEnabled())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		slog.Error("Failed to build game", "error", err)
		os.Exit(1)
	}
	if err := game.Start(); err != nil {
		slog.Error("Failed to start game", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(server.Config{
		Port:      cfg.Port,
		APIKey:    cfg.APIKey,
		Version:   cfg.Version,
		RateLimit: cfg.RateLimit,
	}, game.Commands, game.Readiness())

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	// the signal context is done; shut down on a fresh one
	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, srv, game)
}
