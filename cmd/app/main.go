// Command app serves the slot machine and its leaderboard.
//
//go:generate swag init -g cmd/app/main.go -o docs --dir ../../ --parseInternal
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/SlotMachine_Go/docs" // registers the /swagger document
	"github.com/osse101/SlotMachine_Go/internal/bootstrap"
	"github.com/osse101/SlotMachine_Go/internal/config"
	"github.com/osse101/SlotMachine_Go/internal/handler"
	"github.com/osse101/SlotMachine_Go/internal/score"
	"github.com/osse101/SlotMachine_Go/internal/server"
)

// @title Slot Machine API
// @version 1.0
// @description Three-reel slot machine with a cookie cache and a shared leaderboard.
// @BasePath /

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	bootstrap.SetupLogger(cfg)
	for _, w := range warnings {
		slog.Warn(w)
	}

	if err := run(cfg); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := bootstrap.OpenLeaderboard(ctx, cfg)
	if err != nil {
		return err
	}

	scores := score.NewService(backend.Leaderboard, bootstrap.ScoreConfig(cfg))

	hub := bootstrap.InitializeEventSystem()
	bootstrap.StartEventLogger(ctx, hub)

	registry, err := bootstrap.NewMachine(cfg, scores, hub)
	if err != nil {
		hub.Stop()
		backend.Close()
		return err
	}

	handler.InitValidator()
	game := handler.NewGameHandler(scores, registry, hub)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		CORSOrigins:    cfg.CORSOrigins,
		TrustedProxies: cfg.TrustedProxies,
		RateLimit:      cfg.RateLimit,
		RateWindow:     cfg.RateWindow,
	}, backend.Leaderboard, game, hub)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:  srv,
		Hub:     hub,
		Backend: backend,
	})
	return err
}
