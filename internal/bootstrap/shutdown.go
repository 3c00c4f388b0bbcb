package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/SlotMachine_Go/internal/server"
	"github.com/osse101/SlotMachine_Go/internal/sse"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server  *server.Server
	Hub     *sse.Hub
	Backend *Backend
}

// GracefulShutdown stops the components in order:
// 1. HTTP server (stop accepting new requests, finish in-flight spins)
// 2. Event hub (already closed by the server's shutdown hook)
// 3. Leaderboard backend (release connections)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Hub != nil {
		slog.Info(LogMsgStoppingEventHub)
		components.Hub.Stop()
	}

	if components.Backend != nil {
		slog.Info(LogMsgClosingBackend, "backend", components.Backend.Name)
		if err := components.Backend.Close(); err != nil {
			slog.Error(LogMsgBackendCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
