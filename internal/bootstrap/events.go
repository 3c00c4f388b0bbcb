package bootstrap

import (
	"log/slog"

	"github.com/osse101/SlotMachine_Go/internal/sse"
)

// InitializeEventSystem creates and starts the hub that carries reel frames
// and leaderboard changes to browsers. The caller stops it on shutdown.
func InitializeEventSystem() *sse.Hub {
	hub := sse.NewHub()
	hub.Start()
	slog.Info(LogMsgEventSystemStarted)
	return hub
}
