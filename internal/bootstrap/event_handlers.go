package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/SlotMachine_Go/internal/domain"
	"github.com/osse101/SlotMachine_Go/internal/sse"
)

// StartEventLogger subscribes to completed spins and leaderboard changes and
// writes each one to the log. Reel frames are too chatty and are skipped.
// The subscription ends when ctx is cancelled or the hub stops. The returned
// channel is closed once the logger has exited.
func StartEventLogger(ctx context.Context, hub *sse.Hub) <-chan struct{} {
	client := hub.Register(sse.Filter{
		Types: []string{domain.EventTypeSpinCompleted, domain.EventTypeLeaderboardUpdated},
	})
	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				hub.Unregister(client.ID)
				return
			case e, ok := <-client.EventChannel:
				if !ok {
					return
				}
				slog.Info(LogMsgEventReceived,
					"event_type", e.Type,
					"player", e.Player,
					"event_id", e.ID)
			}
		}
	}()

	slog.Info(LogMsgEventLoggerStarted)
	return done
}
