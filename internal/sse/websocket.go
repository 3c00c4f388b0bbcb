package sse

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
)

// WebSocketHandler streams the same events as Handler over a websocket.
// Client messages are ignored; the read loop only detects disconnects.
func WebSocketHandler(hub *Hub, originPatterns []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: originPatterns})
		if err != nil {
			slog.Warn(LogMsgAcceptError, "error", err)
			return
		}
		defer conn.CloseNow()

		q := r.URL.Query()
		filter := filterFromQuery(q.Get(QueryParamTypes), q.Get(QueryParamPlayer))
		client := hub.Register(filter)
		slog.Info(LogMsgClientConnected, "client_id", client.ID, "transport", "websocket", "player", filter.Player)
		defer func() {
			hub.Unregister(client.ID)
			slog.Info(LogMsgClientDisconnected, "client_id", client.ID, "transport", "websocket")
		}()

		// CloseRead cancels ctx once the peer goes away
		ctx := conn.CloseRead(r.Context())

		if err := writeJSON(ctx, conn, Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload:   map[string]any{"client_id": client.ID},
		}); err != nil {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					conn.Close(websocket.StatusGoingAway, "server shutting down")
					return
				}
				if err := writeJSON(ctx, conn, event); err != nil {
					slog.Debug(LogMsgWriteError, "error", err)
					return
				}

			case <-ticker.C:
				pingCtx, cancel := context.WithTimeout(ctx, WriteTimeout)
				err := conn.Ping(pingCtx)
				cancel()
				if err != nil {
					return
				}
			}
		}
	}
}

func writeJSON(ctx context.Context, conn *websocket.Conn, e Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, WriteTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, data)
}
