package sse

import (
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/SlotMachine_Go/internal/domain"
	"github.com/osse101/SlotMachine_Go/internal/metrics"
)

// Event is one message on the stream
type Event struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Player    string `json:"player,omitempty"`
	Timestamp int64  `json:"timestamp"`
	Payload   any    `json:"payload"`
}

// Filter narrows what a client receives. Empty fields match everything.
type Filter struct {
	Types  []string
	Player string
}

// Client represents a connected stream client
type Client struct {
	ID           string
	EventChannel chan Event
	types        map[string]bool // nil means all events
	player       string
}

func (c *Client) wants(e Event) bool {
	if c.types != nil && !c.types[e.Type] {
		return false
	}
	// Player-less events (e.g. leaderboard changes) go to everyone
	return c.player == "" || e.Player == "" || c.player == e.Player
}

// Hub fans events out to SSE and websocket clients
type Hub struct {
	clients    map[string]*Client
	broadcast  chan Event
	register   chan *Client
	unregister chan string
	mu         sync.RWMutex
	regMu      sync.RWMutex // held by Register while sending; Stop drains under the write lock
	shutdown   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Event, BroadcastBufferSize),
		register:   make(chan *Client, ClientChannelBuffer),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
	}
}

// Start starts the hub's broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop shuts the loop down and closes every client channel. Safe to call twice.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.regMu.Lock()
		for drained := false; !drained; {
			select {
			case client := <-h.register:
				close(client.EventChannel)
			default:
				drained = true
			}
		}
		h.regMu.Unlock()

		h.mu.Lock()
		for _, client := range h.clients {
			close(client.EventChannel)
		}
		h.clients = make(map[string]*Client)
		h.mu.Unlock()
		metrics.StreamSubscribers.Set(0)
	})
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			n := len(h.clients)
			h.mu.Unlock()
			metrics.StreamSubscribers.Set(float64(n))

		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, ok := h.clients[clientID]; ok {
				close(client.EventChannel)
				delete(h.clients, clientID)
			}
			n := len(h.clients)
			h.mu.Unlock()
			metrics.StreamSubscribers.Set(float64(n))

		case event := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				if !client.wants(event) {
					continue
				}
				select {
				case client.EventChannel <- event:
				default:
					metrics.EventsDropped.Inc()
					slog.Debug(LogMsgEventDropped, "client_id", client.ID, "event_type", event.Type)
				}
			}
			h.mu.RUnlock()

		case <-h.shutdown:
			return
		}
	}
}

// Register adds a new client to the hub. After Stop the returned client's
// channel is already closed.
func (h *Hub) Register(filter Filter) *Client {
	client := &Client{
		ID:           uuid.NewString(),
		EventChannel: make(chan Event, ClientEventBuffer),
		player:       domain.NormalizePlayerName(filter.Player),
	}

	if len(filter.Types) > 0 {
		client.types = make(map[string]bool, len(filter.Types))
		for _, t := range filter.Types {
			if t = strings.TrimSpace(t); t != "" {
				client.types[t] = true
			}
		}
	}

	h.regMu.RLock()
	defer h.regMu.RUnlock()
	select {
	case <-h.shutdown:
		close(client.EventChannel)
	default:
		select {
		case h.register <- client:
		case <-h.shutdown:
			close(client.EventChannel)
		}
	}
	return client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Publish sends an event to all interested clients. It never blocks; when the
// broadcast buffer is full the event is dropped.
func (h *Hub) Publish(eventType, player string, payload any) {
	event := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Player:    player,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}

	select {
	case h.broadcast <- event:
		metrics.EventsPublished.WithLabelValues(eventType).Inc()
	default:
		metrics.EventsDropped.Inc()
		slog.Warn(LogMsgEventDropped, "event_type", eventType)
	}
}

// RevealFrame publishes one reel frame for player
func (h *Hub) RevealFrame(player string, frame domain.RevealFrame) {
	h.Publish(domain.EventTypeReelFrame, player, domain.ReelFramePayload{Player: player, Frame: frame})
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage formats an event for transmission
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	// "id: <id>\nevent: <type>\ndata: <json>\n\n"
	msg := "id: " + event.ID + "\n"
	msg += "event: " + event.Type + "\n"
	msg += "data: " + string(data) + "\n\n"

	return []byte(msg), nil
}

func filterFromQuery(types, player string) Filter {
	f := Filter{Player: player}
	if types != "" {
		f.Types = strings.Split(types, ",")
	}
	return f
}
