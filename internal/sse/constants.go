package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 256

	// ClientEventBuffer is the buffer size for each client's event channel.
	// A full reveal (about 20 frames) must fit without drops.
	ClientEventBuffer = 64

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// Connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second

	// WriteTimeout is the timeout for writing to websocket connections
	WriteTimeout = 10 * time.Second
)

// Stream event types that are not domain events
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// Query parameters
const (
	QueryParamTypes  = "types"
	QueryParamPlayer = "player"
)

// Log messages
const (
	LogMsgClientConnected    = "Event stream client connected"
	LogMsgClientDisconnected = "Event stream client disconnected"
	LogMsgEventBroadcast     = "Broadcasting stream event"
	LogMsgEventDropped       = "Dropping stream event, buffer full"
	LogMsgWriteError         = "Failed to write stream event"
	LogMsgAcceptError        = "Failed to accept websocket"
)
