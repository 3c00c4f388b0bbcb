package localstore

// Storage keys
const (
	KeyPlayer      = "slotPlayer"
	KeyLeaderboard = "slotLeaderboard"
)

// Cookie limits
const (
	// MaxCookieSize is the largest serialized cookie a browser is required to keep
	MaxCookieSize = 4096
	CookiePath    = "/"
)

// Log Messages
const (
	LogMsgCookieTooLarge      = "Rejecting oversized cookie write"
	LogMsgCookieDecodeFailed  = "Failed to unescape cookie value"
	LogMsgLeaderboardCorrupt  = "Local leaderboard unreadable, treating as empty"
	LogMsgLeaderboardEncoding = "Failed to encode local leaderboard"
	LogMsgLeaderboardEvicted  = "Evicted local leaderboard entries to fit the store"
	LogMsgLeaderboardWrite    = "Failed to write local leaderboard"
)
