package domain

// Player defaults
const (
	// DefaultStartingCoins is the balance of a player with no stored record.
	// Remote documents created without a coins field are backfilled with it too.
	DefaultStartingCoins = 100
	DefaultStartingSpins = 0

	// DefaultRestartCoins is granted by a restart once a player is broke.
	DefaultRestartCoins = 10

	// MaxPlayerNameLength bounds names so the leaderboard cookie stays small.
	MaxPlayerNameLength = 32
)

// DefaultCollection is the remote collection holding one document per player.
const DefaultCollection = "slot_leaderboard"
