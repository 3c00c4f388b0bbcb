package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Player messages
	ErrMsgNameRequired     = "Please enter a player name"
	ErrMsgNoActivePlayer   = "Choose a player before spinning"
	ErrMsgRestartNotNeeded = "You still have coins - restart is only available at zero"
	ErrMsgLocalStoreFull   = "Browser storage is full"

	// Spin messages
	ErrMsgSpinInProgress = "Your reels are still spinning"
	ErrMsgSpinFailed     = "Failed to spin"

	// Leaderboard messages
	ErrMsgInvalidSource          = "source must be local or remote"
	ErrMsgLeaderboardUnavailable = "Leaderboard is temporarily unavailable"
	ErrMsgGetLeaderboardFailed   = "Failed to retrieve leaderboard"
)

// Success messages for API responses
const (
	MsgPlayerSelected  = "Player selected"
	MsgPlayerCleared   = "Player cleared"
	MsgPlayerReset     = "Local stats reset for player"
	MsgAllReset        = "Local stats reset for all players"
	MsgPlayerRestarted = "Restarted with %d coins"
)

// Query parameters
const (
	QueryParamSource = "source"
	QueryParamName   = "name"
)

// Log messages
const (
	LogMsgServiceError    = "Request failed"
	LogMsgReadinessFailed = "Readiness check failed"
)
