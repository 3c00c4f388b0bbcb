package postgres

// Table layout
const (
	TableLeaderboard = "slot_leaderboard"
	ColCollection    = "collection"
	ColName          = "name"
	ColDoc           = "doc"
	ColUpdatedAt     = "updated_at"
)

// Error Messages
const (
	ErrMsgFailedToBuildQuery  = "failed to build query"
	ErrMsgFailedToGetDocument = "failed to get leaderboard document"
	ErrMsgFailedToSetDocument = "failed to set leaderboard document"
	ErrMsgFailedToFetchAll    = "failed to fetch leaderboard documents"
	ErrMsgFailedToDelete      = "failed to delete leaderboard documents"
	ErrMsgFailedToDecodeDoc   = "failed to decode leaderboard document"
	ErrMsgFailedToEncodeDoc   = "failed to encode leaderboard document"
)
