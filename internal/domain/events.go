package domain

// Event types pushed to connected clients
const (
	EventTypeReelFrame          = "reel.frame"
	EventTypeSpinCompleted      = "spin.completed"
	EventTypeLeaderboardUpdated = "leaderboard.updated"
)

// ReelFramePayload carries one reveal frame for a player's spin
type ReelFramePayload struct {
	Player string      `json:"player"`
	Frame  RevealFrame `json:"frame"`
}

// LeaderboardUpdatedPayload tells clients which leaderboard to re-read
type LeaderboardUpdatedPayload struct {
	Player string `json:"player"`
	Source string `json:"source"`
}

// LeaderboardUpdatedPayload.Source values. "all" means both the local and
// the remote leaderboard changed.
const (
	LeaderboardChangedLocal = "local"
	LeaderboardChangedAll   = "all"
)
