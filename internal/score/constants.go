package score

import "time"

// Source selects which leaderboard to read
type Source string

const (
	SourceLocal  Source = "local"
	SourceRemote Source = "remote"
)

// Defaults
const (
	DefaultRemoteTimeout = 3 * time.Second
	DefaultCacheSize     = 1

	remoteCacheKey = "remote"
)

// Notices shown to the player for non-fatal write failures
const (
	NoticeSyncFailed = "Leaderboard sync failed"
	NoticeLocalFull  = "Local leaderboard is full, this result was not saved in the browser"
	noticeSeparator  = "; "
)

// Log Messages
const (
	LogMsgSpinApplied       = "Spin applied"
	LogMsgRemoteSyncFailed  = "Remote leaderboard sync failed"
	LogMsgRemoteSynced      = "Remote leaderboard synced"
	LogMsgRemoteFetchFailed = "Remote leaderboard fetch failed"
	LogMsgPlayerReset       = "Local stats reset for player"
	LogMsgAllReset          = "Local stats reset for all players"
	LogMsgPlayerRestarted   = "Player restarted"
	LogMsgCoinsClamped      = "Coins clamped at zero"
	LogMsgLocalWriteFailed  = "Local leaderboard write failed"
)
