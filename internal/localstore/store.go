// Package localstore is the per-browser key-value cache holding the active
// player name and the local leaderboard.
package localstore

import (
	"context"
	"log/slog"

	"github.com/osse101/SlotMachine_Go/internal/logger"
)

// Store is a small string key-value store owned by one client session.
// A missing key reads as ("", false). Set fails with domain.ErrLocalStoreFull
// when the value does not fit; nothing is written in that case.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string)
}

// requestScoped is implemented by stores bound to one request
type requestScoped interface {
	Context() context.Context
}

func storeLogger(store Store) *slog.Logger {
	if rs, ok := store.(requestScoped); ok {
		return logger.FromContext(rs.Context())
	}
	return slog.Default()
}
