package handler

import (
	"context"
	"net/http"

	"github.com/osse101/SlotMachine_Go/internal/domain"
	"github.com/osse101/SlotMachine_Go/internal/localstore"
	"github.com/osse101/SlotMachine_Go/internal/machine"
	"github.com/osse101/SlotMachine_Go/internal/score"
)

// Spinner runs one spin cycle for a player. *machine.Registry satisfies it.
type Spinner interface {
	Spin(ctx context.Context, local localstore.Store, name string) (machine.Outcome, error)
}

// GameHandler serves the player, spin, reset and leaderboard endpoints.
// Every request reads and writes the caller's cookies as its local store.
type GameHandler struct {
	scores  score.Service
	spinner Spinner
	pub     machine.Publisher
}

// NewGameHandler creates the game handler. pub may be nil.
func NewGameHandler(scores score.Service, spinner Spinner, pub machine.Publisher) *GameHandler {
	return &GameHandler{scores: scores, spinner: spinner, pub: pub}
}

// localStore binds the request's cookies as a local store
func localStore(w http.ResponseWriter, r *http.Request) localstore.Store {
	return localstore.NewCookieStore(w, r)
}

// activePlayer returns the remembered player name or ErrNoActivePlayer
func activePlayer(local localstore.Store) (string, error) {
	name, ok := localstore.PlayerName(local)
	if !ok {
		return "", domain.ErrNoActivePlayer
	}
	return name, nil
}

func (h *GameHandler) publishLeaderboard(player, source string) {
	if h.pub == nil {
		return
	}
	h.pub.Publish(domain.EventTypeLeaderboardUpdated, "", domain.LeaderboardUpdatedPayload{
		Player: player,
		Source: source,
	})
}

// playerStatus flattens a record into the player view
func playerStatus(record domain.PlayerRecord) PlayerResponse {
	return PlayerResponse{
		Player:     record,
		CanSpin:    record.CanSpin(),
		CanRestart: record.Coins == 0,
	}
}
