package handler

import (
	"net/http"

	"github.com/osse101/SlotMachine_Go/internal/domain"
)

// ResetResponse carries the local leaderboard left after a reset
type ResetResponse struct {
	Message     string             `json:"message"`
	Leaderboard domain.Leaderboard `json:"leaderboard"`
}

// HandleResetPlayer removes one player from the local leaderboard. The
// remote collection is not touched. The player defaults to the active one.
// @Summary Reset player (local)
// @Tags reset
// @Produce json
// @Param name query string false "Player to reset, defaults to the active player"
// @Success 200 {object} ResetResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/reset/player [post]
func (h *GameHandler) HandleResetPlayer(w http.ResponseWriter, r *http.Request) {
	local := localStore(w, r)

	name := domain.NormalizePlayerName(GetOptionalQueryParam(r, QueryParamName, ""))
	if name == "" {
		var err error
		if name, err = activePlayer(local); err != nil {
			respondServiceError(w, r, "Reset player", err)
			return
		}
	}

	lb := h.scores.ResetPlayer(r.Context(), local, name)
	h.publishLeaderboard(name, domain.LeaderboardChangedLocal)
	respondJSON(w, http.StatusOK, ResetResponse{Message: MsgPlayerReset, Leaderboard: nonNil(lb)})
}

// HandleResetAll clears the local leaderboard. The remote collection is not touched.
// @Summary Reset all (local)
// @Tags reset
// @Produce json
// @Success 200 {object} ResetResponse
// @Router /api/v1/reset/all [post]
func (h *GameHandler) HandleResetAll(w http.ResponseWriter, r *http.Request) {
	lb := h.scores.ResetAll(r.Context(), localStore(w, r))
	h.publishLeaderboard("", domain.LeaderboardChangedLocal)
	respondJSON(w, http.StatusOK, ResetResponse{Message: MsgAllReset, Leaderboard: nonNil(lb)})
}

func nonNil(lb domain.Leaderboard) domain.Leaderboard {
	if lb == nil {
		return domain.Leaderboard{}
	}
	return lb
}
