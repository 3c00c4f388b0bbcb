package handler

import (
	"net/http"

	"github.com/osse101/SlotMachine_Go/internal/domain"
	"github.com/osse101/SlotMachine_Go/internal/score"
)

// LeaderboardResponse is a leaderboard sorted by coins, highest first
type LeaderboardResponse struct {
	Source  score.Source       `json:"source"`
	Entries domain.Leaderboard `json:"entries"`
}

// HandleGetLeaderboard returns the local or remote leaderboard
// @Summary Leaderboard
// @Tags leaderboard
// @Produce json
// @Param source query string false "local or remote" default(remote)
// @Success 200 {object} LeaderboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/leaderboard [get]
func (h *GameHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	source := score.Source(GetOptionalQueryParam(r, QueryParamSource, string(score.SourceRemote)))

	lb, err := h.scores.FetchLeaderboard(r.Context(), localStore(w, r), source)
	if err != nil {
		respondServiceError(w, r, "Get leaderboard", err)
		return
	}
	respondJSON(w, http.StatusOK, LeaderboardResponse{Source: source, Entries: nonNil(lb)})
}
