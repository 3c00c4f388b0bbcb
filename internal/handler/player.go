package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/SlotMachine_Go/internal/domain"
	"github.com/osse101/SlotMachine_Go/internal/localstore"
	"github.com/osse101/SlotMachine_Go/internal/logger"
	"github.com/osse101/SlotMachine_Go/internal/score"
)

// SelectPlayerRequest names the player to play as
type SelectPlayerRequest struct {
	Name string `json:"name" validate:"required,max=32,playername"`
}

// PlayerResponse is the active player's record and what they can do next
type PlayerResponse struct {
	Player     domain.PlayerRecord `json:"player"`
	CanSpin    bool                `json:"can_spin"`
	CanRestart bool                `json:"can_restart"`
}

// RestartResponse reports a refill of a broke player's coins
type RestartResponse struct {
	Message string              `json:"message"`
	Record  domain.PlayerRecord `json:"record"`
	Local   score.LocalResult   `json:"local"`
	Remote  score.RemoteResult  `json:"remote"`
	Notice  string              `json:"notice,omitempty"`
}

// HandleSelectPlayer remembers the player name in the slotPlayer cookie
// @Summary Select player
// @Description Sets the active player. Blank names are rejected and the previous player is kept.
// @Tags player
// @Accept json
// @Produce json
// @Param request body SelectPlayerRequest true "Player name"
// @Success 200 {object} PlayerResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/player [post]
func (h *GameHandler) HandleSelectPlayer(w http.ResponseWriter, r *http.Request) {
	var req SelectPlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Select player"); err != nil {
		return
	}

	local := localStore(w, r)
	name, err := localstore.SetPlayerName(local, req.Name)
	if err != nil {
		respondServiceError(w, r, "Select player", err)
		return
	}

	logger.FromContext(r.Context()).Info(MsgPlayerSelected, "player", name)
	respondJSON(w, http.StatusOK, playerStatus(h.scores.CurrentRecord(local, name)))
}

// HandleClearPlayer forgets the active player so another can take over
// @Summary Switch player
// @Tags player
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/player [delete]
func (h *GameHandler) HandleClearPlayer(w http.ResponseWriter, r *http.Request) {
	localstore.ClearPlayerName(localStore(w, r))
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPlayerCleared})
}

// HandleGetPlayer returns the active player's current record
// @Summary Current player
// @Tags player
// @Produce json
// @Success 200 {object} PlayerResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/player [get]
func (h *GameHandler) HandleGetPlayer(w http.ResponseWriter, r *http.Request) {
	local := localStore(w, r)
	name, err := activePlayer(local)
	if err != nil {
		respondServiceError(w, r, "Get player", err)
		return
	}
	respondJSON(w, http.StatusOK, playerStatus(h.scores.CurrentRecord(local, name)))
}

// HandleRestart gives a player with zero coins a fresh stake
// @Summary Restart
// @Description Refills coins for a player who has run out. Refused while coins remain.
// @Tags player
// @Produce json
// @Success 200 {object} RestartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/player/restart [post]
func (h *GameHandler) HandleRestart(w http.ResponseWriter, r *http.Request) {
	local := localStore(w, r)
	name, err := activePlayer(local)
	if err != nil {
		respondServiceError(w, r, "Restart", err)
		return
	}

	res, err := h.scores.Restart(r.Context(), local, name)
	if err != nil {
		respondServiceError(w, r, "Restart", err)
		return
	}

	h.publishLeaderboard(name, changedSource(res))
	respondJSON(w, http.StatusOK, RestartResponse{
		Message: fmt.Sprintf(MsgPlayerRestarted, res.Record.Coins),
		Record:  res.Record,
		Local:   res.Local,
		Remote:  res.Remote,
		Notice:  res.Notice(),
	})
}

// changedSource reports which leaderboards a write touched
func changedSource(res score.ApplyResult) string {
	if res.Remote.Synced {
		return domain.LeaderboardChangedAll
	}
	return domain.LeaderboardChangedLocal
}
