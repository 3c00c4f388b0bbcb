package handler

import (
	"net/http"

	"github.com/osse101/SlotMachine_Go/internal/domain"
	"github.com/osse101/SlotMachine_Go/internal/score"
)

// SpinResponse is a finished spin: the fixed result, the reveal that was
// played, and where the new record was stored.
type SpinResponse struct {
	Result     domain.SpinResult    `json:"result"`
	Frames     []domain.RevealFrame `json:"frames"`
	Record     domain.PlayerRecord  `json:"record"`
	Local      score.LocalResult    `json:"local"`
	Remote     score.RemoteResult   `json:"remote"`
	Notice     string               `json:"notice,omitempty"`
	Message    string               `json:"message"`
	CanSpin    bool                 `json:"can_spin"`
	CanRestart bool                 `json:"can_restart"`
}

// HandleSpin spins the reels for the active player. The response is written
// after the reveal has played; frames are streamed on /events meanwhile.
// @Summary Spin
// @Description Charges one spin, plays the reveal and records the result locally and remotely.
// @Tags spin
// @Produce json
// @Success 200 {object} SpinResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Out of coins or spin already in progress"
// @Router /api/v1/spin [post]
func (h *GameHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	local := localStore(w, r)
	name, err := activePlayer(local)
	if err != nil {
		respondServiceError(w, r, "Spin", err)
		return
	}

	out, err := h.spinner.Spin(r.Context(), local, name)
	if err != nil {
		respondServiceError(w, r, "Spin", err)
		return
	}

	record := out.Applied.Record
	respondJSON(w, http.StatusOK, SpinResponse{
		Result:     out.Result,
		Frames:     out.Frames,
		Record:     record,
		Local:      out.Applied.Local,
		Remote:     out.Applied.Remote,
		Notice:     out.Applied.Notice(),
		Message:    out.Message,
		CanSpin:    record.CanSpin(),
		CanRestart: record.Coins == 0,
	})
}
