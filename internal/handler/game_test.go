package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SlotMachine_Go/internal/domain"
	"github.com/osse101/SlotMachine_Go/internal/localstore"
	"github.com/osse101/SlotMachine_Go/internal/machine"
	"github.com/osse101/SlotMachine_Go/internal/score"
	"github.com/osse101/SlotMachine_Go/internal/slots"
)

func newGameRequest(method, target string, body any, player string) *http.Request {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if player != "" {
		req.AddCookie(&http.Cookie{Name: localstore.KeyPlayer, Value: url.PathEscape(player)})
	}
	return req
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func newTestGameHandler() (*GameHandler, *MockScoreService, *MockSpinner, *eventRecorder) {
	InitValidator()
	scores := &MockScoreService{}
	spinner := &MockSpinner{}
	pub := &eventRecorder{}
	return NewGameHandler(scores, spinner, pub), scores, spinner, pub
}

func TestHandleSelectPlayer(t *testing.T) {
	t.Run("Success - sets player cookie", func(t *testing.T) {
		h, scores, _, _ := newTestGameHandler()
		scores.On("CurrentRecord", mock.Anything, "Alice").
			Return(domain.PlayerRecord{Name: "Alice", Coins: 100})

		w := httptest.NewRecorder()
		h.HandleSelectPlayer(w, newGameRequest(http.MethodPost, "/api/v1/player", SelectPlayerRequest{Name: "  Alice "}, ""))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Alice"`)
		assert.Contains(t, w.Body.String(), `"can_spin":true`)
		cookie := findCookie(w, localstore.KeyPlayer)
		require.NotNil(t, cookie)
		assert.Equal(t, "Alice", cookie.Value)
		scores.AssertExpectations(t)
	})

	tests := []struct {
		name string
		body any
	}{
		{name: "whitespace only", body: SelectPlayerRequest{Name: "   "}},
		{name: "empty", body: SelectPlayerRequest{Name: ""}},
		{name: "control character", body: SelectPlayerRequest{Name: "Al\x00ice"}},
		{name: "too long", body: SelectPlayerRequest{Name: strings.Repeat("x", domain.MaxPlayerNameLength+1)}},
		{name: "malformed json", body: `{"name":`},
	}
	for _, tt := range tests {
		t.Run("Rejected - "+tt.name, func(t *testing.T) {
			h, scores, _, _ := newTestGameHandler()

			w := httptest.NewRecorder()
			h.HandleSelectPlayer(w, newGameRequest(http.MethodPost, "/api/v1/player", tt.body, "Bob"))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, findCookie(w, localstore.KeyPlayer), "Previous player must be kept")
			scores.AssertNotCalled(t, "CurrentRecord", mock.Anything, mock.Anything)
		})
	}
}

func TestHandleClearPlayer(t *testing.T) {
	h, _, _, _ := newTestGameHandler()

	w := httptest.NewRecorder()
	h.HandleClearPlayer(w, newGameRequest(http.MethodDelete, "/api/v1/player", nil, "Alice"))

	assert.Equal(t, http.StatusOK, w.Code)
	cookie := findCookie(w, localstore.KeyPlayer)
	require.NotNil(t, cookie)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestHandleGetPlayer(t *testing.T) {
	t.Run("Success - broke player can restart", func(t *testing.T) {
		h, scores, _, _ := newTestGameHandler()
		scores.On("CurrentRecord", mock.Anything, "Alice").
			Return(domain.PlayerRecord{Name: "Alice", Coins: 0, Spins: 100})

		w := httptest.NewRecorder()
		h.HandleGetPlayer(w, newGameRequest(http.MethodGet, "/api/v1/player", nil, "Alice"))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp PlayerResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, domain.PlayerRecord{Name: "Alice", Coins: 0, Spins: 100}, resp.Player)
		assert.False(t, resp.CanSpin)
		assert.True(t, resp.CanRestart)
	})

	t.Run("No active player", func(t *testing.T) {
		h, _, _, _ := newTestGameHandler()

		w := httptest.NewRecorder()
		h.HandleGetPlayer(w, newGameRequest(http.MethodGet, "/api/v1/player", nil, ""))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgNoActivePlayer)
	})
}

func TestHandleSpin(t *testing.T) {
	t.Run("Success - remote failure is a notice", func(t *testing.T) {
		h, _, spinner, _ := newTestGameHandler()
		outcome := machine.Outcome{
			Result: domain.SpinResult{
				Symbols:   [3]domain.Symbol{slots.SymbolBell, slots.SymbolBell, slots.SymbolBell},
				Outcome:   domain.OutcomeJackpot,
				CoinDelta: 49,
			},
			Frames: []domain.RevealFrame{{Index: 0}},
			Applied: score.ApplyResult{
				Record: domain.PlayerRecord{Name: "Alice", Coins: 149, Spins: 1},
				Local:  score.LocalResult{Written: true},
				Remote: score.RemoteResult{Err: errors.New("deadline exceeded")},
			},
			Message: fmt.Sprintf(slots.MsgJackpot, 50),
		}
		spinner.On("Spin", mock.Anything, mock.Anything, "Alice").Return(outcome, nil)

		w := httptest.NewRecorder()
		h.HandleSpin(w, newGameRequest(http.MethodPost, "/api/v1/spin", nil, "Alice"))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp SpinResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, domain.OutcomeJackpot, resp.Result.Outcome)
		assert.Equal(t, 149, resp.Record.Coins)
		assert.True(t, resp.Local.Written)
		assert.False(t, resp.Remote.Synced)
		assert.Equal(t, score.NoticeSyncFailed, resp.Notice)
		assert.Equal(t, "🎉 Jackpot! +50 coins!", resp.Message)
		assert.True(t, resp.CanSpin)
		assert.Len(t, resp.Frames, 1)
		spinner.AssertExpectations(t)
	})

	t.Run("Success - synced spin has no notice", func(t *testing.T) {
		h, _, spinner, _ := newTestGameHandler()
		spinner.On("Spin", mock.Anything, mock.Anything, "Bob").Return(machine.Outcome{
			Result:  domain.SpinResult{Outcome: domain.OutcomeNoMatch, CoinDelta: -1},
			Applied: score.ApplyResult{Record: domain.PlayerRecord{Name: "Bob", Coins: 0, Spins: 1}, Remote: score.RemoteResult{Synced: true}},
			Message: slots.MsgNoMatch,
		}, nil)

		w := httptest.NewRecorder()
		h.HandleSpin(w, newGameRequest(http.MethodPost, "/api/v1/spin", nil, "Bob"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), `"notice"`)
		assert.Contains(t, w.Body.String(), `"can_restart":true`)
		assert.Contains(t, w.Body.String(), `"can_spin":false`)
	})

	errorCases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "out of coins", err: fmt.Errorf("%w: Alice", domain.ErrOutOfCoins), wantStatus: http.StatusConflict, wantMsg: slots.MsgOutOfCoins},
		{name: "spin in progress", err: domain.ErrSpinInProgress, wantStatus: http.StatusConflict, wantMsg: ErrMsgSpinInProgress},
		{name: "unexpected failure", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantMsg: ErrMsgSpinFailed},
	}
	for _, tt := range errorCases {
		t.Run("Error - "+tt.name, func(t *testing.T) {
			h, _, spinner, _ := newTestGameHandler()
			spinner.On("Spin", mock.Anything, mock.Anything, "Alice").Return(machine.Outcome{}, tt.err)

			w := httptest.NewRecorder()
			h.HandleSpin(w, newGameRequest(http.MethodPost, "/api/v1/spin", nil, "Alice"))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantMsg)
		})
	}

	t.Run("No active player never spins", func(t *testing.T) {
		h, _, spinner, _ := newTestGameHandler()

		w := httptest.NewRecorder()
		h.HandleSpin(w, newGameRequest(http.MethodPost, "/api/v1/spin", nil, ""))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		spinner.AssertNotCalled(t, "Spin", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandleRestart(t *testing.T) {
	t.Run("Success - publishes leaderboard update", func(t *testing.T) {
		h, scores, _, pub := newTestGameHandler()
		scores.On("Restart", mock.Anything, mock.Anything, "Alice").Return(score.ApplyResult{
			Record: domain.PlayerRecord{Name: "Alice", Coins: domain.DefaultRestartCoins, Spins: 100},
			Local:  score.LocalResult{Written: true},
			Remote: score.RemoteResult{Synced: true},
		}, nil)

		w := httptest.NewRecorder()
		h.HandleRestart(w, newGameRequest(http.MethodPost, "/api/v1/player/restart", nil, "Alice"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Restarted with 10 coins")
		events := pub.snapshot()
		require.Len(t, events, 1)
		assert.Equal(t, domain.EventTypeLeaderboardUpdated, events[0].Type)
		assert.Equal(t, domain.LeaderboardUpdatedPayload{Player: "Alice", Source: domain.LeaderboardChangedAll}, events[0].Payload)
	})

	t.Run("Refused while coins remain", func(t *testing.T) {
		h, scores, _, pub := newTestGameHandler()
		scores.On("Restart", mock.Anything, mock.Anything, "Alice").
			Return(score.ApplyResult{}, fmt.Errorf("%w: player has 5 coins", domain.ErrRestartNotAllowed))

		w := httptest.NewRecorder()
		h.HandleRestart(w, newGameRequest(http.MethodPost, "/api/v1/player/restart", nil, "Alice"))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgRestartNotNeeded)
		assert.Empty(t, pub.snapshot())
	})
}

func TestHandleGetLeaderboard(t *testing.T) {
	board := domain.Leaderboard{{Name: "Bob", Coins: 120, Spins: 4}, {Name: "Alice", Coins: 90, Spins: 11}}

	t.Run("Defaults to remote", func(t *testing.T) {
		h, scores, _, _ := newTestGameHandler()
		scores.On("FetchLeaderboard", mock.Anything, mock.Anything, score.SourceRemote).Return(board, nil)

		w := httptest.NewRecorder()
		h.HandleGetLeaderboard(w, newGameRequest(http.MethodGet, "/api/v1/leaderboard", nil, ""))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp LeaderboardResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, score.SourceRemote, resp.Source)
		assert.Equal(t, board, resp.Entries)
	})

	t.Run("Local source with empty board", func(t *testing.T) {
		h, scores, _, _ := newTestGameHandler()
		scores.On("FetchLeaderboard", mock.Anything, mock.Anything, score.SourceLocal).Return(domain.Leaderboard(nil), nil)

		w := httptest.NewRecorder()
		h.HandleGetLeaderboard(w, newGameRequest(http.MethodGet, "/api/v1/leaderboard?source=local", nil, ""))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"entries":[]`)
	})

	t.Run("Invalid source", func(t *testing.T) {
		h, scores, _, _ := newTestGameHandler()
		scores.On("FetchLeaderboard", mock.Anything, mock.Anything, score.Source("global")).
			Return(nil, fmt.Errorf("%w: %q", domain.ErrInvalidSource, "global"))

		w := httptest.NewRecorder()
		h.HandleGetLeaderboard(w, newGameRequest(http.MethodGet, "/api/v1/leaderboard?source=global", nil, ""))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidSource)
	})

	t.Run("Remote unavailable", func(t *testing.T) {
		h, scores, _, _ := newTestGameHandler()
		scores.On("FetchLeaderboard", mock.Anything, mock.Anything, score.SourceRemote).
			Return(nil, fmt.Errorf("%w: connection refused", domain.ErrRemoteUnavailable))

		w := httptest.NewRecorder()
		h.HandleGetLeaderboard(w, newGameRequest(http.MethodGet, "/api/v1/leaderboard", nil, ""))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgLeaderboardUnavailable)
	})
}

func TestHandleResetPlayer(t *testing.T) {
	t.Run("Defaults to active player", func(t *testing.T) {
		h, scores, _, pub := newTestGameHandler()
		left := domain.Leaderboard{{Name: "Bob", Coins: 80, Spins: 3}}
		scores.On("ResetPlayer", mock.Anything, mock.Anything, "Alice").Return(left)

		w := httptest.NewRecorder()
		h.HandleResetPlayer(w, newGameRequest(http.MethodPost, "/api/v1/reset/player", nil, "Alice"))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp ResetResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, left, resp.Leaderboard)
		events := pub.snapshot()
		require.Len(t, events, 1)
		assert.Equal(t, domain.LeaderboardUpdatedPayload{Player: "Alice", Source: domain.LeaderboardChangedLocal}, events[0].Payload)
	})

	t.Run("Explicit name wins", func(t *testing.T) {
		h, scores, _, _ := newTestGameHandler()
		scores.On("ResetPlayer", mock.Anything, mock.Anything, "Bob").Return(domain.Leaderboard{})

		w := httptest.NewRecorder()
		h.HandleResetPlayer(w, newGameRequest(http.MethodPost, "/api/v1/reset/player?name=%20Bob", nil, "Alice"))

		assert.Equal(t, http.StatusOK, w.Code)
		scores.AssertExpectations(t)
	})

	t.Run("No player to reset", func(t *testing.T) {
		h, scores, _, _ := newTestGameHandler()

		w := httptest.NewRecorder()
		h.HandleResetPlayer(w, newGameRequest(http.MethodPost, "/api/v1/reset/player", nil, ""))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		scores.AssertNotCalled(t, "ResetPlayer", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandleResetAll(t *testing.T) {
	h, scores, _, pub := newTestGameHandler()
	scores.On("ResetAll", mock.Anything, mock.Anything).Return(domain.Leaderboard{})

	w := httptest.NewRecorder()
	h.HandleResetAll(w, newGameRequest(http.MethodPost, "/api/v1/reset/all", nil, "Alice"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"leaderboard":[]`)
	assert.Contains(t, w.Body.String(), MsgAllReset)
	require.Len(t, pub.snapshot(), 1)
}

func TestNilPublisherIsAllowed(t *testing.T) {
	scores := &MockScoreService{}
	scores.On("ResetAll", mock.Anything, mock.Anything).Return(domain.Leaderboard{})
	h := NewGameHandler(scores, &MockSpinner{}, nil)

	w := httptest.NewRecorder()
	h.HandleResetAll(w, newGameRequest(http.MethodPost, "/api/v1/reset/all", nil, ""))

	assert.Equal(t, http.StatusOK, w.Code)
}
