package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgEmptyPlayerName = "player name is required"
	ErrMsgNoActivePlayer  = "no active player"

	// Spin errors
	ErrMsgOutOfCoins        = "out of coins"
	ErrMsgSpinInProgress    = "spin already in progress"
	ErrMsgRestartNotAllowed = "restart is only allowed with zero coins"
	ErrMsgInvalidAlphabet   = "symbol alphabet needs at least 3 distinct symbols"

	// Leaderboard errors
	ErrMsgRemoteUnavailable = "remote leaderboard unavailable"
	ErrMsgInvalidSource     = "invalid leaderboard source"
	ErrMsgLocalStoreFull    = "value exceeds local store size limit"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrEmptyPlayerName = errors.New(ErrMsgEmptyPlayerName)
	ErrNoActivePlayer  = errors.New(ErrMsgNoActivePlayer)

	ErrOutOfCoins        = errors.New(ErrMsgOutOfCoins)
	ErrSpinInProgress    = errors.New(ErrMsgSpinInProgress)
	ErrRestartNotAllowed = errors.New(ErrMsgRestartNotAllowed)
	ErrInvalidAlphabet   = errors.New(ErrMsgInvalidAlphabet)

	ErrRemoteUnavailable = errors.New(ErrMsgRemoteUnavailable)
	ErrInvalidSource     = errors.New(ErrMsgInvalidSource)
	ErrLocalStoreFull    = errors.New(ErrMsgLocalStoreFull)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
