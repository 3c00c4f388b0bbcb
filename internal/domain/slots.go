package domain

import "time"

// Symbol is a single reel face.
type Symbol string

// Outcome classifies a spin by how many reels match.
type Outcome string

const (
	OutcomeJackpot      Outcome = "jackpot"
	OutcomePartialMatch Outcome = "partial_match"
	OutcomeNoMatch      Outcome = "no_match"
)

// SpinResult is the fixed outcome of one spin.
type SpinResult struct {
	Symbols   [3]Symbol `json:"symbols"`
	Outcome   Outcome   `json:"outcome"`
	CoinDelta int       `json:"coin_delta"` // net of the spin cost
}

// RevealFrame is one step of the reel animation. Stopped reels show their
// final symbol; spinning reels show a cosmetic symbol.
type RevealFrame struct {
	Index   int           `json:"index"`
	Reels   [3]Symbol     `json:"reels"`
	Stopped [3]bool       `json:"stopped"`
	Delay   time.Duration `json:"delay_ns"`
}

// SlotsCompletedPayload is the event payload published when a spin settles
type SlotsCompletedPayload struct {
	Player    string    `json:"player"`
	Symbols   [3]Symbol `json:"symbols"`
	Outcome   Outcome   `json:"outcome"`
	CoinDelta int       `json:"coin_delta"`
	Coins     int       `json:"coins"`
	Spins     int       `json:"spins"`
	Synced    bool      `json:"synced"`
}
