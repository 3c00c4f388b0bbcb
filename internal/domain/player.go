package domain

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// PlayerRecord is a player's persisted coin and spin counters, keyed by Name.
type PlayerRecord struct {
	Name  string `json:"name"`
	Coins int    `json:"coins"`
	Spins int    `json:"spins"`
}

// NewPlayerRecord returns the record of a player that has never spun.
func NewPlayerRecord(name string) PlayerRecord {
	return PlayerRecord{Name: name, Coins: DefaultStartingCoins, Spins: DefaultStartingSpins}
}

// CanSpin reports whether the player has coins left to pay for a spin.
func (p PlayerRecord) CanSpin() bool {
	return p.Coins > 0
}

// ScoreDocument is the body of a remote leaderboard document.
// Nil fields are absent from the document; Extra carries fields written by
// other clients that merge writes must keep.
type ScoreDocument struct {
	Name  string         `json:"name"`
	Coins *int           `json:"coins,omitempty"`
	Spins *int           `json:"spins,omitempty"`
	Extra map[string]any `json:"-"`
}

// DocumentFromRecord builds a document with every score field set.
func DocumentFromRecord(r PlayerRecord) ScoreDocument {
	coins, spins := r.Coins, r.Spins
	return ScoreDocument{Name: r.Name, Coins: &coins, Spins: &spins}
}

// Record flattens the document, backfilling absent fields with defaults.
func (d ScoreDocument) Record() PlayerRecord {
	rec := NewPlayerRecord(d.Name)
	if d.Coins != nil {
		rec.Coins = *d.Coins
	}
	if d.Spins != nil {
		rec.Spins = *d.Spins
	}
	return rec
}

// Leaderboard is a view of player records ordered by coins, highest first.
type Leaderboard []PlayerRecord

// NewLeaderboard copies records into a sorted leaderboard.
// Ties keep the order in which the records were supplied.
func NewLeaderboard(records []PlayerRecord) Leaderboard {
	lb := make(Leaderboard, len(records))
	copy(lb, records)
	sort.SliceStable(lb, func(i, j int) bool {
		return lb[i].Coins > lb[j].Coins
	})
	return lb
}

// NormalizePlayerName trims and NFC-normalizes a name so equal-looking names
// map to the same key. An empty result means the name is rejected.
func NormalizePlayerName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}
