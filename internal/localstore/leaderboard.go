package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/osse101/SlotMachine_Go/internal/domain"
)

// Stats is the per-player value stored in the local leaderboard
type Stats struct {
	Coins int `json:"coins"`
	Spins int `json:"spins"`
}

// Load decodes the local leaderboard. Missing or unreadable data reads as empty.
func Load(store Store) map[string]Stats {
	raw, ok := store.Get(KeyLeaderboard)
	if !ok || raw == "" {
		return map[string]Stats{}
	}
	var entries map[string]Stats
	if err := json.Unmarshal([]byte(raw), &entries); err != nil || entries == nil {
		storeLogger(store).Debug(LogMsgLeaderboardCorrupt, "error", err)
		return map[string]Stats{}
	}
	return entries
}

// Save writes one player's stats and returns the updated map. When the store
// rejects the encoded map as too large, other players are evicted weakest
// first until it fits; evicted counts them. The saved player is never
// evicted. On error nothing is written and the stored map is returned.
func Save(store Store, record domain.PlayerRecord) (entries map[string]Stats, evicted int, err error) {
	entries = Load(store)
	entries[record.Name] = Stats{Coins: record.Coins, Spins: record.Spins}
	for {
		err = write(store, entries)
		if err == nil || !errors.Is(err, domain.ErrLocalStoreFull) {
			break
		}
		victim, ok := weakest(entries, record.Name)
		if !ok {
			break
		}
		delete(entries, victim)
		evicted++
	}
	if err != nil {
		return Load(store), 0, err
	}
	if evicted > 0 {
		storeLogger(store).Info(LogMsgLeaderboardEvicted, "player", record.Name, "evicted", evicted)
	}
	return entries, evicted, nil
}

// weakest picks the entry to evict: fewest coins, then fewest spins, then the
// name sorting last. keep is never chosen.
func weakest(entries map[string]Stats, keep string) (string, bool) {
	var (
		victim string
		found  bool
	)
	for name, s := range entries {
		if name == keep {
			continue
		}
		if !found {
			victim, found = name, true
			continue
		}
		v := entries[victim]
		switch {
		case s.Coins != v.Coins:
			if s.Coins < v.Coins {
				victim = name
			}
		case s.Spins != v.Spins:
			if s.Spins < v.Spins {
				victim = name
			}
		case name > victim:
			victim = name
		}
	}
	return victim, found
}

// Delete removes one player's entry and returns the updated map. Deleting an
// absent player leaves the stored value unchanged.
func Delete(store Store, name string) map[string]Stats {
	entries := Load(store)
	if _, ok := entries[name]; !ok {
		return entries
	}
	delete(entries, name)
	if err := write(store, entries); err != nil {
		storeLogger(store).Warn(LogMsgLeaderboardWrite, "error", err)
	}
	return entries
}

// Clear removes the whole local leaderboard
func Clear(store Store) {
	store.Remove(KeyLeaderboard)
}

// Records converts stored entries into a leaderboard sorted by coins.
// Entries are stored as a JSON object whose keys encode in sorted order, so
// ties come back ordered by name.
func Records(entries map[string]Stats) domain.Leaderboard {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	records := make([]domain.PlayerRecord, 0, len(names))
	for _, name := range names {
		s := entries[name]
		records = append(records, domain.PlayerRecord{Name: name, Coins: s.Coins, Spins: s.Spins})
	}
	return domain.NewLeaderboard(records)
}

// Lookup returns the stored record for name, if any
func Lookup(store Store, name string) (domain.PlayerRecord, bool) {
	s, ok := Load(store)[name]
	if !ok {
		return domain.PlayerRecord{}, false
	}
	return domain.PlayerRecord{Name: name, Coins: s.Coins, Spins: s.Spins}, true
}

func write(store Store, entries map[string]Stats) error {
	data, err := json.Marshal(entries)
	if err != nil {
		storeLogger(store).Error(LogMsgLeaderboardEncoding, "error", err)
		return fmt.Errorf("encode local leaderboard: %w", err)
	}
	return store.Set(KeyLeaderboard, string(data))
}

// PlayerName returns the remembered active player
func PlayerName(store Store) (string, bool) {
	name, ok := store.Get(KeyPlayer)
	if !ok {
		return "", false
	}
	name = domain.NormalizePlayerName(name)
	return name, name != ""
}

// SetPlayerName remembers the active player. Blank names are rejected.
func SetPlayerName(store Store, name string) (string, error) {
	name = domain.NormalizePlayerName(name)
	if name == "" {
		return "", domain.ErrEmptyPlayerName
	}
	if err := store.Set(KeyPlayer, name); err != nil {
		return "", err
	}
	return name, nil
}

// ClearPlayerName forgets the active player
func ClearPlayerName(store Store) {
	store.Remove(KeyPlayer)
}
