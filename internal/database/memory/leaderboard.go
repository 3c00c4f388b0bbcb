// Package memory is an in-process leaderboard backend for development and
// tests. Documents are returned in insertion order.
package memory

import (
	"context"
	"sync"

	"github.com/osse101/SlotMachine_Go/internal/domain"
	"github.com/osse101/SlotMachine_Go/internal/repository"
)

// LeaderboardRepository is a map-backed collection
type LeaderboardRepository struct {
	mu    sync.RWMutex
	docs  map[string]domain.ScoreDocument
	order []string
}

// NewLeaderboardRepository creates an empty collection
func NewLeaderboardRepository() *LeaderboardRepository {
	return &LeaderboardRepository{docs: make(map[string]domain.ScoreDocument)}
}

var _ repository.Leaderboard = (*LeaderboardRepository)(nil)

func (r *LeaderboardRepository) Get(_ context.Context, name string) (*domain.ScoreDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[name]
	if !ok {
		return nil, nil
	}
	out := clone(doc)
	return &out, nil
}

func (r *LeaderboardRepository) Set(_ context.Context, name string, doc domain.ScoreDocument, merge bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc.Name = name
	existing, ok := r.docs[name]
	if !ok {
		r.order = append(r.order, name)
	}
	if ok && merge {
		doc = existing.Merge(doc)
	}
	r.docs[name] = clone(doc)
	return nil
}

func (r *LeaderboardRepository) FetchAll(_ context.Context) ([]domain.ScoreDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := make([]domain.ScoreDocument, 0, len(r.order))
	for _, name := range r.order {
		docs = append(docs, clone(r.docs[name]))
	}
	return docs, nil
}

func (r *LeaderboardRepository) Delete(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[name]; !ok {
		return nil
	}
	delete(r.docs, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *LeaderboardRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.docs = make(map[string]domain.ScoreDocument)
	r.order = nil
	return nil
}

func (r *LeaderboardRepository) Ping(_ context.Context) error {
	return nil
}

// clone detaches the pointer fields and the top level of Extra
func clone(doc domain.ScoreDocument) domain.ScoreDocument {
	out := domain.ScoreDocument{Name: doc.Name}
	if doc.Coins != nil {
		c := *doc.Coins
		out.Coins = &c
	}
	if doc.Spins != nil {
		s := *doc.Spins
		out.Spins = &s
	}
	if doc.Extra != nil {
		out.Extra = make(map[string]any, len(doc.Extra))
		for k, v := range doc.Extra {
			out.Extra[k] = v
		}
	}
	return out
}
