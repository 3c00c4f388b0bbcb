package repository

import (
	"context"

	"github.com/osse101/SlotMachine_Go/internal/domain"
)

// Leaderboard is a named collection of score documents keyed by player name.
//
// Set with merge=true overlays the supplied fields onto an existing document
// (creating it when absent) and keeps every other field. Set with merge=false
// replaces the document.
type Leaderboard interface {
	Get(ctx context.Context, name string) (*domain.ScoreDocument, error)
	Set(ctx context.Context, name string, doc domain.ScoreDocument, merge bool) error
	FetchAll(ctx context.Context) ([]domain.ScoreDocument, error)
	Delete(ctx context.Context, name string) error
	DeleteAll(ctx context.Context) error
	Ping(ctx context.Context) error
}
