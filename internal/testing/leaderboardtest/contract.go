// Package leaderboardtest holds the behaviour every repository.Leaderboard
// backend must share. Backend packages call Run from their own tests.
package leaderboardtest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SlotMachine_Go/internal/domain"
	"github.com/osse101/SlotMachine_Go/internal/repository"
)

// Factory returns an empty collection. Each call must be isolated from the
// others, e.g. by using NewCollectionName.
type Factory func(t *testing.T) repository.Leaderboard

// NewCollectionName returns a unique collection name for one test
func NewCollectionName() string {
	return "test_" + uuid.NewString()
}

func intPtr(n int) *int { return &n }

// Run executes the contract against repositories created by newRepo
func Run(t *testing.T, newRepo Factory) {
	t.Helper()

	t.Run("get missing returns nil", func(t *testing.T) {
		repo := newRepo(t)
		doc, err := repo.Get(context.Background(), "nobody")
		require.NoError(t, err)
		assert.Nil(t, doc)
	})

	t.Run("merge creates then overlays", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created := domain.ScoreDocument{Coins: intPtr(149), Spins: intPtr(1)}
		require.NoError(t, repo.Set(ctx, "Bob", created, true))

		got, err := repo.Get(ctx, "Bob")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.PlayerRecord{Name: "Bob", Coins: 149, Spins: 1}, got.Record())

		require.NoError(t, repo.Set(ctx, "Bob", domain.ScoreDocument{Coins: intPtr(158)}, true))
		got, err = repo.Get(ctx, "Bob")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 158, *got.Coins)
		require.NotNil(t, got.Spins, "merge must keep fields absent from the update")
		assert.Equal(t, 1, *got.Spins)
	})

	t.Run("merge keeps foreign fields", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		seed := domain.ScoreDocument{
			Coins: intPtr(100),
			Spins: intPtr(0),
			Extra: map[string]any{"avatar": "tiger"},
		}
		require.NoError(t, repo.Set(ctx, "Alice", seed, false))
		require.NoError(t, repo.Set(ctx, "Alice", domain.DocumentFromRecord(domain.PlayerRecord{Name: "Alice", Coins: 99, Spins: 1}), true))

		got, err := repo.Get(ctx, "Alice")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.PlayerRecord{Name: "Alice", Coins: 99, Spins: 1}, got.Record())
		assert.Equal(t, "tiger", got.Extra["avatar"])
	})

	t.Run("overwrite drops foreign fields", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		seed := domain.ScoreDocument{Coins: intPtr(5), Extra: map[string]any{"avatar": "tiger"}}
		require.NoError(t, repo.Set(ctx, "Alice", seed, true))
		require.NoError(t, repo.Set(ctx, "Alice", domain.ScoreDocument{Coins: intPtr(6)}, false))

		got, err := repo.Get(ctx, "Alice")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 6, *got.Coins)
		assert.Nil(t, got.Spins)
		assert.NotContains(t, got.Extra, "avatar")
	})

	t.Run("fetch all and delete", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, rec := range []domain.PlayerRecord{
			{Name: "Alice", Coins: 99, Spins: 1},
			{Name: "Bob", Coins: 149, Spins: 1},
			{Name: "Cara", Coins: 0, Spins: 120},
		} {
			require.NoError(t, repo.Set(ctx, rec.Name, domain.DocumentFromRecord(rec), true))
		}

		docs, err := repo.FetchAll(ctx)
		require.NoError(t, err)
		names := make([]string, 0, len(docs))
		for _, d := range docs {
			names = append(names, d.Name)
		}
		assert.ElementsMatch(t, []string{"Alice", "Bob", "Cara"}, names)

		require.NoError(t, repo.Delete(ctx, "Alice"))
		got, err := repo.Get(ctx, "Alice")
		require.NoError(t, err)
		assert.Nil(t, got)

		require.NoError(t, repo.DeleteAll(ctx))
		docs, err = repo.FetchAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("names that look like keys stay separate", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		players := []domain.PlayerRecord{
			{Name: "__index", Coins: 1, Spins: 1},
			{Name: "index", Coins: 2, Spins: 2},
			{Name: "a:b", Coins: 3, Spins: 3},
			{Name: "a", Coins: 4, Spins: 4},
		}
		for _, rec := range players {
			require.NoError(t, repo.Set(ctx, rec.Name, domain.DocumentFromRecord(rec), true))
		}

		docs, err := repo.FetchAll(ctx)
		require.NoError(t, err)
		got := make([]domain.PlayerRecord, 0, len(docs))
		for _, d := range docs {
			got = append(got, d.Record())
		}
		assert.ElementsMatch(t, players, got)

		for _, rec := range players {
			doc, err := repo.Get(ctx, rec.Name)
			require.NoError(t, err)
			require.NotNil(t, doc, rec.Name)
			assert.Equal(t, rec, doc.Record())
		}

		require.NoError(t, repo.Delete(ctx, "__index"))
		docs, err = repo.FetchAll(ctx)
		require.NoError(t, err)
		assert.Len(t, docs, len(players)-1)
	})

	t.Run("delete missing is not an error", func(t *testing.T) {
		repo := newRepo(t)
		assert.NoError(t, repo.Delete(context.Background(), "ghost"))
		assert.NoError(t, repo.DeleteAll(context.Background()))
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, newRepo(t).Ping(context.Background()))
	})
}
