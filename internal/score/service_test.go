package score

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SlotMachine_Go/internal/database/memory"
	"github.com/osse101/SlotMachine_Go/internal/domain"
	"github.com/osse101/SlotMachine_Go/internal/localstore"
)

var (
	noMatch = domain.SpinResult{
		Symbols:   [3]domain.Symbol{"🍒", "🍋", "🔔"},
		Outcome:   domain.OutcomeNoMatch,
		CoinDelta: -1,
	}
	jackpot = domain.SpinResult{
		Symbols:   [3]domain.Symbol{"🍒", "🍒", "🍒"},
		Outcome:   domain.OutcomeJackpot,
		CoinDelta: 49,
	}
)

func intPtr(n int) *int { return &n }

func remoteRecord(t *testing.T, repo *memory.LeaderboardRepository, name string) domain.PlayerRecord {
	t.Helper()
	doc, err := repo.Get(context.Background(), name)
	require.NoError(t, err)
	require.NotNil(t, doc, "remote document for %s", name)
	return doc.Record()
}

func TestApplySpin_AliceNoMatch(t *testing.T) {
	t.Parallel()

	remote := memory.NewLeaderboardRepository()
	local := localstore.NewMemoryStore()
	svc := NewService(remote, DefaultConfig())

	res, err := svc.ApplySpin(context.Background(), local, "Alice", domain.NewPlayerRecord("Alice"), noMatch)
	require.NoError(t, err)

	want := domain.PlayerRecord{Name: "Alice", Coins: 99, Spins: 1}
	assert.Equal(t, want, res.Record)
	assert.True(t, res.Local.Written)
	assert.True(t, res.Remote.Synced)
	assert.NoError(t, res.Remote.Err)
	assert.Empty(t, res.Notice())

	rec, ok := localstore.Lookup(local, "Alice")
	require.True(t, ok)
	assert.Equal(t, want, rec)
	assert.Equal(t, want, remoteRecord(t, remote, "Alice"))
}

func TestApplySpin_BobCreatesMissingDocument(t *testing.T) {
	t.Parallel()

	remote := memory.NewLeaderboardRepository()
	svc := NewService(remote, DefaultConfig())

	res, err := svc.ApplySpin(context.Background(), localstore.NewMemoryStore(), "Bob", domain.NewPlayerRecord("Bob"), jackpot)
	require.NoError(t, err)
	assert.True(t, res.Remote.Synced)
	assert.Equal(t, domain.PlayerRecord{Name: "Bob", Coins: 149, Spins: 1}, remoteRecord(t, remote, "Bob"))
}

func TestApplySpin_MergeKeepsForeignFields(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	remote := memory.NewLeaderboardRepository()
	require.NoError(t, remote.Set(ctx, "Alice", domain.ScoreDocument{
		Coins: intPtr(100),
		Spins: intPtr(0),
		Extra: map[string]any{"avatar": "🐯"},
	}, false))

	svc := NewService(remote, DefaultConfig())
	_, err := svc.ApplySpin(ctx, localstore.NewMemoryStore(), "Alice", domain.NewPlayerRecord("Alice"), noMatch)
	require.NoError(t, err)

	doc, err := remote.Get(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, 99, *doc.Coins)
	assert.Equal(t, "🐯", doc.Extra["avatar"])
}

func TestApplySpin_RemoteFailureIsNonFatal(t *testing.T) {
	t.Parallel()

	remote := new(MockLeaderboard)
	remote.On("Get", mock.Anything, "Alice").Return(nil, errors.New("connection refused"))

	local := localstore.NewMemoryStore()
	svc := NewService(remote, DefaultConfig())

	res, err := svc.ApplySpin(context.Background(), local, "Alice", domain.NewPlayerRecord("Alice"), noMatch)
	require.NoError(t, err)

	assert.True(t, res.Local.Written)
	assert.False(t, res.Remote.Synced)
	assert.ErrorIs(t, res.Remote.Err, domain.ErrRemoteUnavailable)
	assert.Equal(t, NoticeSyncFailed, res.Notice())

	rec, ok := localstore.Lookup(local, "Alice")
	require.True(t, ok)
	assert.Equal(t, 99, rec.Coins)
	remote.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApplySpin_FullLocalStoreEvictsOthers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seed := localstore.NewMemoryStore()
	for i := range 30 {
		localstore.Save(seed, domain.PlayerRecord{Name: fmt.Sprintf("rival-%02d", i), Coins: 200 + i, Spins: i})
	}
	raw, ok := seed.Get(localstore.KeyLeaderboard)
	require.True(t, ok)

	local := localstore.NewLimitedMemoryStore(len(raw))
	require.NoError(t, local.Set(localstore.KeyLeaderboard, raw))
	svc := NewService(memory.NewLeaderboardRepository(), DefaultConfig())

	evicted := 0
	for spin := 1; spin <= 10; spin++ {
		previous := svc.CurrentRecord(local, "Alice")
		res, err := svc.ApplySpin(ctx, local, "Alice", previous, noMatch)
		require.NoError(t, err)
		require.True(t, res.Local.Written, "spin %d", spin)
		assert.Empty(t, res.Notice())
		assert.Equal(t, spin, res.Record.Spins)
		evicted += res.Local.Evicted
	}

	assert.Positive(t, evicted)
	assert.Equal(t, domain.PlayerRecord{Name: "Alice", Coins: 90, Spins: 10}, svc.CurrentRecord(local, "Alice"))
}

func TestApplySpin_LocalWriteFailureIsReported(t *testing.T) {
	t.Parallel()

	remote := new(MockLeaderboard)
	remote.On("Get", mock.Anything, "Alice").Return(nil, errors.New("connection refused"))

	local := localstore.NewLimitedMemoryStore(8)
	svc := NewService(remote, DefaultConfig())

	res, err := svc.ApplySpin(context.Background(), local, "Alice", domain.NewPlayerRecord("Alice"), noMatch)
	require.NoError(t, err)

	assert.False(t, res.Local.Written)
	assert.ErrorIs(t, res.Local.Err, domain.ErrLocalStoreFull)
	assert.Equal(t, NoticeLocalFull+noticeSeparator+NoticeSyncFailed, res.Notice())
	_, ok := localstore.Lookup(local, "Alice")
	assert.False(t, ok)
}

func TestApplySpin_RemoteWriteFailure(t *testing.T) {
	t.Parallel()

	remote := new(MockLeaderboard)
	remote.On("Get", mock.Anything, "Alice").Return(nil, nil)
	remote.On("Set", mock.Anything, "Alice", mock.Anything, true).Return(errors.New("quota exceeded"))

	svc := NewService(remote, DefaultConfig())
	res, err := svc.ApplySpin(context.Background(), localstore.NewMemoryStore(), "Alice", domain.NewPlayerRecord("Alice"), noMatch)
	require.NoError(t, err)
	assert.ErrorIs(t, res.Remote.Err, domain.ErrRemoteUnavailable)
	remote.AssertExpectations(t)
}

func TestApplySpin_RemoteTimeout(t *testing.T) {
	t.Parallel()

	remote := new(MockLeaderboard)
	remote.On("Get", mock.Anything, "Alice").
		Run(func(args mock.Arguments) {
			<-args.Get(0).(context.Context).Done()
		}).
		Return(nil, context.DeadlineExceeded)

	cfg := DefaultConfig()
	cfg.RemoteTimeout = 20 * time.Millisecond
	svc := NewService(remote, cfg)

	start := time.Now()
	res, err := svc.ApplySpin(context.Background(), localstore.NewMemoryStore(), "Alice", domain.NewPlayerRecord("Alice"), noMatch)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.ErrorIs(t, res.Remote.Err, domain.ErrRemoteUnavailable)
}

func TestApplySpin_CancelledRequestStillSyncs(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	remote := new(MockLeaderboard)
	remote.On("Get", mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil }), "Alice").Return(nil, nil)
	remote.On("Set", mock.Anything, "Alice", mock.Anything, true).Return(nil)

	svc := NewService(remote, DefaultConfig())
	res, err := svc.ApplySpin(ctx, localstore.NewMemoryStore(), "Alice", domain.NewPlayerRecord("Alice"), noMatch)
	require.NoError(t, err)
	assert.True(t, res.Remote.Synced)
	remote.AssertExpectations(t)
}

func TestApplySpin_ClampsAtZero(t *testing.T) {
	t.Parallel()

	svc := NewService(memory.NewLeaderboardRepository(), DefaultConfig())
	previous := domain.PlayerRecord{Name: "Cara", Coins: 0, Spins: 120}

	res, err := svc.ApplySpin(context.Background(), localstore.NewMemoryStore(), "Cara", previous, noMatch)
	require.NoError(t, err)
	assert.Equal(t, domain.PlayerRecord{Name: "Cara", Coins: 0, Spins: 121}, res.Record)
}

func TestApplySpin_EmptyName(t *testing.T) {
	t.Parallel()

	remote := new(MockLeaderboard)
	local := localstore.NewMemoryStore()
	svc := NewService(remote, DefaultConfig())

	_, err := svc.ApplySpin(context.Background(), local, "   ", domain.NewPlayerRecord(""), noMatch)
	assert.ErrorIs(t, err, domain.ErrEmptyPlayerName)
	assert.Empty(t, localstore.Load(local))
	remote.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestResetPlayer_RemovesExactlyOne(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	remote := memory.NewLeaderboardRepository()
	local := localstore.NewMemoryStore()
	svc := NewService(remote, DefaultConfig())

	localstore.Save(local, domain.PlayerRecord{Name: "Alice", Coins: 99, Spins: 1})
	localstore.Save(local, domain.PlayerRecord{Name: "Bob", Coins: 149, Spins: 1})
	localstore.Save(local, domain.PlayerRecord{Name: "Cara", Coins: 3, Spins: 200})
	require.NoError(t, remote.Set(ctx, "Alice", domain.DocumentFromRecord(domain.PlayerRecord{Name: "Alice", Coins: 99, Spins: 1}), true))

	lb := svc.ResetPlayer(ctx, local, "Alice")
	assert.Equal(t, domain.Leaderboard{
		{Name: "Bob", Coins: 149, Spins: 1},
		{Name: "Cara", Coins: 3, Spins: 200},
	}, lb)

	// Remote is untouched
	assert.Equal(t, 99, remoteRecord(t, remote, "Alice").Coins)
}

func TestResetAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	local := localstore.NewMemoryStore()
	svc := NewService(memory.NewLeaderboardRepository(), DefaultConfig())
	localstore.Save(local, domain.PlayerRecord{Name: "Alice", Coins: 99, Spins: 1})

	assert.Empty(t, svc.ResetAll(ctx, local))
	lb, err := svc.FetchLeaderboard(ctx, local, SourceLocal)
	require.NoError(t, err)
	assert.Empty(t, lb)
}

func TestFetchLeaderboard_LocalIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	local := localstore.NewMemoryStore()
	svc := NewService(new(MockLeaderboard), DefaultConfig())
	localstore.Save(local, domain.PlayerRecord{Name: "Alice", Coins: 99, Spins: 1})
	localstore.Save(local, domain.PlayerRecord{Name: "Bob", Coins: 149, Spins: 1})

	first, err := svc.FetchLeaderboard(ctx, local, SourceLocal)
	require.NoError(t, err)
	second, err := svc.FetchLeaderboard(ctx, local, SourceLocal)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "Bob", first[0].Name)
}

func TestFetchLeaderboard_LocalCorruptIsEmpty(t *testing.T) {
	t.Parallel()

	local := localstore.NewMemoryStore()
	local.Set(localstore.KeyLeaderboard, "%%%")
	svc := NewService(new(MockLeaderboard), DefaultConfig())

	lb, err := svc.FetchLeaderboard(context.Background(), local, SourceLocal)
	require.NoError(t, err)
	assert.Empty(t, lb)
}

func TestFetchLeaderboard_RemoteSorted(t *testing.T) {
	t.Parallel()

	remote := new(MockLeaderboard)
	remote.On("FetchAll", mock.Anything).Return([]domain.ScoreDocument{
		{Name: "Alice", Coins: intPtr(99), Spins: intPtr(1)},
		{Name: "Bob", Coins: intPtr(149), Spins: intPtr(1)},
		{Name: "Dan"},
	}, nil)

	svc := NewService(remote, DefaultConfig())
	lb, err := svc.FetchLeaderboard(context.Background(), localstore.NewMemoryStore(), SourceRemote)
	require.NoError(t, err)
	assert.Equal(t, domain.Leaderboard{
		{Name: "Bob", Coins: 149, Spins: 1},
		{Name: "Dan", Coins: 100, Spins: 0},
		{Name: "Alice", Coins: 99, Spins: 1},
	}, lb)
}

func TestFetchLeaderboard_RemoteError(t *testing.T) {
	t.Parallel()

	remote := new(MockLeaderboard)
	remote.On("FetchAll", mock.Anything).Return(nil, errors.New("unavailable"))

	svc := NewService(remote, DefaultConfig())
	_, err := svc.FetchLeaderboard(context.Background(), localstore.NewMemoryStore(), SourceRemote)
	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}

func TestFetchLeaderboard_InvalidSource(t *testing.T) {
	t.Parallel()

	svc := NewService(new(MockLeaderboard), DefaultConfig())
	_, err := svc.FetchLeaderboard(context.Background(), localstore.NewMemoryStore(), Source("global"))
	assert.ErrorIs(t, err, domain.ErrInvalidSource)
}

func TestFetchLeaderboard_RemoteCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	remote := new(MockLeaderboard)
	remote.On("FetchAll", mock.Anything).Return([]domain.ScoreDocument{
		{Name: "Alice", Coins: intPtr(99), Spins: intPtr(1)},
	}, nil).Twice()
	remote.On("Get", mock.Anything, "Bob").Return(nil, nil)
	remote.On("Set", mock.Anything, "Bob", mock.Anything, true).Return(nil)

	cfg := DefaultConfig()
	cfg.CacheTTL = time.Minute
	svc := NewService(remote, cfg)
	local := localstore.NewMemoryStore()

	_, err := svc.FetchLeaderboard(ctx, local, SourceRemote)
	require.NoError(t, err)
	_, err = svc.FetchLeaderboard(ctx, local, SourceRemote)
	require.NoError(t, err)
	remote.AssertNumberOfCalls(t, "FetchAll", 1)

	require.NoError(t, svc.SubmitScore(ctx, domain.PlayerRecord{Name: "Bob", Coins: 149, Spins: 1}))
	_, err = svc.FetchLeaderboard(ctx, local, SourceRemote)
	require.NoError(t, err)
	remote.AssertNumberOfCalls(t, "FetchAll", 2)
}

func TestCurrentRecord(t *testing.T) {
	t.Parallel()

	local := localstore.NewMemoryStore()
	svc := NewService(new(MockLeaderboard), DefaultConfig())

	assert.Equal(t, domain.PlayerRecord{Name: "Alice", Coins: 100, Spins: 0}, svc.CurrentRecord(local, " Alice "))

	localstore.Save(local, domain.PlayerRecord{Name: "Alice", Coins: 42, Spins: 58})
	assert.Equal(t, domain.PlayerRecord{Name: "Alice", Coins: 42, Spins: 58}, svc.CurrentRecord(local, "Alice"))
}

func TestRestart(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	remote := memory.NewLeaderboardRepository()
	local := localstore.NewMemoryStore()
	svc := NewService(remote, DefaultConfig())

	localstore.Save(local, domain.PlayerRecord{Name: "Alice", Coins: 5, Spins: 95})
	_, err := svc.Restart(ctx, local, "Alice")
	assert.ErrorIs(t, err, domain.ErrRestartNotAllowed)

	localstore.Save(local, domain.PlayerRecord{Name: "Alice", Coins: 0, Spins: 100})
	res, err := svc.Restart(ctx, local, "Alice")
	require.NoError(t, err)

	want := domain.PlayerRecord{Name: "Alice", Coins: 10, Spins: 100}
	assert.Equal(t, want, res.Record)
	assert.True(t, res.Remote.Synced)
	assert.Equal(t, want, remoteRecord(t, remote, "Alice"))
}
