package score

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/SlotMachine_Go/internal/domain"
	"github.com/osse101/SlotMachine_Go/internal/localstore"
	"github.com/osse101/SlotMachine_Go/internal/logger"
	"github.com/osse101/SlotMachine_Go/internal/metrics"
	"github.com/osse101/SlotMachine_Go/internal/repository"
)

// Service reconciles a player's score between the client-owned local store
// and the shared remote collection.
type Service interface {
	ApplySpin(ctx context.Context, local localstore.Store, name string, previous domain.PlayerRecord, result domain.SpinResult) (ApplyResult, error)
	SubmitScore(ctx context.Context, record domain.PlayerRecord) error
	ResetPlayer(ctx context.Context, local localstore.Store, name string) domain.Leaderboard
	ResetAll(ctx context.Context, local localstore.Store) domain.Leaderboard
	FetchLeaderboard(ctx context.Context, local localstore.Store, source Source) (domain.Leaderboard, error)
	CurrentRecord(local localstore.Store, name string) domain.PlayerRecord
	Restart(ctx context.Context, local localstore.Store, name string) (ApplyResult, error)
}

// Config tunes the reconciler
type Config struct {
	RemoteTimeout time.Duration
	StartingCoins int
	RestartCoins  int
	// CacheTTL of zero disables the remote leaderboard cache
	CacheTTL  time.Duration
	CacheSize int
}

// DefaultConfig returns the stock game rules
func DefaultConfig() Config {
	return Config{
		RemoteTimeout: DefaultRemoteTimeout,
		StartingCoins: domain.DefaultStartingCoins,
		RestartCoins:  domain.DefaultRestartCoins,
	}
}

// LocalResult reports the local cache write. Evicted counts other players
// dropped to make room. Err is never returned from the operation itself.
type LocalResult struct {
	Written bool  `json:"written"`
	Evicted int   `json:"evicted,omitempty"`
	Err     error `json:"-"`
}

// RemoteResult reports the remote write. Err is never returned from the
// operation itself.
type RemoteResult struct {
	Synced bool  `json:"synced"`
	Err    error `json:"-"`
}

// ApplyResult is the outcome of writing a new record to both stores
type ApplyResult struct {
	Record domain.PlayerRecord `json:"record"`
	Local  LocalResult         `json:"local"`
	Remote RemoteResult        `json:"remote"`
}

// Notice returns the non-fatal message to show the player, if any
func (r ApplyResult) Notice() string {
	var notices []string
	if r.Local.Err != nil {
		notices = append(notices, NoticeLocalFull)
	}
	if r.Remote.Err != nil {
		notices = append(notices, NoticeSyncFailed)
	}
	return strings.Join(notices, noticeSeparator)
}

type service struct {
	remote repository.Leaderboard
	cfg    Config
	cache  *expirable.LRU[string, domain.Leaderboard]
}

// NewService creates a reconciler over the remote collection
func NewService(remote repository.Leaderboard, cfg Config) Service {
	if cfg.RemoteTimeout <= 0 {
		cfg.RemoteTimeout = DefaultRemoteTimeout
	}
	s := &service{remote: remote, cfg: cfg}
	if cfg.CacheTTL > 0 {
		size := cfg.CacheSize
		if size <= 0 {
			size = DefaultCacheSize
		}
		s.cache = expirable.NewLRU[string, domain.Leaderboard](size, nil, cfg.CacheTTL)
	}
	return s
}

// ApplySpin applies the spin's coin delta to previous and writes the result to
// both stores. The local write always happens. A remote failure is reported
// in the result, not as an error.
func (s *service) ApplySpin(ctx context.Context, local localstore.Store, name string, previous domain.PlayerRecord, result domain.SpinResult) (ApplyResult, error) {
	name = domain.NormalizePlayerName(name)
	if name == "" {
		return ApplyResult{}, domain.ErrEmptyPlayerName
	}

	coins := previous.Coins + result.CoinDelta
	if coins < 0 {
		logger.FromContext(ctx).Warn(LogMsgCoinsClamped, "player", name, "coins", coins)
		coins = 0
	}
	record := domain.PlayerRecord{Name: name, Coins: coins, Spins: previous.Spins + 1}

	metrics.SpinsTotal.WithLabelValues(string(result.Outcome)).Inc()
	metrics.CoinsDeltaTotal.Add(float64(result.CoinDelta))

	res := s.write(ctx, local, record)
	logger.FromContext(ctx).Info(LogMsgSpinApplied,
		"player", name,
		"outcome", result.Outcome,
		"coins", record.Coins,
		"spins", record.Spins,
		"synced", res.Remote.Synced)
	return res, nil
}

// write stores the record locally, then pushes it to the remote collection
// under the configured timeout. The request context's cancellation is
// ignored so a started write is never abandoned.
func (s *service) write(ctx context.Context, local localstore.Store, record domain.PlayerRecord) ApplyResult {
	res := ApplyResult{Record: record}
	_, evicted, err := localstore.Save(local, record)
	res.Local = LocalResult{Written: err == nil, Evicted: evicted, Err: err}
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgLocalWriteFailed, "player", record.Name, "error", err)
	}

	remoteCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.RemoteTimeout)
	defer cancel()

	if err := s.SubmitScore(remoteCtx, record); err != nil {
		logger.FromContext(ctx).Warn(LogMsgRemoteSyncFailed, "player", record.Name, "error", err)
		res.Remote.Err = err
		return res
	}
	res.Remote.Synced = true
	return res
}

// SubmitScore upserts the record's coins and spins into the remote document.
// The read and the write are separate calls, so two writers for the same
// name can interleave and the last write wins.
func (s *service) SubmitScore(ctx context.Context, record domain.PlayerRecord) (err error) {
	defer func() {
		metrics.LeaderboardSyncTotal.WithLabelValues(metrics.ResultLabel(err)).Inc()
	}()

	existing, err := s.remote.Get(ctx, record.Name)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}

	doc := domain.DocumentFromRecord(record)
	if existing == nil {
		doc = s.withDefaults(doc)
	}
	if err := s.remote.Set(ctx, record.Name, doc, true); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}

	if s.cache != nil {
		s.cache.Purge()
	}
	logger.FromContext(ctx).Debug(LogMsgRemoteSynced, "player", record.Name, "created", existing == nil)
	return nil
}

func (s *service) withDefaults(doc domain.ScoreDocument) domain.ScoreDocument {
	if doc.Coins == nil {
		coins := s.cfg.StartingCoins
		doc.Coins = &coins
	}
	if doc.Spins == nil {
		spins := domain.DefaultStartingSpins
		doc.Spins = &spins
	}
	return doc
}

// ResetPlayer removes the player from the local leaderboard only
func (s *service) ResetPlayer(ctx context.Context, local localstore.Store, name string) domain.Leaderboard {
	name = domain.NormalizePlayerName(name)
	entries := localstore.Delete(local, name)
	logger.FromContext(ctx).Info(LogMsgPlayerReset, "player", name)
	return localstore.Records(entries)
}

// ResetAll clears the local leaderboard only
func (s *service) ResetAll(ctx context.Context, local localstore.Store) domain.Leaderboard {
	localstore.Clear(local)
	logger.FromContext(ctx).Info(LogMsgAllReset)
	return domain.Leaderboard{}
}

// FetchLeaderboard reads the requested leaderboard sorted by coins. Only a
// remote read can fail.
func (s *service) FetchLeaderboard(ctx context.Context, local localstore.Store, source Source) (domain.Leaderboard, error) {
	switch source {
	case SourceLocal:
		metrics.LeaderboardFetchTotal.WithLabelValues(string(source), metrics.ResultSuccess).Inc()
		return localstore.Records(localstore.Load(local)), nil
	case SourceRemote:
		lb, err := s.fetchRemote(ctx)
		metrics.LeaderboardFetchTotal.WithLabelValues(string(source), metrics.ResultLabel(err)).Inc()
		return lb, err
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSource, source)
	}
}

func (s *service) fetchRemote(ctx context.Context) (domain.Leaderboard, error) {
	if s.cache != nil {
		if lb, ok := s.cache.Get(remoteCacheKey); ok {
			metrics.LeaderboardCacheTotal.WithLabelValues(metrics.ResultHit).Inc()
			return lb, nil
		}
		metrics.LeaderboardCacheTotal.WithLabelValues(metrics.ResultMiss).Inc()
	}

	remoteCtx, cancel := context.WithTimeout(ctx, s.cfg.RemoteTimeout)
	defer cancel()

	docs, err := s.remote.FetchAll(remoteCtx)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgRemoteFetchFailed, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}

	records := make([]domain.PlayerRecord, 0, len(docs))
	for _, doc := range docs {
		rec := doc.Record()
		if doc.Coins == nil {
			rec.Coins = s.cfg.StartingCoins
		}
		records = append(records, rec)
	}
	lb := domain.NewLeaderboard(records)

	if s.cache != nil {
		s.cache.Add(remoteCacheKey, lb)
	}
	return lb, nil
}

// CurrentRecord returns the player's local record, or a fresh one
func (s *service) CurrentRecord(local localstore.Store, name string) domain.PlayerRecord {
	name = domain.NormalizePlayerName(name)
	if rec, ok := localstore.Lookup(local, name); ok {
		return rec
	}
	return domain.PlayerRecord{Name: name, Coins: s.cfg.StartingCoins, Spins: domain.DefaultStartingSpins}
}

// Restart refills a broke player's coins. It is refused while any coins remain.
func (s *service) Restart(ctx context.Context, local localstore.Store, name string) (ApplyResult, error) {
	name = domain.NormalizePlayerName(name)
	if name == "" {
		return ApplyResult{}, domain.ErrEmptyPlayerName
	}

	current := s.CurrentRecord(local, name)
	if current.Coins != 0 {
		return ApplyResult{}, fmt.Errorf("%w: player has %d coins", domain.ErrRestartNotAllowed, current.Coins)
	}

	record := domain.PlayerRecord{Name: name, Coins: s.cfg.RestartCoins, Spins: current.Spins}
	res := s.write(ctx, local, record)
	logger.FromContext(ctx).Info(LogMsgPlayerRestarted, "player", name, "coins", record.Coins)
	return res, nil
}
