package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/SlotMachine_Go/internal/config"
	"github.com/osse101/SlotMachine_Go/internal/database"
	"github.com/osse101/SlotMachine_Go/internal/database/memory"
	"github.com/osse101/SlotMachine_Go/internal/database/postgres"
	"github.com/osse101/SlotMachine_Go/internal/database/redisstore"
	"github.com/osse101/SlotMachine_Go/internal/database/sqlite"
	"github.com/osse101/SlotMachine_Go/internal/repository"
)

// Backend is the remote leaderboard collection plus whatever must be closed
// when the process exits.
type Backend struct {
	Leaderboard repository.Leaderboard
	Name        string
	close       func() error
}

// Close releases the backend's connections. Safe on a nil close func.
func (b *Backend) Close() error {
	if b == nil || b.close == nil {
		return nil
	}
	return b.close()
}

// OpenLeaderboard connects to the backend named by cfg.LeaderboardBackend and
// scopes it to cfg.LeaderboardCollection. Postgres and sqlite are migrated
// before use.
func OpenLeaderboard(ctx context.Context, cfg *config.Config) (*Backend, error) {
	var (
		backend *Backend
		err     error
	)

	switch cfg.LeaderboardBackend {
	case config.BackendPostgres:
		backend, err = openPostgres(ctx, cfg)
	case config.BackendSQLite:
		backend, err = openSQLite(ctx, cfg)
	case config.BackendRedis:
		backend, err = openRedis(ctx, cfg)
	case config.BackendMemory:
		backend = &Backend{Leaderboard: memory.NewLeaderboardRepository()}
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownBackend, cfg.LeaderboardBackend)
	}
	if err != nil {
		return nil, err
	}

	backend.Name = cfg.LeaderboardBackend
	slog.Info(LogMsgBackendSelected, "backend", backend.Name, "collection", cfg.LeaderboardCollection)
	return backend, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (*Backend, error) {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolOptions{
		MaxConns:    cfg.DBMaxConns,
		MaxIdleTime: cfg.DBMaxConnIdleTime,
		MaxLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgConnectPostgres, err)
	}
	if err := database.MigratePostgres(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgMigratePostgres, err)
	}
	return &Backend{
		Leaderboard: postgres.NewLeaderboardRepository(pool, cfg.LeaderboardCollection),
		close: func() error {
			pool.Close()
			return nil
		},
	}, nil
}

func openSQLite(ctx context.Context, cfg *config.Config) (*Backend, error) {
	if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
		if err := os.MkdirAll(dir, SQLiteDirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgOpenSQLite, err)
		}
	}
	db, err := sqlite.Open(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenSQLite, err)
	}
	return &Backend{
		Leaderboard: sqlite.NewLeaderboardRepository(db, cfg.LeaderboardCollection),
		close:       db.Close,
	}, nil
}

func openRedis(ctx context.Context, cfg *config.Config) (*Backend, error) {
	rdb, err := redisstore.NewClient(ctx, redisstore.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgConnectRedis, err)
	}
	return &Backend{
		Leaderboard: redisstore.NewLeaderboardRepository(rdb, cfg.LeaderboardCollection),
		close:       rdb.Close,
	}, nil
}
