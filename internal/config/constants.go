package config

import (
	"time"

	"github.com/osse101/SlotMachine_Go/internal/domain"
)

// Leaderboard backends
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// Environment variable names
const (
	EnvPort                  = "PORT"
	EnvLogLevel              = "LOG_LEVEL"
	EnvLogFormat             = "LOG_FORMAT"
	EnvEnvironment           = "ENVIRONMENT"
	EnvServiceName           = "SERVICE_NAME"
	EnvVersion               = "VERSION"
	EnvSchemaVersion         = "ENV_SCHEMA_VERSION"
	EnvLeaderboardBackend    = "LEADERBOARD_BACKEND"
	EnvLeaderboardCollection = "LEADERBOARD_COLLECTION"
	EnvDBUser                = "DB_USER"
	EnvDBPassword            = "DB_PASSWORD"
	EnvDBHost                = "DB_HOST"
	EnvDBPort                = "DB_PORT"
	EnvDBName                = "DB_NAME"
	EnvDBMaxConns            = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime     = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime     = "DB_MAX_CONN_LIFETIME"
	EnvSQLitePath            = "SQLITE_PATH"
	EnvRedisAddr             = "REDIS_ADDR"
	EnvRedisPassword         = "REDIS_PASSWORD"
	EnvRedisDB               = "REDIS_DB"
	EnvRemoteTimeout         = "REMOTE_TIMEOUT"
	EnvCacheTTL              = "LEADERBOARD_CACHE_TTL"
	EnvCacheSize             = "LEADERBOARD_CACHE_SIZE"
	EnvRevealFastDelay       = "REVEAL_FAST_DELAY"
	EnvRevealSlowDelay       = "REVEAL_SLOW_DELAY"
	EnvRevealFastFrames      = "REVEAL_FAST_FRAMES"
	EnvRevealSlowFrames      = "REVEAL_SLOW_FRAMES"
	EnvMachineConfig         = "MACHINE_CONFIG"
	EnvCORSOrigins           = "CORS_ORIGINS"
	EnvTrustedProxies        = "TRUSTED_PROXIES"
	EnvRateLimit             = "RATE_LIMIT"
	EnvRateWindow            = "RATE_WINDOW"
)

// Defaults
const (
	DefaultPort                  = "8080"
	DefaultLogLevel              = "info"
	DefaultLogFormat             = "text"
	DefaultEnvironment           = "dev"
	DefaultServiceName           = "slot-machine"
	DefaultVersion               = "dev"
	DefaultLeaderboardBackend    = BackendPostgres
	DefaultLeaderboardCollection = domain.DefaultCollection
	DefaultDBUser                = "postgres"
	DefaultDBPassword            = "postgres"
	DefaultDBHost                = "localhost"
	DefaultDBPort                = "5432"
	DefaultDBName                = "slotmachine"
	DefaultDBMaxConns            = 20
	DefaultDBMaxConnIdleTime     = 5 * time.Minute
	DefaultDBMaxConnLifetime     = 30 * time.Minute
	DefaultSQLitePath            = "data/leaderboard.db"
	DefaultRedisAddr             = "localhost:6379"
	DefaultRedisDB               = 0
	DefaultRemoteTimeout         = 3 * time.Second
	DefaultCacheTTL              = time.Duration(0)
	DefaultCacheSize             = 1
	DefaultRevealFastDelay       = 50 * time.Millisecond
	DefaultRevealSlowDelay       = 150 * time.Millisecond
	DefaultRevealFastFrames      = 10
	DefaultRevealSlowFrames      = 6
	DefaultRateLimit             = 1000
	DefaultRateWindow            = 5 * time.Minute
)

// Messages for the env validator
const (
	WarnInsecureDBPassword = "DB_PASSWORD appears to be using the example value - please use a secure password"
	WarnWildcardCORS       = "CORS_ORIGINS allows every origin - restrict it outside of development"
	WarnMemoryBackend      = "LEADERBOARD_BACKEND=memory keeps the remote leaderboard in process memory only"
	ExampleDBPassword      = "change_this_secure_password"
)
