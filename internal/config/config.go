package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	LeaderboardBackend    string
	LeaderboardCollection string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	SQLitePath string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	RemoteTimeout time.Duration
	CacheTTL      time.Duration
	CacheSize     int

	RevealFastDelay  time.Duration
	RevealSlowDelay  time.Duration
	RevealFastFrames int
	RevealSlowFrames int

	MachineConfigPath string
	Machine           *MachineConfig

	CORSOrigins    []string
	TrustedProxies []string
	RateLimit      int
	RateWindow     time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),

		LeaderboardBackend:    strings.ToLower(getEnv(EnvLeaderboardBackend, DefaultLeaderboardBackend)),
		LeaderboardCollection: getEnv(EnvLeaderboardCollection, DefaultLeaderboardCollection),

		DBUser:            getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:        getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:            getEnv(EnvDBHost, DefaultDBHost),
		DBPort:            getEnv(EnvDBPort, DefaultDBPort),
		DBName:            getEnv(EnvDBName, DefaultDBName),
		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration(EnvDBMaxConnIdleTime, DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime),

		SQLitePath: getEnv(EnvSQLitePath, DefaultSQLitePath),

		RedisAddr:     getEnv(EnvRedisAddr, DefaultRedisAddr),
		RedisPassword: getEnv(EnvRedisPassword, ""),
		RedisDB:       getEnvAsInt(EnvRedisDB, DefaultRedisDB),

		RemoteTimeout: getEnvAsDuration(EnvRemoteTimeout, DefaultRemoteTimeout),
		CacheTTL:      getEnvAsDuration(EnvCacheTTL, DefaultCacheTTL),
		CacheSize:     getEnvAsInt(EnvCacheSize, DefaultCacheSize),

		RevealFastDelay:  getEnvAsDuration(EnvRevealFastDelay, DefaultRevealFastDelay),
		RevealSlowDelay:  getEnvAsDuration(EnvRevealSlowDelay, DefaultRevealSlowDelay),
		RevealFastFrames: getEnvAsInt(EnvRevealFastFrames, DefaultRevealFastFrames),
		RevealSlowFrames: getEnvAsInt(EnvRevealSlowFrames, DefaultRevealSlowFrames),

		MachineConfigPath: getEnv(EnvMachineConfig, ""),
		CORSOrigins:       getEnvAsList(EnvCORSOrigins, nil),

		TrustedProxies: getEnvAsList(EnvTrustedProxies, nil),
		RateLimit:      getEnvAsInt(EnvRateLimit, DefaultRateLimit),
		RateWindow:     getEnvAsDuration(EnvRateWindow, DefaultRateWindow),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if !slices.Contains([]string{BackendPostgres, BackendSQLite, BackendRedis, BackendMemory}, cfg.LeaderboardBackend) {
		return nil, fmt.Errorf("invalid LEADERBOARD_BACKEND value %q: must be one of postgres, sqlite, redis, memory", cfg.LeaderboardBackend)
	}
	if cfg.LeaderboardCollection == "" {
		return nil, fmt.Errorf("LEADERBOARD_COLLECTION must not be empty")
	}
	if cfg.RemoteTimeout <= 0 {
		return nil, fmt.Errorf("REMOTE_TIMEOUT must be positive, got %s", cfg.RemoteTimeout)
	}
	if cfg.RateLimit <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT must be positive, got %d", cfg.RateLimit)
	}
	if cfg.RateWindow <= 0 {
		return nil, fmt.Errorf("RATE_WINDOW must be positive, got %s", cfg.RateWindow)
	}
	if cfg.RevealFastFrames < 0 || cfg.RevealSlowFrames < 0 {
		return nil, fmt.Errorf("reveal frame counts must not be negative")
	}
	if cfg.RevealFastDelay < 0 || cfg.RevealSlowDelay < 0 {
		return nil, fmt.Errorf("reveal delays must not be negative")
	}

	cfg.Machine, err = LoadMachineConfig(cfg.MachineConfigPath)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back on empty or invalid values
func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsDuration parses a time.Duration environment variable ("30s", "5m")
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// getEnvAsList splits a comma separated environment variable, dropping blanks
func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
