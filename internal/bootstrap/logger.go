package bootstrap

import (
	"io"
	"log/slog"
	"os"

	"github.com/osse101/SlotMachine_Go/internal/config"
	"github.com/osse101/SlotMachine_Go/internal/logger"
)

// SetupLogger installs the default slog logger described by cfg and logs the
// startup banner. Source locations are only added in development.
func SetupLogger(cfg *config.Config) {
	SetupLoggerWithWriter(cfg, os.Stdout)
}

// SetupLoggerWithWriter is SetupLogger with an explicit destination
func SetupLoggerWithWriter(cfg *config.Config, w io.Writer) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	), w)

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStartingApp,
		"environment", cfg.Environment,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"backend", cfg.LeaderboardBackend,
		"collection", cfg.LeaderboardCollection,
		"remote_timeout", cfg.RemoteTimeout,
		"cache_ttl", cfg.CacheTTL)
}
