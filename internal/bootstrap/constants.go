package bootstrap

// Log messages for startup
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingApp         = "Starting slot machine"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgBackendSelected     = "Leaderboard backend selected"
	LogMsgMachineLoaded       = "Machine configuration loaded"
	LogMsgEventSystemStarted  = "Event hub started"
	LogMsgEventLoggerStarted  = "Event logger started"
	LogMsgEventReceived       = "Event"
)

// Log messages for shutdown
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoppingEventHub     = "Stopping event hub"
	LogMsgClosingBackend       = "Closing leaderboard backend"
	LogMsgBackendCloseFailed   = "Leaderboard backend close failed"
	LogMsgServerStopped        = "Server stopped"
)

// Error messages
const (
	ErrMsgConnectPostgres = "failed to connect to postgres"
	ErrMsgMigratePostgres = "failed to migrate postgres"
	ErrMsgOpenSQLite      = "failed to open sqlite"
	ErrMsgConnectRedis    = "failed to connect to redis"
	ErrMsgUnknownBackend  = "unknown leaderboard backend"
	ErrMsgInvalidMachine  = "invalid machine configuration"
)

// SQLiteDirPermission is used when creating the directory of the sqlite file
const SQLiteDirPermission = 0o755
