package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists the variables each leaderboard backend cannot run without
var RequiredEnvVars = map[string][]string{
	BackendPostgres: {EnvDBUser, EnvDBPassword, EnvDBHost, EnvDBPort, EnvDBName},
	BackendSQLite:   {EnvSQLitePath},
	BackendRedis:    {EnvRedisAddr},
	BackendMemory:   {},
}

// ValidateEnv checks the schema version and the variables required by the
// selected LEADERBOARD_BACKEND (postgres when unset).
func ValidateEnv() error {
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	backend := strings.ToLower(os.Getenv(EnvLeaderboardBackend))
	if backend == "" {
		backend = DefaultLeaderboardBackend
	}
	required, ok := RequiredEnvVars[backend]
	if !ok {
		return fmt.Errorf("unknown LEADERBOARD_BACKEND %q", backend)
	}

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables for %s backend: %s", backend, strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using example values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv(EnvDBPassword) == ExampleDBPassword {
		warnings = append(warnings, WarnInsecureDBPassword)
	}

	for _, origin := range getEnvAsList(EnvCORSOrigins, nil) {
		if origin == "*" {
			warnings = append(warnings, WarnWildcardCORS)
			break
		}
	}

	if strings.ToLower(os.Getenv(EnvLeaderboardBackend)) == BackendMemory {
		warnings = append(warnings, WarnMemoryBackend)
	}

	return warnings, nil
}
