package bootstrap

import "time"

// =============================================================================
// Logger Configuration
// =============================================================================

// Environments that get source locations in log lines
var SourceLogEnvironments = []string{"dev", "development"}

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingScraper     = "Starting loot scraper"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
)

// =============================================================================
// Sink Initialization
// =============================================================================

const (
	LogMsgSinkEnabled = "Sink enabled"

	ErrMsgFailedCreateSheetsSink = "failed to create Google Sheets sink"
	ErrMsgFailedConnectDatabase  = "failed to connect to database"
	ErrMsgFailedMigrateDatabase  = "failed to migrate database"
)

// =============================================================================
// Shutdown
// =============================================================================

// ShutdownTimeout bounds graceful shutdown
const ShutdownTimeout = 10 * time.Second

const (
	LogMsgShuttingDown         = "Shutting down..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStopped              = "Loot scraper stopped"
)
