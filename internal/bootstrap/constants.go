package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept alongside the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting Idle Animal Kingdom"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Store Configuration
// =============================================================================

const (
	// DBMaxIdleTime and DBMaxLifetime bound pooled postgres connections
	DBMaxIdleTime = 5 * time.Minute
	DBMaxLifetime = time.Hour
)

// Log and error messages for store initialization
const (
	LogMsgStoreInitialized      = "Save store initialized"
	ErrMsgUnknownStoreBackend   = "unknown store backend"
	ErrMsgFailedCreateFileStore = "failed to create file store"
	ErrMsgFailedConnectDatabase = "failed to connect to database"
	ErrMsgFailedMigrateDatabase = "failed to migrate database"
)

// =============================================================================
// Background Work Configuration
// =============================================================================

const (
	// WorkerQueueSize bounds pending scheduled jobs
	WorkerQueueSize = 16
)

const (
	LogMsgBackgroundStarted = "Background workers started"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSSESubscriberRegistered    = "SSE subscriber registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
	ErrMsgFailedRegisterGauges       = "failed to register gauges"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer    = "Shutting down server..."
	LogMsgSavingSessions        = "Writing final saves..."
	LogMsgServerStopped         = "Server stopped"
	LogMsgServerForcedShutdown  = "Server forced to shutdown"
	LogMsgSessionShutdownFailed = "Session shutdown incomplete"
	LogMsgReceivedSignal        = "Received signal"
	LogMsgServerExitedWithError = "Server exited with error"
)
