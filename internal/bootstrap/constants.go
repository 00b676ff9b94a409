package bootstrap

import "time"

// ==================== File System ====================

const (
	// DirPermission is used for the log and bolt directories
	DirPermission = 0o755
	// LogFilePermission is used for session log files
	LogFilePermission = 0o644
)

// ==================== Session Logs ====================

const (
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"
	// LogFileRetentionCount is how many older session logs survive a restart
	LogFileRetentionCount = 9
)

// ==================== Workers ====================

const (
	// NarrationWorkers is one so messages leave in priority order
	NarrationWorkers = 1
	// ShutdownTimeout bounds the graceful shutdown
	ShutdownTimeout = 15 * time.Second
)

// ==================== Log Messages ====================

const (
	LogMsgLoggingInitialized   = "Logging initialized"
	LogMsgStarting             = "Starting AlterEgo"
	LogMsgRowStoreOpened       = "Row store opened"
	LogMsgWorldReady           = "World ready"
	LogMsgDiscordDisabled      = "Discord disabled, narration goes to the log"
	LogMsgShuttingDown         = "Shutting down"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgRowStoreCloseFailed  = "Failed to close row store"
	LogMsgStopped              = "Stopped"
)

// ==================== Error Formats ====================

const (
	ErrFmtCreateLogDir = "create log directory %s: %w"
	ErrFmtOpenLogFile  = "open log file %s: %w"
	ErrFmtConnectDB    = "connect to database: %w"
	ErrFmtMigrate      = "migrate database: %w"
	ErrFmtOpenBolt     = "open bolt store: %w"
	ErrFmtLoadPrefabs  = "load prefabs: %w"
	ErrFmtLoadRecipes  = "load recipes: %w"
	ErrFmtLoadWorld    = "load world: %w"
	ErrFmtSnapshot     = "snapshot rows: %w"
	ErrFmtCreateBot    = "create discord bot: %w"
	ErrFmtStartBot     = "start discord bot: %w"
	ErrFmtUnknownStore = "unknown row store %q"
)
