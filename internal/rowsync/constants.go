package rowsync

// ==================== Pool Sizing ====================

const (
	// DefaultQueueSize bounds the deltas waiting for the store before Emit blocks
	DefaultQueueSize = 1024
)

// ==================== Log Messages ====================

const (
	LogMsgSnapshotWritten   = "Row snapshot written"
	LogMsgPersistenceFailed = "Row store rejected delta"
	LogMsgDeltaDropped      = "Row delta dropped, syncer stopped"
)

// ==================== Moderator Messages ====================

const (
	// MsgPersistenceFailedFmt is posted to the moderators' log channel
	MsgPersistenceFailedFmt = "Failed to save %s of row %d in %s: %v"
)

// ==================== Error Formats ====================

const ErrFmtSnapshot = "snapshot %s: %w"
