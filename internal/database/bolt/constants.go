package bolt

// ==================== Storage ====================

const (
	// DefaultFileMode is the permission used when creating the database file
	DefaultFileMode = 0o600
	keySize         = 8
)

// ==================== Error Messages ====================

const (
	ErrMsgPathRequired  = "storage path is required"
	ErrMsgOpenDB        = "open row store"
	ErrMsgCreateBucket  = "create bucket %s"
	ErrMsgBucketMissing = "bucket %s is missing"
	ErrMsgMarshalRecord = "marshal row %d"
	ErrMsgDecodeRecord  = "decode row %d"
	ErrMsgNotConfigured = "row store is not configured"
)
