package world

// ConfigFileName is the name of the world seed inside the data directory
const ConfigFileName = "world.yaml"

// Format strings used with fmt.Errorf; the first verb is always the sentinel
const (
	ErrFmtReadFailed       = "%w: failed to read world file: %w"
	ErrFmtParseFailed      = "%w: failed to parse world file: %w"
	ErrFmtDocumentFields   = "%w: %s"
	ErrFmtDuplicateRoom    = "%w: duplicate room '%s'"
	ErrFmtDuplicatePlayer  = "%w: duplicate player '%s'"
	ErrFmtUnknownRoom      = "%w: %s references unknown room '%s'"
	ErrFmtUnknownFixture   = "%w: puzzle '%s' references unknown fixture '%s'"
	ErrFmtUnknownDrop      = "%w: room '%s' drops onto unknown fixture '%s'"
	ErrFmtUnknownPlayer    = "%w: inventory row %d references unknown player '%s'"
	ErrFmtUnknownPrefab    = "%w: %s row %d references unknown prefab '%s'"
	ErrFmtUnknownContainer = "%w: %s row %d references container '%s' that is not defined above it"
	ErrFmtDuplicateLabel   = "%w: %s row %d reuses identifier '%s'"
	ErrFmtPlaceFailed      = "%w: %s row %d: %w"
)

const (
	LogMsgWorldLoaded = "World loaded"
)
