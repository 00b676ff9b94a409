package item

// ==================== Configuration File Names ====================

// ConfigFileName is the name of the prefab catalog file inside the data directory
const ConfigFileName = "prefabs.json"

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read prefab catalog file: %w"
	ErrMsgParseConfigFailed    = "failed to parse prefab catalog: %w"
)

// Format strings used with fmt.Errorf; the first verb is always the sentinel
const (
	ErrFmtConfigNil           = "%w: config is nil"
	ErrFmtNoPrefabs           = "%w: no prefabs defined"
	ErrFmtPrefabFields        = "%w: prefab at index %d: %s"
	ErrFmtDuplicateID         = "%w: duplicate prefab id '%s'"
	ErrFmtDuplicateSlot       = "%w: prefab '%s' defines slot '%s' twice"
	ErrFmtNoEquipmentSlots    = "%w: prefab '%s' is equippable but names no equipment slots"
	ErrFmtUnknownNextStage    = "%w: prefab '%s' has unknown next_stage '%s'"
	ErrFmtNextStageWithoutUse = "%w: prefab '%s' has next_stage but no limited uses"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogLoaded = "Prefab catalog loaded"
)
