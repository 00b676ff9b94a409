package crafting

// ==================== Configuration File Names ====================

// ConfigFileName is the name of the recipe file inside the data directory
const ConfigFileName = "recipes.json"

// ==================== Error Messages ====================

// Recipe loader error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read recipe file: %w"
	ErrMsgParseConfigFailed    = "failed to parse recipe file: %w"
)

// Format strings used with fmt.Errorf; the first verb is always the sentinel
const (
	ErrFmtConfigNil            = "%w: config is nil"
	ErrFmtRecipeFields         = "%w: recipe at index %d: %s"
	ErrFmtUnknownPrefab        = "%w: recipe at index %d references unknown prefab '%s'"
	ErrFmtDuplicatePair        = "%w: more than one recipe combines %s and %s"
	ErrFmtUncraftableProducts  = "%w: uncraftable recipe for %s and %s must have exactly one product"
	ErrFmtDuplicateUncraftable = "%w: more than one uncraftable recipe produces %s"
)

// ==================== Log Messages ====================

const (
	LogMsgRecipesLoaded = "Recipe book loaded"
)
