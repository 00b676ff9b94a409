package finder

// ==================== Messages ====================

const (
	MsgNotFoundFmt  = "Couldn't find \"%s\"."
	MsgNothingNamed = "You need to name something."
)

// ==================== Prepositions ====================

// DefaultPrepositions are the words that split a command into an item and a container.
var DefaultPrepositions = []string{"INTO", "IN", "ON", "FROM", "TO"}
