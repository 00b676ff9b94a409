package domain

// Equipment slot names with special meaning to the engine
const (
	SlotRightHand = "RIGHT HAND"
	SlotLeftHand  = "LEFT HAND"
)

// HandSlots lists the hands in the order free hands are chosen.
var HandSlots = []string{SlotRightHand, SlotLeftHand}

// IsHand reports whether the equipment slot name is one of the hands.
func IsHand(slot string) bool {
	return slot == SlotRightHand || slot == SlotLeftHand
}

// Container name prefixes used in persisted rows
const (
	ContainerPrefixFixture = "Object: "
	ContainerPrefixPuzzle  = "Puzzle: "
	ContainerPrefixItem    = "Item: "
)

// Player attributes recognised by the inventory engine
const (
	AttributeThief       = "thief"
	AttributeUnconscious = "unconscious"
	AttributeConcealed   = "concealed"
)

// Default dice bounds
const (
	DefaultDiceMin = 1
	DefaultDiceMax = 6
)

// UnlimitedUses marks prefabs whose instances never run out of uses.
const UnlimitedUses = -1
