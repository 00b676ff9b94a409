package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Taxonomy
	ErrMsgNotFound            = "not found"
	ErrMsgCapacityExceeded    = "capacity exceeded"
	ErrMsgInvalidState        = "invalid state"
	ErrMsgPrerequisiteMissing = "prerequisite missing"

	// Loading errors
	ErrMsgInvalidPrefab = "invalid prefab"
	ErrMsgInvalidRecipe = "invalid recipe"
	ErrMsgInvalidWorld  = "invalid world"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Persistence errors
	ErrMsgRowStoreUnavailable = "row store unavailable"
)

// Common domain errors
// Every failure returned by the inventory engine wraps exactly one of the first four.
// Use errors.Is at the command and HTTP boundaries.
var (
	// ErrNotFound means an item, slot, recipe, player or room could not be resolved from input
	ErrNotFound = errors.New(ErrMsgNotFound)
	// ErrCapacityExceeded means an insertion would overflow a slot or a player's carry weight
	ErrCapacityExceeded = errors.New(ErrMsgCapacityExceeded)
	// ErrInvalidState means the request contradicts the current container graph
	ErrInvalidState = errors.New(ErrMsgInvalidState)
	// ErrPrerequisiteMissing means a precondition outside the target is unmet (no free hand, not co-located)
	ErrPrerequisiteMissing = errors.New(ErrMsgPrerequisiteMissing)

	ErrInvalidPrefab = errors.New(ErrMsgInvalidPrefab)
	ErrInvalidRecipe = errors.New(ErrMsgInvalidRecipe)
	ErrInvalidWorld  = errors.New(ErrMsgInvalidWorld)
	ErrInvalidInput  = errors.New(ErrMsgInvalidInput)

	ErrRowStoreUnavailable = errors.New(ErrMsgRowStoreUnavailable)
)

// GameError is a recoverable failure with a message meant for the player who issued the command.
type GameError struct {
	Kind    error
	Message string
}

// NewGameError builds a GameError of the given kind with a formatted player-facing message.
func NewGameError(kind error, format string, args ...any) *GameError {
	return &GameError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *GameError) Error() string {
	return e.Message
}

func (e *GameError) Unwrap() error {
	return e.Kind
}

// PlayerMessage returns the player-facing text of err, falling back to a generic reply
// for errors that did not originate in the game rules.
func PlayerMessage(err error) string {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge.Message
	}
	return "Something went wrong. A moderator has been notified."
}
