package narration

// ==================== Priorities ====================

// Priority orders outbound messages; higher values are delivered first.
type Priority int

const (
	PrioritySpectator Priority = iota
	PriorityRoom
	PriorityNotification
	PriorityMechanic
)

// String returns the metric label for p.
func (p Priority) String() string {
	switch p {
	case PriorityMechanic:
		return "mechanic"
	case PriorityNotification:
		return "notification"
	case PriorityRoom:
		return "room"
	default:
		return "spectator"
	}
}

// ==================== Destinations ====================

// Kind is the sort of channel a message is addressed to.
type Kind string

const (
	KindRoom      Kind = "room"
	KindPlayer    Kind = "player"
	KindSpectator Kind = "spectator"
	KindLog       Kind = "log"
)

// ==================== Log Messages ====================

const (
	LogMsgNarrationDropped = "Narration dropped, dispatcher stopped"
	LogMsgNarrationSent    = "Narration"
)

// ==================== Error Formats ====================

const ErrFmtSendFailed = "send %s to %s %q: %w"
