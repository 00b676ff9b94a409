package handler

// Generic HTTP error messages for client responses.
// They do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgPlayerNotFound = "Player not found"
	ErrMsgInvalidIDsFlag = "ids must be true or false"
)

// Health messages
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthStatusDegraded    = "degraded"

	MsgRowStoreUnreachable = "row store connection failed"
	MsgDiscordDisconnected = "discord gateway disconnected"
)
