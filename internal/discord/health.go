package discord

import (
	"time"
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string    `json:"status"`
	Uptime           string    `json:"uptime"`
	Connected        bool      `json:"connected"`
	CommandsReceived int64     `json:"commands_received"`
	LastCommandTime  time.Time `json:"last_command_time,omitempty"`
}

// Health reports the gateway connection and command counters.
func (b *Bot) Health() HealthStatus {
	connected := b.Session != nil && b.Session.DataReady

	status := "healthy"
	if !connected {
		status = "degraded"
	}

	health := HealthStatus{
		Status:           status,
		Uptime:           time.Since(b.started).Round(time.Second).String(),
		Connected:        connected,
		CommandsReceived: b.commandsReceived.Load(),
	}
	if last := b.lastCommand.Load(); last > 0 {
		health.LastCommandTime = time.Unix(0, last)
	}
	return health
}
