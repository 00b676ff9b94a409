package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealth(t *testing.T) {
	bot, _ := newTestBot(t, &fakeCommands{})

	health := bot.Health()
	assert.Equal(t, "degraded", health.Status)
	assert.False(t, health.Connected)
	assert.Zero(t, health.CommandsReceived)
	assert.True(t, health.LastCommandTime.IsZero())

	bot.recordCommand()
	bot.recordCommand()
	bot.Session.DataReady = true

	health = bot.Health()
	assert.Equal(t, "healthy", health.Status)
	assert.True(t, health.Connected)
	assert.Equal(t, int64(2), health.CommandsReceived)
	assert.False(t, health.LastCommandTime.IsZero())
}
