package discord

import (
	"context"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AlterEgo_Go/internal/narration"
)

func guildChannels() []*discordgo.Channel {
	return []*discordgo.Channel{
		{ID: "c-kitchen", Name: "kitchen", Type: discordgo.ChannelTypeGuildText},
		{ID: "c-hall", Name: "main-hall", Type: discordgo.ChannelTypeGuildText},
		{ID: "c-spectate", Name: "spectate-vivian", Type: discordgo.ChannelTypeGuildText},
		{ID: "c-voice", Name: "lounge", Type: discordgo.ChannelTypeGuildVoice},
	}
}

func TestSend(t *testing.T) {
	tests := []struct {
		name        string
		to          narration.Destination
		wantChannel string
	}{
		{"log", narration.Destination{Kind: narration.KindLog}, "log"},
		{"room", narration.Destination{Kind: narration.KindRoom, Name: "kitchen"}, "c-kitchen"},
		{"room with spaces", narration.Destination{Kind: narration.KindRoom, Name: "Main Hall"}, "c-hall"},
		{"spectator", narration.Destination{Kind: narration.KindSpectator, Name: "Vivian"}, "c-spectate"},
		{"player", narration.Destination{Kind: narration.KindPlayer, Name: "Vivian", Member: "1001"}, "dm-1001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bot, api := newTestBot(t, &fakeCommands{})
			api.channels = guildChannels()

			require.NoError(t, bot.Send(context.Background(), tt.to, "Vivian takes a HAMMER."))

			assert.Equal(t, map[string][]string{tt.wantChannel: {"Vivian takes a HAMMER."}}, api.sent())
		})
	}
}

func TestSend_Skipped(t *testing.T) {
	tests := []struct {
		name string
		to   narration.Destination
	}{
		{"missing room", narration.Destination{Kind: narration.KindRoom, Name: "attic"}},
		{"voice channel", narration.Destination{Kind: narration.KindRoom, Name: "lounge"}},
		{"player without member", narration.Destination{Kind: narration.KindPlayer, Name: "Amy"}},
		{"unknown kind", narration.Destination{Kind: "carrier pigeon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bot, api := newTestBot(t, &fakeCommands{})
			api.channels = guildChannels()

			require.NoError(t, bot.Send(context.Background(), tt.to, "hello"))
			assert.Empty(t, api.sent())
		})
	}
}

func TestSend_ChannelDirectoryIsCached(t *testing.T) {
	bot, api := newTestBot(t, &fakeCommands{})
	api.channels = guildChannels()
	ctx := context.Background()

	room := narration.Destination{Kind: narration.KindRoom, Name: "kitchen"}
	attic := narration.Destination{Kind: narration.KindRoom, Name: "attic"}
	require.NoError(t, bot.Send(ctx, room, "one"))
	require.NoError(t, bot.Send(ctx, room, "two"))
	require.NoError(t, bot.Send(ctx, attic, "three"))
	require.NoError(t, bot.Send(ctx, attic, "four"))
	assert.Equal(t, 2, api.count(http.MethodGet, "/guilds/guild/channels"))

	bot.resetChannels()
	require.NoError(t, bot.Send(ctx, room, "five"))
	assert.Equal(t, 3, api.count(http.MethodGet, "/guilds/guild/channels"))
	assert.Equal(t, []string{"one", "two", "five"}, api.sent()["c-kitchen"])
}

func TestSend_Errors(t *testing.T) {
	bot, api := newTestBot(t, &fakeCommands{})
	api.fail = true
	ctx := context.Background()

	assert.Error(t, bot.Send(ctx, narration.Destination{Kind: narration.KindRoom, Name: "kitchen"}, "x"))
	assert.Error(t, bot.Send(ctx, narration.Destination{Kind: narration.KindPlayer, Member: "1001"}, "x"))
	assert.Error(t, bot.Send(ctx, narration.Destination{Kind: narration.KindLog}, "x"))
}

func TestChannelName(t *testing.T) {
	assert.Equal(t, "main-hall", ChannelName("Main Hall"))
	assert.Equal(t, "spectate-vivian", ChannelName("spectate-Vivian"))
	assert.Equal(t, "kitchen", ChannelName("  kitchen "))
}
