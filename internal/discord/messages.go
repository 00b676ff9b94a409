package discord

import "time"

// ==================== Channels ====================

const (
	// SpectatorChannelPrefix names the channel that mirrors what one player sees.
	SpectatorChannelPrefix = "spectate-"
	// DefaultPrefix starts every chat command.
	DefaultPrefix = "."
	// DefaultMemberCacheSize bounds the member id to player cache.
	DefaultMemberCacheSize = 256
	// DefaultMemberCacheTTL expires cached member lookups.
	DefaultMemberCacheTTL = 10 * time.Minute
)

// ==================== Friendly Replies ====================

const (
	MsgNotPlaying = "👤 **Not Playing**\nYou don't have a character in this game."
)

// ==================== Log Messages ====================

const (
	LogMsgBotReady           = "Bot is ready"
	LogMsgBotRunning         = "Discord bot is now running"
	LogMsgCommandReceived    = "Discord command received"
	LogMsgReplyFailed        = "Failed to reply to command"
	LogMsgDeleteFailed       = "Failed to delete command message"
	LogMsgChannelNotFound    = "Channel not found, message skipped"
	LogMsgChannelsRefreshed  = "Guild channels refreshed"
	LogMsgUnknownDestination = "Unknown destination kind"
)

// ==================== Error Formats ====================

const (
	ErrFmtCreateSession = "error creating Discord session: %w"
	ErrFmtOpen          = "error opening connection: %w"
	ErrFmtListChannels  = "list channels of guild %s: %w"
	ErrFmtOpenDM        = "open DM with member %s: %w"
	ErrFmtSend          = "send to channel %s: %w"
)
