package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/AlterEgo_Go/internal/logger"
	"github.com/osse101/AlterEgo_Go/internal/narration"
)

var _ narration.Sender = (*Bot)(nil)

// Send delivers one narration line. Rooms and spectators map to guild text channels
// by name; players get a DM. Lines for channels that do not exist, or for players
// without a member id, are skipped.
func (b *Bot) Send(ctx context.Context, to narration.Destination, text string) error {
	var channelID string
	switch to.Kind {
	case narration.KindLog:
		channelID = b.cfg.LogChannelID
	case narration.KindRoom:
		id, err := b.channelID(ctx, to.Name)
		if err != nil {
			return err
		}
		channelID = id
	case narration.KindSpectator:
		id, err := b.channelID(ctx, SpectatorChannelPrefix+to.Name)
		if err != nil {
			return err
		}
		channelID = id
	case narration.KindPlayer:
		if to.Member == "" {
			return nil
		}
		dm, err := b.Session.UserChannelCreate(to.Member, discordgo.WithContext(ctx))
		if err != nil {
			return fmt.Errorf(ErrFmtOpenDM, to.Member, err)
		}
		channelID = dm.ID
	default:
		logger.FromContext(ctx).Warn(LogMsgUnknownDestination, "kind", to.Kind)
		return nil
	}
	if channelID == "" {
		logger.FromContext(ctx).Debug(LogMsgChannelNotFound, "kind", to.Kind, "name", to.Name)
		return nil
	}
	if _, err := b.Session.ChannelMessageSend(channelID, text, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf(ErrFmtSend, channelID, err)
	}
	return nil
}

// channelID finds a guild text channel by name, refreshing the directory once on a miss.
// An empty id with a nil error means no such channel; misses are remembered until the
// guild's channels change.
func (b *Bot) channelID(ctx context.Context, name string) (string, error) {
	key := ChannelName(name)
	b.channelsMu.RLock()
	id, ok := b.channels[key]
	b.channelsMu.RUnlock()
	if ok {
		return id, nil
	}
	if err := b.refreshChannels(ctx); err != nil {
		return "", err
	}
	b.channelsMu.Lock()
	defer b.channelsMu.Unlock()
	if _, ok := b.channels[key]; !ok {
		b.channels[key] = ""
	}
	return b.channels[key], nil
}

// resetChannels forgets the directory so the next lookup lists the guild again.
func (b *Bot) resetChannels() {
	b.channelsMu.Lock()
	b.channels = map[string]string{}
	b.channelsMu.Unlock()
}

func (b *Bot) refreshChannels(ctx context.Context) error {
	channels, err := b.Session.GuildChannels(b.cfg.GuildID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf(ErrFmtListChannels, b.cfg.GuildID, err)
	}
	dir := make(map[string]string, len(channels))
	for _, c := range channels {
		if c.Type == discordgo.ChannelTypeGuildText {
			dir[c.Name] = c.ID
		}
	}
	b.channelsMu.Lock()
	b.channels = dir
	b.channelsMu.Unlock()
	logger.FromContext(ctx).Debug(LogMsgChannelsRefreshed, "count", len(dir))
	return nil
}

// ChannelName is the Discord form of a room or spectator channel name.
func ChannelName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}
