package discord

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/AlterEgo_Go/internal/logger"
)

func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	b.handleMessage(context.Background(), s, m.Message)
}

// handleMessage runs one prefixed command. Moderator commands are read in the
// log channel from members holding the moderator role and answered there; player
// commands are answered by DM and removed from guild channels.
func (b *Bot) handleMessage(ctx context.Context, s *discordgo.Session, m *discordgo.Message) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	text, ok := strings.CutPrefix(m.Content, b.cfg.Prefix)
	if !ok || strings.TrimSpace(text) == "" {
		return
	}
	b.recordCommand()

	ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())
	log := logger.FromContext(ctx)
	log.Info(LogMsgCommandReceived, "author", m.Author.ID, "channel", m.ChannelID)

	if b.isModeratorCommand(m) {
		reply, _ := b.commands.ExecuteModerator(ctx, text)
		b.send(ctx, log, m.ChannelID, reply)
		return
	}

	reply := MsgNotPlaying
	if p := b.player(m.Author.ID); p != nil {
		reply, _ = b.commands.Execute(ctx, p, text)
	}
	if m.GuildID != "" {
		if err := s.ChannelMessageDelete(m.ChannelID, m.ID, discordgo.WithContext(ctx)); err != nil {
			log.Warn(LogMsgDeleteFailed, "error", err)
		}
	}
	dm, err := s.UserChannelCreate(m.Author.ID, discordgo.WithContext(ctx))
	if err != nil {
		log.Warn(LogMsgReplyFailed, "error", err)
		return
	}
	b.send(ctx, log, dm.ID, reply)
}

func (b *Bot) isModeratorCommand(m *discordgo.Message) bool {
	if m.ChannelID != b.cfg.LogChannelID || m.Member == nil {
		return false
	}
	return b.cfg.ModeratorRole == "" || slices.Contains(m.Member.Roles, b.cfg.ModeratorRole)
}

func (b *Bot) send(ctx context.Context, log *slog.Logger, channelID, text string) {
	if _, err := b.Session.ChannelMessageSend(channelID, text, discordgo.WithContext(ctx)); err != nil {
		log.Warn(LogMsgReplyFailed, "channel", channelID, "error", err)
	}
}

func (b *Bot) recordCommand() {
	b.commandsReceived.Add(1)
	b.lastCommand.Store(time.Now().UnixNano())
}
