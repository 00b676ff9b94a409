// Package discord connects the game to a Discord guild: it reads prefixed chat
// commands, hands them to the command dispatcher and delivers narration to room,
// spectator and log channels.
package discord

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/AlterEgo_Go/internal/inventory"
)

// Commands is the part of the command dispatcher the bot drives.
type Commands interface {
	Player(memberID string) *inventory.Player
	Execute(ctx context.Context, p *inventory.Player, text string) (string, error)
	ExecuteModerator(ctx context.Context, text string) (string, error)
}

// Config holds the bot configuration
type Config struct {
	Token           string
	GuildID         string
	LogChannelID    string
	ModeratorRole   string
	Prefix          string
	MemberCacheSize int
	MemberCacheTTL  time.Duration
}

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	cfg      Config
	commands Commands
	members  *expirable.LRU[string, *inventory.Player]

	channelsMu sync.RWMutex
	channels   map[string]string

	started          time.Time
	commandsReceived atomic.Int64
	lastCommand      atomic.Int64
}

// New creates a new Discord bot
func New(cfg Config, commands Commands) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtCreateSession, err)
	}
	s.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentsMessageContent

	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}
	if cfg.MemberCacheSize <= 0 {
		cfg.MemberCacheSize = DefaultMemberCacheSize
	}
	if cfg.MemberCacheTTL <= 0 {
		cfg.MemberCacheTTL = DefaultMemberCacheTTL
	}

	return &Bot{
		Session:  s,
		cfg:      cfg,
		commands: commands,
		members:  expirable.NewLRU[string, *inventory.Player](cfg.MemberCacheSize, nil, cfg.MemberCacheTTL),
		channels: map[string]string{},
		started:  time.Now(),
	}, nil
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.messageCreate)
	b.Session.AddHandler(func(_ *discordgo.Session, _ *discordgo.ChannelCreate) { b.resetChannels() })
	b.Session.AddHandler(func(_ *discordgo.Session, _ *discordgo.ChannelUpdate) { b.resetChannels() })
	b.Session.AddHandler(func(_ *discordgo.Session, _ *discordgo.ChannelDelete) { b.resetChannels() })

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf(ErrFmtOpen, err)
	}

	slog.Info(LogMsgBotRunning, "guild", b.cfg.GuildID)
	return nil
}

// Stop closes the gateway connection
func (b *Bot) Stop() {
	if err := b.Session.Close(); err != nil {
		slog.Warn("Failed to close Discord session", "error", err)
	}
}

func (b *Bot) ready(s *discordgo.Session, _ *discordgo.Ready) {
	slog.Info(LogMsgBotReady, "user", s.State.User.Username)
}

// player looks a member up through the cache.
func (b *Bot) player(memberID string) *inventory.Player {
	if p, ok := b.members.Get(memberID); ok {
		return p
	}
	p := b.commands.Player(memberID)
	if p != nil {
		b.members.Add(memberID, p)
	}
	return p
}

// ForgetMember drops a cached member lookup, e.g. after a player is reassigned.
func (b *Bot) ForgetMember(memberID string) {
	b.members.Remove(memberID)
}
