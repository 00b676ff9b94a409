// Package bootstrap assembles the game from configuration: data files, the
// world registry, the engine, persistence, narration and the chat transport.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/AlterEgo_Go/internal/command"
	"github.com/osse101/AlterEgo_Go/internal/config"
	"github.com/osse101/AlterEgo_Go/internal/crafting"
	"github.com/osse101/AlterEgo_Go/internal/discord"
	"github.com/osse101/AlterEgo_Go/internal/handler"
	"github.com/osse101/AlterEgo_Go/internal/inventory"
	"github.com/osse101/AlterEgo_Go/internal/item"
	"github.com/osse101/AlterEgo_Go/internal/metrics"
	"github.com/osse101/AlterEgo_Go/internal/narration"
	"github.com/osse101/AlterEgo_Go/internal/repository"
	"github.com/osse101/AlterEgo_Go/internal/rowsync"
	"github.com/osse101/AlterEgo_Go/internal/worker"
	"github.com/osse101/AlterEgo_Go/internal/world"
)

// Game holds every long-lived component.
type Game struct {
	Catalog   *item.Catalog
	Recipes   *crafting.Book
	Registry  *inventory.Registry
	Engine    *inventory.Engine
	Commands  *command.Dispatcher
	Narration *narration.Dispatcher
	Syncer    *rowsync.Syncer
	Store     repository.RowStore
	DB        *pgxpool.Pool
	// Bot is nil when no Discord token is configured.
	Bot *discord.Bot

	narrationPool *worker.Pool
}

// Build loads the data files, seeds the world and mirrors it into the row store.
// Nothing runs until Start.
func Build(ctx context.Context, cfg *config.Config) (*Game, error) {
	catalog, err := item.LoadCatalog(ctx, cfg.PrefabsPath())
	if err != nil {
		return nil, fmt.Errorf(ErrFmtLoadPrefabs, err)
	}
	book, err := crafting.LoadBook(ctx, cfg.RecipesPath(), catalog)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtLoadRecipes, err)
	}
	doc, err := world.LoadFile(cfg.WorldPath())
	if err != nil {
		return nil, fmt.Errorf(ErrFmtLoadWorld, err)
	}
	reg, err := world.Build(ctx, doc, catalog, cfg.RowOffset)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtLoadWorld, err)
	}

	g := &Game{Catalog: catalog, Recipes: book, Registry: reg}

	// One worker keeps narration in priority order.
	g.narrationPool = worker.NewPool(NarrationWorkers, cfg.QueueSize, worker.WithContext(ctx))
	g.Narration = narration.NewDispatcher(narration.SenderFunc(g.send), g.narrationPool)

	g.Engine = inventory.NewEngine(reg, book, g.Narration,
		inventory.WithSettings(inventory.Settings{DiceMin: cfg.DiceMin, DiceMax: cfg.DiceMax}))
	g.Commands = command.NewDispatcher(g.Engine, catalog)

	if cfg.DiscordEnabled() {
		g.Bot, err = discord.New(discord.Config{
			Token:           cfg.DiscordToken,
			GuildID:         cfg.DiscordGuildID,
			LogChannelID:    cfg.DiscordLogChannelID,
			ModeratorRole:   cfg.DiscordModeratorRole,
			Prefix:          cfg.DiscordPrefix,
			MemberCacheSize: cfg.MemberCacheSize,
			MemberCacheTTL:  cfg.MemberCacheTTL,
		}, g.Commands)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtCreateBot, err)
		}
	} else {
		slog.Info(LogMsgDiscordDisabled)
	}

	g.Store, g.DB, err = OpenRowStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	g.Syncer = rowsync.New(ctx, g.Store, g.Narration, cfg.QueueSize)
	if err := g.Syncer.Snapshot(ctx, reg.World, reg.Held); err != nil {
		_ = g.Store.Close()
		return nil, fmt.Errorf(ErrFmtSnapshot, err)
	}
	reg.SetSink(g.Syncer)

	metrics.LiveItems.Set(float64(reg.Len()))
	slog.Info(LogMsgWorldReady,
		"prefabs", catalog.Len(),
		"recipes", book.Len(),
		"rooms", len(reg.Rooms()),
		"players", len(reg.Players()),
		"items", reg.Len())
	return g, nil
}

// send routes narration to Discord, or to the process log without a bot.
func (g *Game) send(ctx context.Context, to narration.Destination, text string) error {
	if g.Bot == nil {
		return narration.LogSender{}.Send(ctx, to, text)
	}
	return g.Bot.Send(ctx, to, text)
}

// Start begins persistence and narration delivery and connects the bot.
func (g *Game) Start() error {
	g.Syncer.Start()
	g.narrationPool.Start()
	if g.Bot != nil {
		if err := g.Bot.Start(); err != nil {
			return fmt.Errorf(ErrFmtStartBot, err)
		}
	}
	return nil
}

// Readiness lists what /readyz should probe.
func (g *Game) Readiness() handler.ReadinessChecks {
	checks := handler.ReadinessChecks{RowDeltas: g.Syncer, Narrations: g.Narration}
	if g.DB != nil {
		checks.DB = g.DB
	}
	if g.Bot != nil {
		checks.Bot = g.Bot
	}
	return checks
}
