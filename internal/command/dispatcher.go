// Package command turns chat text into inventory engine operations.
//
// A Dispatcher owns the engine. Every command, from players and moderators alike,
// runs under one process-wide lock so each mutation and its row deltas complete
// before the next command is parsed.
package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/osse101/AlterEgo_Go/internal/domain"
	"github.com/osse101/AlterEgo_Go/internal/inventory"
	"github.com/osse101/AlterEgo_Go/internal/item"
	"github.com/osse101/AlterEgo_Go/internal/logger"
	"github.com/osse101/AlterEgo_Go/internal/metrics"
)

// Prefabs is the catalog view moderators instantiate from.
type Prefabs interface {
	Get(id string) (*domain.Prefab, bool)
	Candidates() []item.Named
}

type playerVerb func(ctx context.Context, p *inventory.Player, args []string) (*inventory.Result, error)

type moderatorVerb func(ctx context.Context, args []string) (string, error)

// Dispatcher parses commands and runs them against the engine one at a time.
type Dispatcher struct {
	mu      sync.Mutex
	engine  *inventory.Engine
	reg     *inventory.Registry
	prefabs Prefabs

	playerVerbs    map[string]playerVerb
	moderatorVerbs map[string]moderatorVerb
}

// NewDispatcher wires the verb tables to engine.
func NewDispatcher(engine *inventory.Engine, prefabs Prefabs) *Dispatcher {
	d := &Dispatcher{engine: engine, reg: engine.Registry(), prefabs: prefabs}
	d.playerVerbs = map[string]playerVerb{
		VerbTake:      d.take,
		VerbDrop:      d.drop,
		VerbEquip:     d.equip,
		VerbUnequip:   d.unequip,
		VerbStash:     d.stash,
		VerbUnstash:   d.unstash,
		VerbGive:      d.give,
		VerbSteal:     d.steal,
		VerbCraft:     d.craft,
		VerbUncraft:   d.uncraft,
		VerbInventory: d.showInventory,
		VerbLook:      d.look,
		VerbDress:     d.dress,
		VerbUndress:   d.undress,
	}
	d.moderatorVerbs = map[string]moderatorVerb{
		VerbInstantiate: d.instantiate,
		VerbDestroy:     d.destroy,
		VerbInventory:   d.inspect,
		VerbForce:       d.force,
	}
	return d
}

// Player returns the player bound to a chat member id.
func (d *Dispatcher) Player(memberID string) *inventory.Player {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.reg.PlayerByMember(memberID)
}

// PlayerNamed returns the player with the given name.
func (d *Dispatcher) PlayerNamed(name string) *inventory.Player {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.reg.Player(name)
}

// Execute runs a player's command and returns the reply for them. Rejections come back
// as a game error whose player-facing text is also the reply.
func (d *Dispatcher) Execute(ctx context.Context, p *inventory.Player, text string) (string, error) {
	ctx = withRequestID(ctx)
	if p == nil {
		return MsgNotAPlayer, domain.NewGameError(domain.ErrNotFound, MsgNotAPlayer)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	verb, args := split(text)
	logger.FromContext(ctx).Info(LogMsgCommandReceived, "player", p.Name, "verb", verb, "args", strings.Join(args, " "))
	return d.runPlayer(ctx, p, verb, args)
}

// ExecuteModerator runs a moderator command. Moderators may also inspect any
// player's inventory or force a player to run a command.
func (d *Dispatcher) ExecuteModerator(ctx context.Context, text string) (string, error) {
	ctx = withRequestID(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()

	verb, args := split(text)
	logger.FromContext(ctx).Info(LogMsgCommandReceived, "moderator", true, "verb", verb, "args", strings.Join(args, " "))

	run, ok := d.moderatorVerbs[verb]
	if !ok {
		return reply("", d.finish(ctx, verb, unknownVerb(verb)))
	}
	msg, err := run(ctx, args)
	return reply(msg, d.finish(ctx, verb, err))
}

// Describe renders a player's inventory for read-only callers.
func (d *Dispatcher) Describe(p *inventory.Player, useIDs bool) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.engine.DescribeInventory(p, fmt.Sprintf(MsgPossessiveFmt, p.DisplayName()), useIDs)
}

func (d *Dispatcher) runPlayer(ctx context.Context, p *inventory.Player, verb string, args []string) (string, error) {
	canonical, ok := aliases[verb]
	if !ok {
		return reply("", d.finish(ctx, verb, unknownVerb(verb)))
	}
	if p.HasAttribute(domain.AttributeUnconscious) && !inventory.IsForced(ctx) {
		return reply("", d.finish(ctx, canonical, domain.NewGameError(domain.ErrPrerequisiteMissing, MsgUnconscious)))
	}
	res, err := d.playerVerbs[canonical](ctx, p, args)
	if err != nil {
		return reply("", d.finish(ctx, canonical, err))
	}
	return reply(res.Message, d.finish(ctx, canonical, nil))
}

// finish records the outcome of a command and hands err back.
func (d *Dispatcher) finish(ctx context.Context, verb string, err error) error {
	log := logger.FromContext(ctx)
	var ge *domain.GameError
	switch {
	case err == nil:
		log.Info(LogMsgCommandCompleted, "verb", verb)
	case errors.As(err, &ge):
		log.Info(LogMsgCommandRejected, "verb", verb, "reason", ge.Message)
	default:
		log.Error(LogMsgCommandFailed, "verb", verb, "error", err)
	}
	if d.playerVerbs[verb] != nil || d.moderatorVerbs[verb] != nil {
		metrics.RecordOperation(verb, err)
	}
	return err
}

func reply(msg string, err error) (string, error) {
	if err != nil {
		return domain.PlayerMessage(err), err
	}
	return msg, nil
}

func unknownVerb(verb string) error {
	if verb == "" {
		return domain.NewGameError(domain.ErrInvalidInput, MsgEmptyCommand)
	}
	return domain.NewGameError(domain.ErrInvalidInput, MsgUnknownCommandFmt, verb)
}

func withRequestID(ctx context.Context) context.Context {
	if _, ok := logger.RequestIDFromContext(ctx); ok {
		return ctx
	}
	return logger.WithRequestID(ctx, logger.GenerateRequestID())
}

// split returns the lower-cased verb and the remaining words.
func split(text string) (string, []string) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return "", nil
	}
	return strings.ToLower(words[0]), words[1:]
}
