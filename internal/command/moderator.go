package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/AlterEgo_Go/internal/domain"
	"github.com/osse101/AlterEgo_Go/internal/finder"
	"github.com/osse101/AlterEgo_Go/internal/inventory"
)

// instantiate: [QUANTITY] PREFAB in|on|into|to DESTINATION
func (d *Dispatcher) instantiate(ctx context.Context, args []string) (string, error) {
	qty, args, err := quantity(args)
	if err != nil {
		return "", err
	}
	prefabWords, _, target, ok := finder.SplitPreposition(args, wordInto, wordIn, wordOn, wordTo)
	if !ok {
		return "", usage(MsgUsageInstantiate)
	}
	prefab, err := finder.Resolve(d.prefabs.Candidates(), joined(prefabWords))
	if err != nil {
		return "", err
	}
	dest, slot, err := d.destination(target)
	if err != nil {
		return "", err
	}
	res, err := d.engine.Instantiate(ctx, prefab.Prefab, dest, slot, qty, "")
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

// destination reads where a moderator wants something created:
//
//	ROOM
//	[SLOT of] CONTAINER at ROOM
//	PLAYER's EQUIPMENT SLOT
//	[SLOT of] PLAYER's ITEM
func (d *Dispatcher) destination(words []string) (inventory.Container, string, error) {
	if room := d.reg.Room(joined(words)); room != nil {
		return room, "", nil
	}
	if before, _, at, ok := finder.SplitPreposition(words, wordAt); ok {
		room := d.reg.Room(joined(at))
		if room == nil {
			return nil, "", domain.NewGameError(domain.ErrNotFound, MsgRoomNotFoundFmt, joined(at))
		}
		c, slot, err := resolveContainer(roomPlaces(d.reg, room), before)
		if err != nil {
			return nil, "", err
		}
		return c, slot, nil
	}
	if owner, rest, err := finder.ResolvePrefix(d.reg.Players(), words); err == nil && owner.Slot(joined(rest)) != nil {
		return owner, owner.Slot(joined(rest)).Name, nil
	}
	_, container, slot, err := d.playerContainer(d.reg.Players(), words)
	if err != nil {
		return nil, "", err
	}
	if container == nil {
		return nil, "", usage(MsgUsageInstantiate)
	}
	return container, slot, nil
}

// destroy: [QUANTITY] ITEM at ROOM | [QUANTITY] ITEM from PLAYER
// Without a quantity the whole stack goes.
func (d *Dispatcher) destroy(ctx context.Context, args []string) (string, error) {
	qty := 0
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			if n <= 0 {
				return "", domain.NewGameError(domain.ErrInvalidInput, inventory.MsgInvalidQuantity)
			}
			qty, args = n, args[1:]
		}
	}
	target, err := d.destroyTarget(args)
	if err != nil {
		return "", err
	}
	if qty == 0 {
		qty = target.Base().Quantity
	}
	res, err := d.engine.Destroy(ctx, target, qty)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (d *Dispatcher) destroyTarget(args []string) (inventory.Entity, error) {
	itemWords, prep, place, ok := finder.SplitPreposition(args, wordAt, wordFrom)
	if !ok {
		return nil, usage(MsgUsageDestroy)
	}
	if prep == wordAt {
		room := d.reg.Room(joined(place))
		if room == nil {
			return nil, domain.NewGameError(domain.ErrNotFound, MsgRoomNotFoundFmt, joined(place))
		}
		it, err := finder.Resolve(finder.RoomItems(d.reg, room), joined(itemWords))
		if err != nil {
			return nil, err
		}
		return it, nil
	}
	owner, err := finder.Resolve(d.reg.Players(), joined(place))
	if err != nil {
		return nil, err
	}
	it, err := finder.Resolve(finder.Carried(owner), joined(itemWords))
	if err != nil {
		return nil, domain.NewGameError(domain.ErrNotFound, MsgPlayerNotCarryingFmt, owner.DisplayName(), joined(itemWords))
	}
	return it, nil
}

// inventory PLAYER: the full inventory with identifiers.
func (d *Dispatcher) inspect(_ context.Context, args []string) (string, error) {
	p, err := finder.Resolve(d.reg.Players(), joined(args))
	if err != nil {
		return "", err
	}
	return d.engine.DescribeInventory(p, fmt.Sprintf(MsgPossessiveFmt, p.DisplayName()), true), nil
}

// force PLAYER COMMAND: run a command on a player's behalf, even an unconscious one.
// Log lines for the result are marked as forced.
func (d *Dispatcher) force(ctx context.Context, args []string) (string, error) {
	p, rest, err := finder.ResolvePrefix(d.reg.Players(), args)
	if err != nil {
		return "", err
	}
	if len(rest) == 0 {
		return "", usage(MsgUsageForce)
	}
	msg, err := d.runPlayer(inventory.WithForced(ctx), p, strings.ToLower(rest[0]), rest[1:])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(MsgForcedFmt, p.Name, msg), nil
}
