package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/AlterEgo_Go/internal/domain"
	"github.com/osse101/AlterEgo_Go/internal/finder"
	"github.com/osse101/AlterEgo_Go/internal/inventory"
)

// take: ITEM [from [SLOT of] CONTAINER]
func (d *Dispatcher) take(ctx context.Context, p *inventory.Player, args []string) (*inventory.Result, error) {
	if p.Room == nil {
		return nil, usage(MsgNoRoom)
	}
	itemWords, _, from, ok := finder.SplitPreposition(args, wordFrom)
	if !ok {
		it, err := resolveReachable(p, finder.RoomItems(d.reg, p.Room), joined(args))
		if err != nil {
			return nil, err
		}
		return d.engine.Take(ctx, p, it, "")
	}
	container, slot, err := resolveContainer(roomPlaces(d.reg, p.Room), from)
	if err != nil {
		return nil, err
	}
	it, err := resolveReachable(p, contents[*inventory.WorldItem](container, slot), joined(itemWords))
	if err != nil {
		return nil, err
	}
	return d.engine.Take(ctx, p, it, "")
}

// drop: ITEM [in|on|into [SLOT of] CONTAINER]
func (d *Dispatcher) drop(ctx context.Context, p *inventory.Player, args []string) (*inventory.Result, error) {
	if p.Room == nil {
		return nil, usage(MsgNoRoom)
	}
	itemWords, _, into, ok := finder.SplitPreposition(args, wordInto, wordIn, wordOn)
	it, err := finder.Resolve(finder.Hands(p), joined(itemWords))
	if err != nil {
		return nil, err
	}
	if !ok {
		target := p.Room.DropTarget()
		if target == nil {
			return nil, domain.NewGameError(domain.ErrInvalidState, MsgCannotDropHere)
		}
		return d.engine.Drop(ctx, p, it, target, "")
	}
	container, slot, err := resolveContainer(roomPlaces(d.reg, p.Room), into)
	if err != nil {
		return nil, err
	}
	return d.engine.Drop(ctx, p, it, container, slot)
}

// dress: [SLOT of] CONTAINER
func (d *Dispatcher) dress(ctx context.Context, p *inventory.Player, args []string) (*inventory.Result, error) {
	if len(args) == 0 {
		return nil, usage(MsgUsageDress)
	}
	if p.Room == nil {
		return nil, usage(MsgNoRoom)
	}
	container, slot, err := resolveContainer(roomPlaces(d.reg, p.Room), args)
	if err != nil {
		return nil, err
	}
	return d.engine.Dress(ctx, p, container, slot)
}

// undress: [[in|into|on] [SLOT of] CONTAINER]
func (d *Dispatcher) undress(ctx context.Context, p *inventory.Player, args []string) (*inventory.Result, error) {
	if p.Room == nil {
		return nil, usage(MsgNoRoom)
	}
	if len(args) > 0 {
		switch strings.ToUpper(args[0]) {
		case wordIn, wordInto, wordOn:
			args = args[1:]
		}
	}
	if len(args) == 0 {
		target := p.Room.DropTarget()
		if target == nil {
			return nil, domain.NewGameError(domain.ErrInvalidState, MsgCannotDropHere)
		}
		return d.engine.Undress(ctx, p, target, "")
	}
	container, slot, err := resolveContainer(roomPlaces(d.reg, p.Room), args)
	if err != nil {
		return nil, err
	}
	return d.engine.Undress(ctx, p, container, slot)
}

// equip: ITEM [to|on SLOT]
func (d *Dispatcher) equip(ctx context.Context, p *inventory.Player, args []string) (*inventory.Result, error) {
	itemWords, _, slotWords, _ := finder.SplitPreposition(args, wordTo, wordOn)
	it, err := finder.Resolve(finder.Hands(p), joined(itemWords))
	if err != nil {
		return nil, err
	}
	return d.engine.Equip(ctx, p, it, strings.ToUpper(joined(slotWords)))
}

// unequip: ITEM | SLOT
func (d *Dispatcher) unequip(ctx context.Context, p *inventory.Player, args []string) (*inventory.Result, error) {
	text := joined(args)
	it, err := finder.Resolve(finder.Equipped(p), text)
	if err == nil {
		return d.engine.Unequip(ctx, p, it.EquipmentSlot().Name, "")
	}
	if p.Slot(text) != nil {
		return d.engine.Unequip(ctx, p, text, "")
	}
	return nil, err
}

// stash: ITEM in|on|into [SLOT of] CONTAINER
func (d *Dispatcher) stash(ctx context.Context, p *inventory.Player, args []string) (*inventory.Result, error) {
	itemWords, _, into, ok := finder.SplitPreposition(args, wordInto, wordIn, wordOn)
	if !ok {
		return nil, usage(MsgUsageStash)
	}
	it, err := finder.Resolve(finder.Hands(p), joined(itemWords))
	if err != nil {
		return nil, err
	}
	container, slot, err := resolveContainer(without(finder.Carried(p), it), into)
	if err != nil {
		return nil, err
	}
	return d.engine.Stash(ctx, p, it, container, slot)
}

// unstash: ITEM [from [SLOT of] CONTAINER]
func (d *Dispatcher) unstash(ctx context.Context, p *inventory.Player, args []string) (*inventory.Result, error) {
	itemWords, _, from, ok := finder.SplitPreposition(args, wordFrom)
	if !ok {
		it, err := finder.Resolve(stashed(p), joined(args))
		if err != nil {
			return nil, err
		}
		return d.engine.Unstash(ctx, p, it, "")
	}
	container, slot, err := resolveContainer(finder.Carried(p), from)
	if err != nil {
		return nil, err
	}
	it, err := finder.Resolve(contents[*inventory.HeldItem](container, slot), joined(itemWords))
	if err != nil {
		return nil, err
	}
	return d.engine.Unstash(ctx, p, it, "")
}

// give: ITEM to PLAYER
func (d *Dispatcher) give(ctx context.Context, p *inventory.Player, args []string) (*inventory.Result, error) {
	itemWords, _, to, ok := finder.SplitPreposition(args, wordTo)
	if !ok {
		return nil, usage(MsgUsageGive)
	}
	it, err := finder.Resolve(finder.Hands(p), joined(itemWords))
	if err != nil {
		return nil, err
	}
	recipient, err := finder.Resolve(finder.Occupants(p), joined(to))
	if err != nil {
		return nil, err
	}
	return d.engine.Give(ctx, p, it, recipient)
}

// steal: [from] [SLOT of] PLAYER's CONTAINER
func (d *Dispatcher) steal(ctx context.Context, p *inventory.Player, args []string) (*inventory.Result, error) {
	if len(args) > 0 && strings.EqualFold(args[0], wordFrom) {
		args = args[1:]
	}
	victim, container, slot, err := d.playerContainer(finder.Occupants(p), args)
	if err != nil {
		return nil, err
	}
	if container == nil {
		return nil, usage(MsgUsageSteal)
	}
	return d.engine.Steal(ctx, p, "", victim, container, slot)
}

// craft: ITEM with|and ITEM
func (d *Dispatcher) craft(ctx context.Context, p *inventory.Player, args []string) (*inventory.Result, error) {
	first, _, second, ok := finder.SplitPreposition(args, wordWith, wordAnd)
	if !ok {
		return nil, usage(MsgUsageCraft)
	}
	hands := finder.Hands(p)
	a, err := finder.Resolve(hands, joined(first))
	if err != nil {
		return nil, err
	}
	b, err := finder.Resolve(without(hands, a), joined(second))
	if err != nil {
		if _, again := finder.Resolve(hands, joined(second)); again == nil {
			return nil, domain.NewGameError(domain.ErrInvalidState, inventory.MsgSameItemTwice)
		}
		return nil, err
	}
	return d.engine.Craft(ctx, p, a, b)
}

// uncraft: ITEM
func (d *Dispatcher) uncraft(ctx context.Context, p *inventory.Player, args []string) (*inventory.Result, error) {
	it, err := finder.Resolve(finder.Hands(p), joined(args))
	if err != nil {
		return nil, err
	}
	return d.engine.Uncraft(ctx, p, it)
}

func (d *Dispatcher) showInventory(_ context.Context, p *inventory.Player, _ []string) (*inventory.Result, error) {
	return &inventory.Result{Message: d.engine.DescribeInventory(p, MsgYourPossessive, false)}, nil
}

// look: PLAYER
func (d *Dispatcher) look(_ context.Context, p *inventory.Player, args []string) (*inventory.Result, error) {
	target, err := finder.Resolve(finder.Occupants(p), joined(args))
	if err != nil {
		return nil, err
	}
	worn, held := d.engine.DescribeAppearance(target)
	return &inventory.Result{Message: fmt.Sprintf(MsgLookFmt, target.DisplayName(), list(worn), list(held))}, nil
}

// playerContainer reads "[SLOT of] PLAYER's CONTAINER" against the given players.
// The container is nil when only a player was named.
func (d *Dispatcher) playerContainer(players []*inventory.Player, words []string) (*inventory.Player, *inventory.HeldItem, string, error) {
	slot := ""
	if before, _, after, ok := finder.SplitPreposition(words, wordOf); ok {
		slot, words = joined(before), after
	}
	owner, rest, err := finder.ResolvePrefix(players, words)
	if err != nil {
		return nil, nil, "", err
	}
	if len(rest) == 0 {
		return owner, nil, slot, nil
	}
	container, err := finder.Resolve(finder.Carried(owner), joined(rest))
	if err != nil {
		return nil, nil, "", domain.NewGameError(domain.ErrNotFound, MsgPlayerNotCarryingFmt, owner.DisplayName(), joined(rest))
	}
	return owner, container, slot, nil
}

func list(names []string) string {
	switch len(names) {
	case 0:
		return MsgLookNothing
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
