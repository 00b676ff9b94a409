package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/AlterEgo_Go/internal/logger"
)

// Take moves one unit of item, together with everything inside it, into one of p's hands.
// An empty hand picks the first free hand, RIGHT HAND first.
func (e *Engine) Take(ctx context.Context, p *Player, item *WorldItem, hand string) (*Result, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgTakeCalled, "player", p.Name, "item", item.Label(), "hand", hand)

	if err := reachable(p, item); err != nil {
		return nil, e.reject(ctx, "take", err)
	}
	slot, err := handFor(p, hand)
	if err != nil {
		return nil, e.reject(ctx, "take", err)
	}
	if err := checkCarry(p, unitWeight(item), item.Phrase()); err != nil {
		return nil, e.reject(ctx, "take", err)
	}

	from := item.Parent()
	held := asHeld(e.takeUnits(item, 1), p)
	e.attach(slot, held)

	e.narrate(p, held.Prefab.Discreet, fmt.Sprintf(NarrTakesFmt, p.DisplayName(), held.Phrase()))
	e.log(ctx, fmt.Sprintf(LogLineTookFmt, p.Name, held.Label(), from.DisplayName(), p.Room.Name))
	log.Info("Item taken", "player", p.Name, "item", held.Label(), "hand", slot.Name, "carry_weight", p.CarryWeight)

	return &Result{Message: fmt.Sprintf(MsgYouTakeFmt, held.Phrase()), Item: held}, nil
}

// Drop puts the item in one of p's hands into a room, fixture, puzzle or world item slot.
// An empty slot name means the container's first slot.
func (e *Engine) Drop(ctx context.Context, p *Player, item *HeldItem, dest Container, slotName string) (*Result, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDropCalled, "player", p.Name, "item", item.Label(), "container", dest.DisplayName(), "slot", slotName)

	if err := inHand(p, item); err != nil {
		return nil, e.reject(ctx, "drop", err)
	}
	slot, err := worldTarget(p, dest, slotName)
	if err != nil {
		return nil, e.reject(ctx, "drop", err)
	}
	if err := checkCapacity(dest, slot, item.Prefab, item.Quantity, item.Name()); err != nil {
		return nil, e.reject(ctx, "drop", err)
	}

	hand := item.slot.Name
	e.detach(item)
	placed := e.attach(slot, asWorld(item))

	if _, onFloor := dest.(*Room); onFloor {
		e.narrate(p, item.Prefab.Discreet, fmt.Sprintf(NarrDropsFmt, p.DisplayName(), item.Phrase()))
	} else {
		e.narrate(p, item.Prefab.Discreet, fmt.Sprintf(NarrPutsFmt, p.DisplayName(), item.Phrase(), preposition(dest), dest.DisplayName()))
	}
	e.log(ctx, fmt.Sprintf(LogLineDroppedFmt, p.Name, item.Label(), slotLabel(dest, slot), p.Room.Name))
	log.Info("Item dropped", "player", p.Name, "item", item.Label(), "hand", hand, "container", dest.DisplayName())

	return &Result{Message: fmt.Sprintf(MsgYouDiscardFmt, item.Phrase()), Item: placed}, nil
}
