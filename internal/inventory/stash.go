package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/AlterEgo_Go/internal/domain"
	"github.com/osse101/AlterEgo_Go/internal/logger"
)

// Stash moves the item in one of p's hands into a slot of another item p is carrying.
func (e *Engine) Stash(ctx context.Context, p *Player, item, container *HeldItem, slotName string) (*Result, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgStashCalled, "player", p.Name, "item", item.Label(), "container", container.Label(), "slot", slotName)

	slot, err := stashTarget(p, item, container, slotName)
	if err != nil {
		return nil, e.reject(ctx, "stash", err)
	}

	e.detach(item)
	placed := e.attach(slot, item)

	e.narrate(p, item.Prefab.Discreet, fmt.Sprintf(NarrStashesFmt, p.DisplayName(), item.Phrase(), container.Prefab.PrepositionOrDefault(), p.Pronouns.Determiner, container.Name()))
	e.log(ctx, fmt.Sprintf(LogLineStashedFmt, p.Name, item.Label(), slot.Name, container.Label()))
	return &Result{Message: fmt.Sprintf(MsgYouStashFmt, item.Phrase()), Item: placed}, nil
}

func stashTarget(p *Player, item, container *HeldItem, slotName string) (*Slot, error) {
	if err := inHand(p, item); err != nil {
		return nil, err
	}
	if err := owned(p, container); err != nil {
		return nil, err
	}
	if container == item || within(container, item) {
		return nil, domain.NewGameError(domain.ErrInvalidState, MsgStashIntoItselfFmt, item.Name(), container.Prefab.PrepositionOrDefault())
	}
	slot, err := containerSlot(container, slotName)
	if err != nil {
		return nil, err
	}
	if err := checkCapacity(container, slot, item.Prefab, item.Quantity, item.Name()); err != nil {
		return nil, err
	}
	return slot, nil
}

// Unstash pulls one unit of a nested item out of its container into one of p's hands.
func (e *Engine) Unstash(ctx context.Context, p *Player, item *HeldItem, hand string) (*Result, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUnstashCalled, "player", p.Name, "item", item.Label(), "hand", hand)

	if err := owned(p, item); err != nil {
		return nil, e.reject(ctx, "unstash", err)
	}
	container, nested := item.Parent().(*HeldItem)
	if !nested {
		return nil, e.reject(ctx, "unstash", domain.NewGameError(domain.ErrInvalidState, MsgNotStashedFmt, item.Name()))
	}
	handSlot, err := handFor(p, hand)
	if err != nil {
		return nil, e.reject(ctx, "unstash", err)
	}

	slotName := item.slot.Name
	unit := asHeld(e.takeUnits(item, 1), p)
	e.attach(handSlot, unit)

	e.narrate(p, unit.Prefab.Discreet, fmt.Sprintf(NarrUnstashesFmt, p.DisplayName(), unit.Phrase(), p.Pronouns.Determiner, container.Name()))
	e.log(ctx, fmt.Sprintf(LogLineUnstashedFmt, p.Name, unit.Label(), slotName, container.Label()))
	return &Result{Message: fmt.Sprintf(MsgYouUnstashFmt, unit.Phrase(), container.Name()), Item: unit}, nil
}
