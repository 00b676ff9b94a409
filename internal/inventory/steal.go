package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/AlterEgo_Go/internal/domain"
	"github.com/osse101/AlterEgo_Go/internal/logger"
)

// StealOutcome is how a steal attempt turned out.
type StealOutcome int

const (
	// StealNone means the operation was not a steal.
	StealNone StealOutcome = iota
	// StealFailed means the victim caught the thief; nothing moved.
	StealFailed
	// StealNoticed means the item moved and the victim knows.
	StealNoticed
	// StealSilent means the item moved unnoticed.
	StealSilent
)

func (o StealOutcome) String() string {
	switch o {
	case StealFailed:
		return "failed"
	case StealNoticed:
		return "noticed"
	case StealSilent:
		return "silent"
	}
	return "none"
}

// Steal tries to take one random unit out of a slot of something victim is carrying.
// The unit is picked with probability proportional to stack quantity. A failed attempt
// is a normal result, not an error; only rejected preconditions return errors.
// An empty slot name picks a random non-empty slot.
func (e *Engine) Steal(ctx context.Context, thief *Player, hand string, victim *Player, container *HeldItem, slotName string) (*Result, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgStealCalled, "thief", thief.Name, "victim", victim.Name, "container", container.Label(), "slot", slotName)

	handSlot, slot, err := e.stealTarget(thief, hand, victim, container, slotName)
	if err != nil {
		return nil, e.reject(ctx, "steal", err)
	}
	item := e.pickUnit(slot)
	if err := checkCarry(thief, unitWeight(item), item.Base().Phrase()); err != nil {
		return nil, e.reject(ctx, "steal", err)
	}

	failMax, partialMax := e.bands()
	roll := e.stealRoll(thief)
	if !item.Base().Prefab.Discreet && roll > partialMax {
		roll = partialMax
	}
	log.Info(LogMsgStealRolled, "thief", thief.Name, "roll", roll, "fail_max", failMax, "partial_max", partialMax)

	where, victimWhere := stealLocation(victim, container, slot)
	phrase := item.Base().Phrase()
	if roll <= failMax {
		e.narrator.Notify(victim, fmt.Sprintf(MsgStealFailedVictimFmt, thief.DisplayName(), phrase, victimWhere))
		e.log(ctx, fmt.Sprintf(LogLineStealFailedFmt, thief.Name, item.Base().Label(), victim.Name))
		msg := fmt.Sprintf(MsgStealFailedFmt, phrase, where, victim.Pronouns.Subject, victim.Pronouns.verb("notices", "notice"))
		return &Result{Message: msg, Outcome: StealFailed}, nil
	}

	unit := asHeld(e.takeUnits(item, 1), thief)
	e.attach(handSlot, unit)

	res := &Result{Item: unit}
	if roll > partialMax || victim.HasAttribute(domain.AttributeUnconscious) {
		res.Outcome = StealSilent
		res.Message = fmt.Sprintf(MsgStealSilentFmt, phrase, where, victim.Pronouns.Object)
	} else {
		res.Outcome = StealNoticed
		res.Message = fmt.Sprintf(MsgStealNoticedFmt, phrase, where, victim.Pronouns.Subject, victim.Pronouns.verb("seems", "seem"))
		e.narrator.Notify(victim, fmt.Sprintf(MsgStealNoticedVictimFmt, thief.DisplayName(), phrase, victimWhere))
	}
	e.narrate(thief, unit.Prefab.Discreet, fmt.Sprintf(NarrStealsFmt, thief.DisplayName(), phrase, where))
	e.log(ctx, fmt.Sprintf(LogLineStoleFmt, thief.Name, unit.Label(), victim.Name, container.Label()))
	return res, nil
}

func (e *Engine) stealTarget(thief *Player, hand string, victim *Player, container *HeldItem, slotName string) (*Slot, *Slot, error) {
	if thief == victim {
		return nil, nil, domain.NewGameError(domain.ErrInvalidState, MsgStealFromSelf)
	}
	if err := together(thief, victim); err != nil {
		return nil, nil, err
	}
	if err := owned(victim, container); err != nil {
		return nil, nil, domain.NewGameError(domain.ErrNotFound, MsgVictimNotCarryingFmt, victim.DisplayName(), container.Name())
	}
	handSlot, err := handFor(thief, hand)
	if err != nil {
		return nil, nil, err
	}
	if len(container.Slots()) == 0 {
		return nil, nil, domain.NewGameError(domain.ErrInvalidState, MsgCannotHoldItemsFmt, container.Name())
	}
	var slot *Slot
	if slotName == "" {
		var filled []*Slot
		for _, s := range container.Slots() {
			if len(s.Items) > 0 {
				filled = append(filled, s)
			}
		}
		if len(filled) == 0 {
			return nil, nil, domain.NewGameError(domain.ErrInvalidState, MsgNothingToStealFmt, container.Name())
		}
		slot = filled[e.roller.Pick(len(filled))]
	} else {
		slot = container.Slot(slotName)
		if slot == nil {
			return nil, nil, domain.NewGameError(domain.ErrNotFound, MsgSlotNotFoundFmt, slotName, container.Name())
		}
		if len(slot.Items) == 0 {
			return nil, nil, domain.NewGameError(domain.ErrInvalidState, MsgNothingToStealFmt, slotLabel(container, slot))
		}
	}
	return handSlot, slot, nil
}

// pickUnit chooses an instance in slot weighted by its quantity.
func (e *Engine) pickUnit(slot *Slot) Entity {
	total := 0
	for _, it := range slot.Items {
		total += it.Base().Quantity
	}
	n := e.roller.Pick(total)
	for _, it := range slot.Items {
		n -= it.Base().Quantity
		if n < 0 {
			return it
		}
	}
	return slot.Items[len(slot.Items)-1]
}

// bands returns the highest failing roll and the highest noticed roll.
func (e *Engine) bands() (failMax, partialMax int) {
	lo, hi := e.settings.DiceMin, e.settings.DiceMax
	return (hi-lo)/3 + lo, 2*(hi-lo)/3 + lo
}

func (e *Engine) stealRoll(thief *Player) int {
	lo, hi := e.settings.DiceMin, e.settings.DiceMax
	if thief.HasAttribute(domain.AttributeThief) {
		return hi
	}
	roll := e.roller.Roll(lo, hi) + e.statModifier(thief.Dexterity)
	return min(max(roll, lo), hi)
}

// stealLocation phrases the container from the thief's and the victim's point of view.
func stealLocation(victim *Player, container *HeldItem, slot *Slot) (string, string) {
	if len(container.Slots()) > 1 {
		return fmt.Sprintf("%s of %s %s", slot.Name, victim.possessive(), container.Name()),
			fmt.Sprintf("%s of your %s", slot.Name, container.Name())
	}
	return fmt.Sprintf("%s %s", victim.possessive(), container.Name()), "your " + container.Name()
}
