package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/AlterEgo_Go/internal/domain"
	"github.com/osse101/AlterEgo_Go/internal/logger"
)

// Equip moves an item from one of p's hands into an equipment slot.
// An empty slot name picks the first non-hand slot the prefab fits.
func (e *Engine) Equip(ctx context.Context, p *Player, item *HeldItem, slotName string) (*Result, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgEquipCalled, "player", p.Name, "item", item.Label(), "slot", slotName)

	slot, err := equipTarget(p, item, slotName)
	if err != nil {
		return nil, e.reject(ctx, "equip", err)
	}

	e.detach(item)
	e.attach(slot, item)

	e.narrate(p, false, fmt.Sprintf(NarrPutsOnFmt, p.DisplayName(), item.Phrase()))
	e.log(ctx, fmt.Sprintf(LogLineEquippedFmt, p.Name, item.Label(), slot.Name))
	return &Result{Message: fmt.Sprintf(MsgYouEquipFmt, item.Name()), Item: item}, nil
}

func equipTarget(p *Player, item *HeldItem, slotName string) (*Slot, error) {
	if err := inHand(p, item); err != nil {
		return nil, err
	}
	if !item.Prefab.Equippable {
		return nil, domain.NewGameError(domain.ErrInvalidState, MsgNotEquippableFmt, item.Name())
	}
	if slotName == "" {
		for _, name := range item.Prefab.EquipmentSlots {
			if !domain.IsHand(name) && p.Slot(name) != nil {
				slotName = name
				break
			}
		}
	}
	slot := p.Slot(slotName)
	if slot == nil {
		return nil, domain.NewGameError(domain.ErrNotFound, MsgEquipmentSlotNotFoundFmt, slotName)
	}
	if domain.IsHand(slot.Name) {
		return nil, domain.NewGameError(domain.ErrInvalidState, MsgHandOnlyEquip)
	}
	if !item.Prefab.FitsEquipmentSlot(slot.Name) {
		return nil, domain.NewGameError(domain.ErrInvalidState, MsgWrongEquipmentSlotFmt, item.Name(), slot.Name)
	}
	if !slot.Free() {
		return nil, domain.NewGameError(domain.ErrInvalidState, MsgSlotOccupiedFmt, slot.Name, slot.Equipped.Base().Name())
	}
	return slot, nil
}

// Unequip moves whatever is worn in slotName into one of p's hands.
// Hands cannot be unequipped; dropping is the way to empty them.
func (e *Engine) Unequip(ctx context.Context, p *Player, slotName, hand string) (*Result, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUnequipCalled, "player", p.Name, "slot", slotName, "hand", hand)

	slot := p.Slot(slotName)
	if slot == nil {
		return nil, e.reject(ctx, "unequip", domain.NewGameError(domain.ErrNotFound, MsgEquipmentSlotNotFoundFmt, slotName))
	}
	if domain.IsHand(slot.Name) {
		return nil, e.reject(ctx, "unequip", domain.NewGameError(domain.ErrInvalidState, MsgCannotUnequipHands))
	}
	if slot.Free() {
		return nil, e.reject(ctx, "unequip", domain.NewGameError(domain.ErrInvalidState, MsgNothingEquippedFmt, slot.Name))
	}
	item := slot.Equipped.(*HeldItem)
	if cover := p.CoveringItem(slot.Name); cover != nil {
		return nil, e.reject(ctx, "unequip", domain.NewGameError(domain.ErrPrerequisiteMissing, MsgCoveredFmt, item.Name(), cover.Name()))
	}
	handSlot, err := handFor(p, hand)
	if err != nil {
		return nil, e.reject(ctx, "unequip", err)
	}

	e.detach(item)
	e.attach(handSlot, item)

	e.narrate(p, false, fmt.Sprintf(NarrTakesOffFmt, p.DisplayName(), p.Pronouns.Determiner, item.Name()))
	e.log(ctx, fmt.Sprintf(LogLineUnequippedFmt, p.Name, item.Label(), slot.Name))
	return &Result{Message: fmt.Sprintf(MsgYouUnequipFmt, item.Name()), Item: item}, nil
}

// DescribeAppearance lists what others can see p wearing: every non-hand equipped item
// not covered by another equipped item, plus whatever is in p's hands unless discreet.
func (e *Engine) DescribeAppearance(p *Player) (worn, held []string) {
	for _, s := range p.Slots() {
		if s.Equipped == nil {
			continue
		}
		it := s.Equipped.Base()
		if domain.IsHand(s.Name) {
			if !it.Prefab.Discreet {
				held = append(held, it.Phrase())
			}
			continue
		}
		if p.CoveringItem(s.Name) == nil {
			worn = append(worn, it.Phrase())
		}
	}
	return worn, held
}
