package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/AlterEgo_Go/internal/domain"
	"github.com/osse101/AlterEgo_Go/internal/logger"
)

// Dress puts on every equippable item lying in source, or in one of its slots when
// slotName is set. Each item goes to the first free non-hand slot it fits, in the order
// the items sit in the container. Items with no free slot, and items p can't carry
// unless forced, are left behind. p needs a free hand, as for Take.
func (e *Engine) Dress(ctx context.Context, p *Player, source Container, slotName string) (*Result, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDressCalled, "player", p.Name, "container", source.DisplayName(), "slot", slotName)

	if _, err := handFor(p, ""); err != nil {
		return nil, e.reject(ctx, "dress", err)
	}
	from, err := worldTarget(p, source, slotName)
	if err != nil {
		return nil, e.reject(ctx, "dress", err)
	}
	slots := source.Slots()
	if slotName != "" {
		slots = []*Slot{from}
	}

	var candidates []*WorldItem
	for _, s := range slots {
		for _, ent := range s.Items {
			if w, ok := ent.(*WorldItem); ok && w.Accessible && w.Prefab.Equippable {
				candidates = append(candidates, w)
			}
		}
	}
	if len(candidates) == 0 {
		return nil, e.reject(ctx, "dress", domain.NewGameError(domain.ErrInvalidState, MsgNoEquippableFmt, source.DisplayName()))
	}

	type fit struct {
		item *WorldItem
		slot *Slot
	}
	var plan []fit
	claimed := map[*Slot]bool{}
	weight := p.CarryWeight
	limit := p.MaxCarryWeight()
	for _, w := range candidates {
		if !IsForced(ctx) && weight+unitWeight(w) > limit {
			continue
		}
		if s := freeWearSlot(p, w.Prefab, claimed); s != nil {
			claimed[s] = true
			weight += unitWeight(w)
			plan = append(plan, fit{item: w, slot: s})
		}
	}
	if len(plan) == 0 {
		return nil, e.reject(ctx, "dress", domain.NewGameError(domain.ErrInvalidState, MsgNothingToPutOnFmt, source.DisplayName()))
	}

	phrases := make([]string, 0, len(plan))
	labels := make([]string, 0, len(plan))
	for _, f := range plan {
		held := asHeld(e.takeUnits(f.item, 1), p)
		e.attach(f.slot, held)
		phrases = append(phrases, held.Phrase())
		labels = append(labels, held.Label())
	}

	list := listPhrases(phrases)
	e.narrate(p, false, fmt.Sprintf(NarrDressesFmt, p.DisplayName(), source.DisplayName(), list))
	origin := source.DisplayName()
	if slotName != "" {
		origin = slotLabel(source, from)
	}
	e.log(ctx, fmt.Sprintf(LogLineDressedFmt, p.Name, origin, listPhrases(labels), p.Room.Name))
	log.Info("Player dressed", "player", p.Name, "items", len(plan), "carry_weight", p.CarryWeight)

	return &Result{Message: fmt.Sprintf(MsgYouDressFmt, source.DisplayName(), list)}, nil
}

// freeWearSlot returns the first empty non-hand slot of p that prefab can be worn in.
func freeWearSlot(p *Player, prefab *domain.Prefab, claimed map[*Slot]bool) *Slot {
	for _, name := range prefab.EquipmentSlots {
		if domain.IsHand(name) {
			continue
		}
		if s := p.Slot(name); s != nil && s.Free() && !claimed[s] {
			return s
		}
	}
	return nil
}

// Undress drops whatever p holds and then takes off every equippable item p wears,
// putting all of it in dest. The whole lot must fit in the destination slot.
func (e *Engine) Undress(ctx context.Context, p *Player, dest Container, slotName string) (*Result, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUndressCalled, "player", p.Name, "container", dest.DisplayName(), "slot", slotName)

	slot, err := worldTarget(p, dest, slotName)
	if err != nil {
		return nil, e.reject(ctx, "undress", err)
	}

	items := p.HeldInHands()
	for _, h := range p.Equipped() {
		if !domain.IsHand(h.slot.Name) && h.Prefab.Equippable {
			items = append(items, h)
		}
	}
	if len(items) == 0 {
		return nil, e.reject(ctx, "undress", domain.NewGameError(domain.ErrInvalidState, MsgNothingToUndress))
	}
	size := 0
	for _, h := range items {
		size += h.Prefab.Size * h.Quantity
	}
	if err := checkSpace(dest, slot, size, size, MsgYourInventory); err != nil {
		return nil, e.reject(ctx, "undress", err)
	}

	var phrases, visible, labels []string
	for _, h := range items {
		phrases = append(phrases, h.Phrase())
		labels = append(labels, h.Label())
		if !h.Prefab.Discreet {
			visible = append(visible, h.Phrase())
		}
		e.detach(h)
		e.attach(slot, asWorld(h))
	}

	prep := preposition(dest)
	if len(visible) > 0 {
		e.narrate(p, false, fmt.Sprintf(NarrUndressesFmt, p.DisplayName(), listPhrases(visible), prep, dest.DisplayName()))
	}
	e.log(ctx, fmt.Sprintf(LogLineUndressedFmt, p.Name, listPhrases(labels), prep, slotLabel(dest, slot), p.Room.Name))
	log.Info("Player undressed", "player", p.Name, "items", len(items), "container", dest.DisplayName())

	return &Result{Message: fmt.Sprintf(MsgYouUndressFmt, listPhrases(phrases), prep, dest.DisplayName())}, nil
}

// listPhrases joins "a", "a and b" or "a, b, and c".
func listPhrases(list []string) string {
	switch len(list) {
	case 0:
		return ""
	case 1:
		return list[0]
	case 2:
		return list[0] + " and " + list[1]
	}
	return strings.Join(list[:len(list)-1], ", ") + ", and " + list[len(list)-1]
}
