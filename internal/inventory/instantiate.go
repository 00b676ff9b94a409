package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/AlterEgo_Go/internal/domain"
	"github.com/osse101/AlterEgo_Go/internal/logger"
)

// Instantiate creates quantity fresh units of prefab directly in a slot of dest.
// dest may be any world container, a held item, or a player (an equipment slot).
// Capacity and carry rules apply as they do for Take and Drop.
// Container prefabs without an identifier get a generated one.
func (e *Engine) Instantiate(ctx context.Context, prefab *domain.Prefab, dest Container, slotName string, quantity int, identifier string) (*Result, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgInstantiateCalled, "prefab", prefab.ID, "container", dest.DisplayName(), "slot", slotName, "quantity", quantity)

	slot, owner, err := instantiateTarget(prefab, dest, slotName, quantity)
	if err != nil {
		return nil, e.reject(ctx, "instantiate", err)
	}

	var created Entity
	if owner != nil {
		created = e.newHeld(prefab, owner, quantity, identifier)
	} else {
		created = e.newWorld(prefab, quantity, identifier)
	}
	placed := e.attach(slot, created)

	where := slotLabel(dest, slot)
	e.log(ctx, fmt.Sprintf(LogLineInstantiatedFmt, quantity, placed.Base().Label(), where))
	return &Result{Message: fmt.Sprintf(MsgInstantiatedFmt, quantity, prefab.Name, where), Item: placed}, nil
}

// instantiateTarget resolves the slot and, for player-side destinations, the owning player.
func instantiateTarget(prefab *domain.Prefab, dest Container, slotName string, quantity int) (*Slot, *Player, error) {
	if quantity <= 0 {
		return nil, nil, domain.NewGameError(domain.ErrInvalidState, MsgInvalidQuantity)
	}
	switch v := dest.(type) {
	case *Player:
		slot := v.Slot(slotName)
		if slot == nil {
			return nil, nil, domain.NewGameError(domain.ErrNotFound, MsgEquipmentSlotNotFoundFmt, slotName)
		}
		if !slot.Free() {
			return nil, nil, domain.NewGameError(domain.ErrInvalidState, MsgSlotOccupiedFmt, slot.Name, slot.Equipped.Base().Name())
		}
		if err := checkCarry(v, prefab.Weight*quantity, prefab.SingleContainingPhrase); err != nil {
			return nil, nil, err
		}
		return slot, v, nil
	case *HeldItem:
		slot, err := containerSlot(v, slotName)
		if err != nil {
			return nil, nil, err
		}
		if err := checkCapacity(v, slot, prefab, quantity, prefab.Name); err != nil {
			return nil, nil, err
		}
		if err := checkCarry(v.player, prefab.Weight*quantity, prefab.SingleContainingPhrase); err != nil {
			return nil, nil, err
		}
		return slot, v.player, nil
	}
	slot, err := worldTarget(nil, dest, slotName)
	if err != nil {
		return nil, nil, err
	}
	if err := checkCapacity(dest, slot, prefab, quantity, prefab.Name); err != nil {
		return nil, nil, err
	}
	return slot, nil, nil
}

// Destroy removes quantity units of ent where it stands. Destroying the whole stack
// removes everything inside it as well.
func (e *Engine) Destroy(ctx context.Context, ent Entity, quantity int) (*Result, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDestroyCalled, "item", ent.Base().Label(), "quantity", quantity)

	if quantity <= 0 {
		return nil, e.reject(ctx, "destroy", domain.NewGameError(domain.ErrInvalidState, MsgInvalidQuantity))
	}
	b := ent.Base()
	if b.slot == nil {
		return nil, e.reject(ctx, "destroy", domain.NewGameError(domain.ErrNotFound, MsgItemGone))
	}
	quantity = min(quantity, b.Quantity)
	from := slotLabel(b.slot.owner, b.slot)

	if quantity == b.Quantity {
		e.detach(ent)
	} else {
		b.Quantity -= quantity
		e.refresh(ent)
		e.propagate(b.slot)
	}

	e.log(ctx, fmt.Sprintf(LogLineDestroyedFmt, quantity, b.Label(), from))
	return &Result{Message: fmt.Sprintf(MsgDestroyedFmt, quantity, b.Name()), Item: ent}, nil
}

func (e *Engine) newItem(prefab *domain.Prefab, quantity int, identifier string) Item {
	if identifier == "" && prefab.IsContainer() {
		identifier = e.reg.NextIdentifier(prefab.ID)
	}
	return Item{
		Prefab:      prefab,
		Quantity:    quantity,
		Uses:        prefab.InitialUses(),
		Identifier:  identifier,
		Description: prefab.Description,
	}
}

func (e *Engine) newHeld(prefab *domain.Prefab, p *Player, quantity int, identifier string) *HeldItem {
	return newHeldItem(e.newItem(prefab, quantity, identifier), p)
}

func (e *Engine) newWorld(prefab *domain.Prefab, quantity int, identifier string) *WorldItem {
	return newWorldItem(e.newItem(prefab, quantity, identifier))
}
