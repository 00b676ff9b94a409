package inventory

import (
	"fmt"

	"github.com/osse101/AlterEgo_Go/internal/domain"
)

// Seed is one persisted instance as read from a world file or row store.
type Seed struct {
	ID          string
	Prefab      *domain.Prefab
	Quantity    int
	Uses        int
	Identifier  string
	Description string
}

func (s Seed) item() Item {
	it := Item{
		ID:          s.ID,
		Prefab:      s.Prefab,
		Quantity:    s.Quantity,
		Uses:        s.Uses,
		Identifier:  s.Identifier,
		Description: s.Description,
	}
	if it.Uses == 0 {
		it.Uses = s.Prefab.InitialUses()
	}
	if it.Description == "" {
		it.Description = s.Prefab.Description
	}
	return it
}

// LoadWorldItem places a world item during loading. Rows are appended in call order
// without emitting deltas, so callers load in persisted row order.
func (r *Registry) LoadWorldItem(seed Seed, dest Container, slotName string) (*WorldItem, error) {
	if seed.Prefab == nil || seed.Quantity < 0 {
		return nil, fmt.Errorf("world item %q: %w", seed.Identifier, domain.ErrInvalidWorld)
	}
	slot, err := worldTarget(nil, dest, slotName)
	if err != nil {
		return nil, fmt.Errorf("world item %s in %s: %v: %w", seed.Prefab.ID, dest.DisplayName(), err, domain.ErrInvalidWorld)
	}
	if err := checkCapacity(dest, slot, seed.Prefab, seed.Quantity, seed.Prefab.Name); err != nil {
		return nil, fmt.Errorf("world item %s: %v: %w", seed.Prefab.ID, err, domain.ErrInvalidWorld)
	}
	it := seed.item()
	if it.Identifier == "" && seed.Prefab.IsContainer() {
		it.Identifier = r.NextIdentifier(seed.Prefab.ID)
	}
	w := newWorldItem(it)
	slot.add(w)
	r.register(w)
	recomputeAncestors(slot)
	r.World.Load(w)
	return w, nil
}

// LoadHeldItem places a held item during loading. dest is p itself, for an item equipped
// in one of p's equipment slots, or a held item p already carries.
func (r *Registry) LoadHeldItem(seed Seed, p *Player, dest Container, slotName string) (*HeldItem, error) {
	if seed.Prefab == nil || seed.Quantity < 0 {
		return nil, fmt.Errorf("inventory item %q of %s: %w", seed.Identifier, p.Name, domain.ErrInvalidWorld)
	}
	it := seed.item()
	if it.Identifier == "" && seed.Prefab.IsContainer() {
		it.Identifier = r.NextIdentifier(seed.Prefab.ID)
	}
	h := newHeldItem(it, p)

	switch v := dest.(type) {
	case *Player:
		slot := v.Slot(slotName)
		if slot == nil || !slot.Free() {
			return nil, fmt.Errorf("equipment slot %q of %s missing or occupied: %w", slotName, p.Name, domain.ErrInvalidWorld)
		}
		slot.equip(h)
		r.register(h)
		recomputeAncestors(slot)
	case *HeldItem:
		if v.player != p {
			return nil, fmt.Errorf("%s is not carried by %s: %w", v.Label(), p.Name, domain.ErrInvalidWorld)
		}
		slot, err := containerSlot(v, slotName)
		if err != nil {
			return nil, fmt.Errorf("inventory item %s in %s: %v: %w", seed.Prefab.ID, v.Label(), err, domain.ErrInvalidWorld)
		}
		if err := checkCapacity(v, slot, seed.Prefab, seed.Quantity, seed.Prefab.Name); err != nil {
			return nil, fmt.Errorf("inventory item %s: %v: %w", seed.Prefab.ID, err, domain.ErrInvalidWorld)
		}
		slot.add(h)
		r.register(h)
		recomputeAncestors(slot)
		r.Held.Load(h)
	default:
		return nil, fmt.Errorf("inventory item %s: container %s is not on a player: %w", seed.Prefab.ID, dest.DisplayName(), domain.ErrInvalidWorld)
	}
	return h, nil
}
