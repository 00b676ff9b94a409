package inventory

import (
	"fmt"

	"github.com/osse101/AlterEgo_Go/internal/domain"
)

// recomputeAncestors recomputes s and then every slot above it, bottom-up, until it
// reaches a room, fixture, puzzle or player.
func recomputeAncestors(s *Slot) {
	for s != nil {
		s.recompute()
		switch owner := s.owner.(type) {
		case Entity:
			s = owner.Base().slot
		case *Player:
			owner.recomputeCarryWeight()
			s = nil
		default:
			s = nil
		}
	}
}

// recomputeTree recomputes every own slot of e bottom-up. Used after cloning a subtree.
func recomputeTree(e Entity) {
	for _, s := range e.Base().OwnSlots {
		for _, c := range s.Items {
			recomputeTree(c)
		}
		s.recompute()
	}
}

// checkCapacity rejects inserting quantity units of prefab into slot.
// The message names the slot when the container has several, and the container when it has one.
func checkCapacity(c Container, slot *Slot, prefab *domain.Prefab, quantity int, name string) error {
	return checkSpace(c, slot, prefab.Size, quantity*prefab.Size, name)
}

// checkSpace rejects putting something of the given total size into slot. largest is the
// biggest single piece and decides between the too-large and no-space messages.
func checkSpace(c Container, slot *Slot, largest, total int, name string) error {
	if slot.Unbounded() {
		return nil
	}
	multi := len(c.Slots()) > 1
	if largest > slot.Capacity {
		if multi {
			return domain.NewGameError(domain.ErrCapacityExceeded, MsgTooLargeForSlotFmt, name, slot.Name, c.DisplayName())
		}
		return domain.NewGameError(domain.ErrCapacityExceeded, MsgTooLargeForContainerFmt, name, c.DisplayName())
	}
	if slot.OccupiedSpace+total > slot.Capacity {
		if multi {
			return domain.NewGameError(domain.ErrCapacityExceeded, MsgNoSpaceInSlotFmt, name, slot.Name, c.DisplayName())
		}
		return domain.NewGameError(domain.ErrCapacityExceeded, MsgNoSpaceInContainerFmt, name, c.DisplayName())
	}
	return nil
}

// checkCarry rejects adding weight to p beyond their carrying limit.
func checkCarry(p *Player, weight int, phrase string) error {
	limit := p.MaxCarryWeight()
	if weight > limit {
		return domain.NewGameError(domain.ErrCapacityExceeded, MsgTooHeavyFmt, phrase)
	}
	if p.CarryWeight+weight > limit {
		return domain.NewGameError(domain.ErrCapacityExceeded, MsgCarryingTooMuchFmt, phrase)
	}
	return nil
}

// slotLabel is "LEFT POCKET of SKIRT" for multi-slot containers and "SKIRT" otherwise.
func slotLabel(c Container, s *Slot) string {
	if len(c.Slots()) > 1 {
		return fmt.Sprintf("%s of %s", s.Name, c.DisplayName())
	}
	return c.DisplayName()
}
