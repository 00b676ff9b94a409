package inventory

import (
	"context"

	"github.com/osse101/AlterEgo_Go/internal/domain"
	"github.com/osse101/AlterEgo_Go/internal/logger"
)

// reject logs a refused operation and hands err back unchanged.
func (e *Engine) reject(ctx context.Context, op string, err error) error {
	logger.FromContext(ctx).Info(LogMsgOperationRejected, "operation", op, "reason", err.Error())
	return err
}

// handFor returns the named hand, or the first free one when name is empty. The hand must be empty.
func handFor(p *Player, name string) (*Slot, error) {
	if name == "" {
		if s := p.FreeHand(); s != nil {
			return s, nil
		}
		return nil, domain.NewGameError(domain.ErrPrerequisiteMissing, MsgNoFreeHand)
	}
	s := p.Hand(name)
	if s == nil {
		return nil, domain.NewGameError(domain.ErrNotFound, MsgHandNotFoundFmt, name)
	}
	if !s.Free() {
		return nil, domain.NewGameError(domain.ErrPrerequisiteMissing, MsgNoFreeHand)
	}
	return s, nil
}

// owned rejects items that are not currently on p.
func owned(p *Player, h *HeldItem) error {
	if h == nil || h.player != p || h.slot == nil {
		name := ""
		if h != nil {
			name = h.Name()
		}
		return domain.NewGameError(domain.ErrNotFound, MsgNotYourItemFmt, name)
	}
	return nil
}

// inHand rejects items that are on p but not held in one of p's hands.
func inHand(p *Player, h *HeldItem) error {
	if err := owned(p, h); err != nil {
		return err
	}
	if !h.IsInHand() {
		return domain.NewGameError(domain.ErrNotFound, MsgNotInHandFmt, h.Name())
	}
	return nil
}

// together rejects when other is not in p's room or is hidden from it.
func together(p, other *Player) error {
	if p.Room == nil || other.Room != p.Room || other.HasAttribute(domain.AttributeConcealed) {
		return domain.NewGameError(domain.ErrPrerequisiteMissing, MsgNotInRoomFmt, other.DisplayName())
	}
	return nil
}

// reachable rejects world items outside p's room or inside something closed to players.
func reachable(p *Player, w *WorldItem) error {
	if w == nil || w.slot == nil {
		return domain.NewGameError(domain.ErrNotFound, MsgItemGone)
	}
	if p.Room == nil || w.Location() != p.Room {
		return domain.NewGameError(domain.ErrPrerequisiteMissing, MsgNotInRoomFmt, w.Name())
	}
	if !openToPlayers(w.Parent()) || !w.Accessible {
		return domain.NewGameError(domain.ErrInvalidState, MsgNotAccessibleFmt, w.Name())
	}
	return nil
}

// CanReach reports whether p could take w from where it sits.
func CanReach(p *Player, w *WorldItem) bool {
	return reachable(p, w) == nil
}

// openToPlayers reports whether players can reach into c: every world item on the
// way up must be accessible, as must the fixture or puzzle at the top, and a puzzle
// must also be solved.
func openToPlayers(c Container) bool {
	for c != nil {
		switch v := c.(type) {
		case *WorldItem:
			if !v.Accessible {
				return false
			}
			c = v.Parent()
		case *Fixture:
			return v.Accessible
		case *Puzzle:
			return v.Accessible && v.Solved
		default:
			return true
		}
	}
	return true
}

// worldTarget validates a world container and slot as a destination for p.
func worldTarget(p *Player, dest Container, slotName string) (*Slot, error) {
	if !isWorldContainer(dest) {
		return nil, domain.NewGameError(domain.ErrInvalidState, MsgNotWorldContainerFmt, dest.DisplayName())
	}
	if p != nil {
		if p.Room == nil || dest.Location() != p.Room {
			return nil, domain.NewGameError(domain.ErrPrerequisiteMissing, MsgNotInRoomFmt, dest.DisplayName())
		}
		if !openToPlayers(dest) {
			return nil, domain.NewGameError(domain.ErrInvalidState, MsgNotAccessibleFmt, dest.DisplayName())
		}
	}
	return containerSlot(dest, slotName)
}

// containerSlot resolves a storage slot of dest.
func containerSlot(dest Container, slotName string) (*Slot, error) {
	switch v := dest.(type) {
	case *Fixture:
		if !v.CanHoldItems() {
			return nil, domain.NewGameError(domain.ErrInvalidState, MsgCannotHoldItemsFmt, v.Name)
		}
	case Entity:
		if len(v.Slots()) == 0 {
			return nil, domain.NewGameError(domain.ErrInvalidState, MsgCannotHoldItemsFmt, v.DisplayName())
		}
	}
	slot := dest.Slot(slotName)
	if slot == nil {
		return nil, domain.NewGameError(domain.ErrNotFound, MsgSlotNotFoundFmt, slotName, dest.DisplayName())
	}
	return slot, nil
}

// unitWeight is the weight of the single unit Take, Unstash and Steal split off a stack.
// A split unit leaves any contents behind with the remaining stack.
func unitWeight(ent Entity) int {
	b := ent.Base()
	if b.Quantity <= 1 {
		return ent.TotalWeight()
	}
	return b.Prefab.Weight
}
