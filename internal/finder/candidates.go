package finder

import (
	"github.com/osse101/AlterEgo_Go/internal/domain"
	"github.com/osse101/AlterEgo_Go/internal/inventory"
)

// Hands returns what p holds, right hand first.
func Hands(p *inventory.Player) []*inventory.HeldItem {
	return p.HeldInHands()
}

// Equipped returns everything p wears outside the hands, in slot order.
func Equipped(p *inventory.Player) []*inventory.HeldItem {
	var out []*inventory.HeldItem
	for _, h := range p.Equipped() {
		if !h.IsInHand() {
			out = append(out, h)
		}
	}
	return out
}

// Carried returns every item on p, nested items after their container.
func Carried(p *inventory.Player) []*inventory.HeldItem {
	return p.AllHeld()
}

// RoomItems returns every world item in room including nested ones.
func RoomItems(reg *inventory.Registry, room *inventory.Room) []*inventory.WorldItem {
	return reg.RoomItems(room)
}

// SlotItems returns the instances directly inside slot.
func SlotItems(slot *inventory.Slot) []inventory.Entity {
	return slot.Items
}

// Occupants returns the other players in p's room that p can see.
func Occupants(p *inventory.Player) []*inventory.Player {
	if p.Room == nil {
		return nil
	}
	var out []*inventory.Player
	for _, o := range p.Room.Occupants {
		if o != p && !o.HasAttribute(domain.AttributeConcealed) {
			out = append(out, o)
		}
	}
	return out
}
