package inventory

import (
	"github.com/osse101/AlterEgo_Go/internal/domain"
)

// Slot is a named compartment of a container holding an ordered list of item instances.
//
// OccupiedSpace and Weight are maintained by recomputeAncestors; callers never set them.
// Equipment slots hold at most one instance, which is also their Equipped pointer,
// and own a permanent row in the inventory table.
type Slot struct {
	Name          string
	Capacity      int
	OccupiedSpace int
	Weight        int
	Items         []Entity
	Equipped      Entity

	owner     Container
	equipment bool
	row       int
}

func newSlot(owner Container, name string, capacity int, equipment bool) *Slot {
	return &Slot{Name: name, Capacity: capacity, owner: owner, equipment: equipment}
}

// Owner returns the container the slot belongs to.
func (s *Slot) Owner() Container {
	return s.owner
}

// IsEquipment reports whether the slot is one of a player's equipment slots.
func (s *Slot) IsEquipment() bool {
	return s.equipment
}

// Unbounded reports whether the slot has no capacity limit.
func (s *Slot) Unbounded() bool {
	return s.Capacity <= 0
}

// Free reports whether an equipment slot has nothing equipped.
func (s *Slot) Free() bool {
	return s.Equipped == nil
}

// Contains reports whether e is directly in the slot.
func (s *Slot) Contains(e Entity) bool {
	return s.indexOf(e) >= 0
}

func (s *Slot) indexOf(e Entity) int {
	for i, it := range s.Items {
		if it == e {
			return i
		}
	}
	return -1
}

// recompute derives OccupiedSpace and Weight from the slot's direct items.
func (s *Slot) recompute() {
	space, weight := 0, 0
	for _, e := range s.Items {
		b := e.Base()
		space += b.Prefab.Size * b.Quantity
		weight += e.TotalWeight()
	}
	s.OccupiedSpace = space
	s.Weight = weight
}

// add appends e and points it at this slot. Aggregates are not touched.
func (s *Slot) add(e Entity) {
	s.Items = append(s.Items, e)
	e.Base().slot = s
}

// remove detaches e from the slot, clearing Equipped if it pointed at e.
func (s *Slot) remove(e Entity) bool {
	idx := s.indexOf(e)
	if idx < 0 {
		return false
	}
	s.Items = append(s.Items[:idx], s.Items[idx+1:]...)
	if s.Equipped == e {
		s.Equipped = nil
	}
	e.Base().slot = nil
	return true
}

// equip places e as the slot's only item and equipped pointer.
func (s *Slot) equip(e Entity) {
	s.Items = []Entity{e}
	s.Equipped = e
	e.Base().slot = s
}

// Row implements rows.Entry for equipment slots.
func (s *Slot) Row() int {
	return s.row
}

// SetRow implements rows.Entry.
func (s *Slot) SetRow(row int) {
	s.row = row
}

// Record is the equipment slot's row: the equipped item's values, or a blank placeholder.
func (s *Slot) Record() domain.RowRecord {
	rec := domain.RowRecord{Row: s.row, EquipmentSlot: s.Name}
	if p, ok := s.owner.(*Player); ok {
		rec.Group = p.Name
	}
	if s.Equipped == nil {
		return rec
	}
	b := s.Equipped.Base()
	rec.PrefabID = b.Prefab.ID
	rec.Identifier = b.Identifier
	rec.Quantity = b.Quantity
	rec.Uses = b.Uses
	rec.Weight = s.Equipped.TotalWeight()
	rec.Description = b.Description
	return rec
}
