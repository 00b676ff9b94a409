package inventory

import (
	"github.com/osse101/AlterEgo_Go/internal/domain"
	"github.com/osse101/AlterEgo_Go/internal/rows"
)

// Kind tells the two item representations apart.
type Kind int

const (
	// KindWorld is an item located in a room, fixture, puzzle or another world item.
	KindWorld Kind = iota
	// KindHeld is an item located on a player.
	KindHeld
)

func (k Kind) String() string {
	if k == KindHeld {
		return "held"
	}
	return "world"
}

// Entity is the capability shared by world and held items.
// Operations are written against it and only branch on Kind where an item
// crosses between the world and a player.
type Entity interface {
	Container
	rows.Entry
	Base() *Item
	Kind() Kind
	TotalWeight() int
	MatchKeys() (identifier, templateID, displayName string)
}

// Item is the state common to both representations.
type Item struct {
	ID          string
	Prefab      *domain.Prefab
	Quantity    int
	Uses        int
	Identifier  string
	Description string
	OwnSlots    []*Slot

	slot *Slot
	row  int
}

// Base returns the shared item state.
func (it *Item) Base() *Item { return it }

// Name is the prefab's display name.
func (it *Item) Name() string { return it.Prefab.Name }

// DisplayName implements Container.
func (it *Item) DisplayName() string { return it.Prefab.Name }

// Phrase is the "a SATCHEL" form used in narration.
func (it *Item) Phrase() string { return it.Prefab.SingleContainingPhrase }

// Label is the unique identifier when set, else the template id.
func (it *Item) Label() string {
	if it.Identifier != "" {
		return it.Identifier
	}
	return it.Prefab.ID
}

// Slots implements Container.
func (it *Item) Slots() []*Slot { return it.OwnSlots }

// Slot implements Container.
func (it *Item) Slot(name string) *Slot { return findSlot(it.OwnSlots, name) }

// ContainingSlot returns the slot the item sits in, or nil when detached.
func (it *Item) ContainingSlot() *Slot { return it.slot }

// Parent returns the container the item sits in, or nil when detached.
func (it *Item) Parent() Container {
	if it.slot == nil {
		return nil
	}
	return it.slot.owner
}

// MatchKeys returns the three names the resolver matches against, in precedence order.
func (it *Item) MatchKeys() (string, string, string) {
	return it.Identifier, it.Prefab.ID, it.Prefab.Name
}

// ContentsWeight is the weight of everything inside the item's own slots.
func (it *Item) ContentsWeight() int {
	w := 0
	for _, s := range it.OwnSlots {
		w += s.Weight
	}
	return w
}

// TotalWeight is prefab weight times quantity plus the contents of every own slot.
func (it *Item) TotalWeight() int {
	return it.Prefab.Weight*it.Quantity + it.ContentsWeight()
}

// UnitWeight is the weight of one unit carrying all of the item's contents.
func (it *Item) UnitWeight() int {
	return it.Prefab.Weight + it.ContentsWeight()
}

// HasContents reports whether any own slot holds something.
func (it *Item) HasContents() bool {
	for _, s := range it.OwnSlots {
		if len(s.Items) > 0 {
			return true
		}
	}
	return false
}

// Children returns every item directly inside the item, slot by slot.
func (it *Item) Children() []Entity {
	var out []Entity
	for _, s := range it.OwnSlots {
		out = append(out, s.Items...)
	}
	return out
}

// Row implements rows.Entry.
func (it *Item) Row() int { return it.row }

// SetRow implements rows.Entry.
func (it *Item) SetRow(row int) { it.row = row }

func (it *Item) baseRecord() domain.RowRecord {
	rec := domain.RowRecord{
		Row:         it.row,
		PrefabID:    it.Prefab.ID,
		Identifier:  it.Identifier,
		Quantity:    it.Quantity,
		Uses:        it.Uses,
		Description: it.Description,
	}
	if it.slot != nil {
		rec.ContainerName = it.slot.owner.ChildContainerName(it.slot.Name)
		rec.Slot = it.slot.Name
	}
	return rec
}

// mergeableWith reports whether other can absorb it as extra quantity.
func (it *Item) mergeableWith(other *Item) bool {
	return it.Prefab == other.Prefab &&
		it.Identifier == "" && other.Identifier == "" &&
		it.Uses == other.Uses &&
		it.Description == other.Description &&
		!it.HasContents() && !other.HasContents()
}

// initSlots creates empty own slots from the prefab, owned by outer.
func (it *Item) initSlots(outer Container) {
	it.OwnSlots = make([]*Slot, 0, len(it.Prefab.Inventory))
	for _, def := range it.Prefab.Inventory {
		it.OwnSlots = append(it.OwnSlots, newSlot(outer, def.Name, def.Capacity, false))
	}
}

// WorldItem is an item located in the room-scoped world.
type WorldItem struct {
	Item
	Accessible bool
}

func newWorldItem(base Item) *WorldItem {
	w := &WorldItem{Item: base, Accessible: true}
	w.initSlots(w)
	return w
}

// Kind implements Entity.
func (w *WorldItem) Kind() Kind { return KindWorld }

// Location implements Container.
func (w *WorldItem) Location() *Room {
	if p := w.Parent(); p != nil {
		return p.Location()
	}
	return nil
}

// ChildContainerName implements Container.
func (w *WorldItem) ChildContainerName(slot string) string {
	return domain.ContainerPrefixItem + w.Label() + "/" + slot
}

// Record implements rows.Entry.
func (w *WorldItem) Record() domain.RowRecord {
	rec := w.baseRecord()
	if room := w.Location(); room != nil {
		rec.Group = room.Name
	}
	rec.Weight = w.TotalWeight()
	return rec
}

// HeldItem is an item located on a player, either equipped or nested in another held item.
type HeldItem struct {
	Item
	player *Player
}

func newHeldItem(base Item, player *Player) *HeldItem {
	h := &HeldItem{Item: base, player: player}
	h.initSlots(h)
	return h
}

// Kind implements Entity.
func (h *HeldItem) Kind() Kind { return KindHeld }

// Player returns the player holding the item.
func (h *HeldItem) Player() *Player { return h.player }

// Location implements Container.
func (h *HeldItem) Location() *Room {
	if h.player == nil {
		return nil
	}
	return h.player.Room
}

// ChildContainerName implements Container.
func (h *HeldItem) ChildContainerName(slot string) string {
	return h.Label() + "/" + slot
}

// IsEquipped reports whether the item sits directly in one of its player's equipment slots.
func (h *HeldItem) IsEquipped() bool {
	return h.slot != nil && h.slot.equipment
}

// IsInHand reports whether the item is held in a hand.
func (h *HeldItem) IsInHand() bool {
	return h.IsEquipped() && domain.IsHand(h.slot.Name)
}

// EquipmentSlot returns the top-level equipment slot the item is under.
func (h *HeldItem) EquipmentSlot() *Slot {
	s := h.slot
	for s != nil && !s.equipment {
		parent, ok := s.owner.(*HeldItem)
		if !ok {
			return nil
		}
		s = parent.slot
	}
	return s
}

// Row returns the equipment slot's row for equipped items.
func (h *HeldItem) Row() int {
	if h.IsEquipped() {
		return h.slot.row
	}
	return h.row
}

// Record implements rows.Entry.
func (h *HeldItem) Record() domain.RowRecord {
	if h.IsEquipped() {
		return h.slot.Record()
	}
	rec := h.baseRecord()
	if h.player != nil {
		rec.Group = h.player.Name
	}
	if top := h.EquipmentSlot(); top != nil {
		rec.EquipmentSlot = top.Name
	}
	rec.Weight = h.TotalWeight()
	return rec
}

// setPlayer rebinds the item and everything inside it to p.
func (h *HeldItem) setPlayer(p *Player) {
	h.player = p
	for _, c := range h.Children() {
		c.(*HeldItem).setPlayer(p)
	}
}

// within reports whether e is c or nested anywhere inside c.
func within(e Entity, c Container) bool {
	var cur Container = e
	for cur != nil {
		if cur == c {
			return true
		}
		ent, ok := cur.(Entity)
		if !ok {
			return false
		}
		cur = ent.Base().Parent()
	}
	return false
}

// descendants returns every item nested inside e in pre-order.
func descendants(e Entity) []Entity {
	var out []Entity
	for _, c := range e.Base().Children() {
		out = append(out, c)
		out = append(out, descendants(c)...)
	}
	return out
}
