package world

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/AlterEgo_Go/internal/domain"
	"github.com/osse101/AlterEgo_Go/internal/inventory"
	"github.com/osse101/AlterEgo_Go/internal/logger"
)

// PrefabLookup resolves template ids; the item catalog implements it.
type PrefabLookup interface {
	Get(id string) (*domain.Prefab, bool)
}

type builder struct {
	doc     *Document
	prefabs PrefabLookup
	reg     *inventory.Registry
	world   map[string]*inventory.WorldItem
	held    map[string]*inventory.HeldItem
}

// Build creates a registry holding everything doc declares. Rows are allocated in
// document order and no deltas are emitted.
func Build(ctx context.Context, doc *Document, prefabs PrefabLookup, offset int) (*inventory.Registry, error) {
	b := &builder{
		doc:     doc,
		prefabs: prefabs,
		reg:     inventory.NewRegistry(offset),
		world:   make(map[string]*inventory.WorldItem),
		held:    make(map[string]*inventory.HeldItem),
	}
	steps := []func() error{b.rooms, b.players, b.items, b.inventory}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	logger.FromContext(ctx).Info(LogMsgWorldLoaded,
		"rooms", len(b.reg.Rooms()),
		"players", len(b.reg.Players()),
		"world_rows", b.reg.World.Len(),
		"inventory_rows", b.reg.Held.Len())
	return b.reg, nil
}

func (b *builder) rooms() error {
	for _, def := range b.doc.Rooms {
		if b.reg.Room(def.Name) != nil {
			return fmt.Errorf(ErrFmtDuplicateRoom, domain.ErrInvalidWorld, def.Name)
		}
		room := inventory.NewRoom(def.Name)
		for _, f := range def.Fixtures {
			inventory.NewFixture(room, f.Name, f.Preposition, f.Capacity, accessible(f.Accessible))
		}
		for _, p := range def.Puzzles {
			var parent *inventory.Fixture
			if p.Fixture != "" {
				if parent = room.Fixture(p.Fixture); parent == nil {
					return fmt.Errorf(ErrFmtUnknownFixture, domain.ErrInvalidWorld, p.Name, p.Fixture)
				}
			}
			puzzle := inventory.NewPuzzle(room, p.Name, parent, p.Capacity, accessible(p.Accessible))
			puzzle.Solved = p.Solved
		}
		if def.DropFixture != "" {
			if room.Fixture(def.DropFixture) == nil {
				return fmt.Errorf(ErrFmtUnknownDrop, domain.ErrInvalidWorld, def.Name, def.DropFixture)
			}
			room.DropFixture = def.DropFixture
		}
		b.reg.AddRoom(room)
	}
	return nil
}

func (b *builder) players() error {
	for _, def := range b.doc.Players {
		if b.reg.Player(def.Name) != nil {
			return fmt.Errorf(ErrFmtDuplicatePlayer, domain.ErrInvalidWorld, def.Name)
		}
		p := inventory.NewPlayer(def.Name, b.doc.EquipmentSlots)
		p.MemberID = def.MemberID
		p.Pronouns = inventory.PronounsFor(def.Pronouns)
		if def.Strength > 0 {
			p.Strength = def.Strength
		}
		if def.Dexterity > 0 {
			p.Dexterity = def.Dexterity
		}
		for _, attr := range def.Attributes {
			p.SetAttribute(attr, true)
		}
		if def.Room != "" {
			if p.Room = b.reg.Room(def.Room); p.Room == nil {
				return fmt.Errorf(ErrFmtUnknownRoom, domain.ErrInvalidWorld, "player "+def.Name, def.Room)
			}
		}
		b.reg.AddPlayer(p)
	}
	return nil
}

func (b *builder) items() error {
	for i, def := range b.doc.Items {
		row := i + 1
		room := b.reg.Room(def.Room)
		if room == nil {
			return fmt.Errorf(ErrFmtUnknownRoom, domain.ErrInvalidWorld, fmt.Sprintf("items row %d", row), def.Room)
		}
		prefab, ok := b.prefabs.Get(def.Prefab)
		if !ok {
			return fmt.Errorf(ErrFmtUnknownPrefab, domain.ErrInvalidWorld, "items", row, def.Prefab)
		}
		dest, slot, ok := b.worldContainer(room, def.Container)
		if !ok {
			return fmt.Errorf(ErrFmtUnknownContainer, domain.ErrInvalidWorld, "items", row, def.Container)
		}
		it, err := b.reg.LoadWorldItem(seed(prefab, def.Identifier, def.Quantity, def.Uses, def.Description), dest, slot)
		if err != nil {
			return fmt.Errorf(ErrFmtPlaceFailed, domain.ErrInvalidWorld, "items", row, err)
		}
		if prefab.IsContainer() {
			if _, dup := b.world[it.Label()]; dup {
				return fmt.Errorf(ErrFmtDuplicateLabel, domain.ErrInvalidWorld, "items", row, it.Label())
			}
			b.world[it.Label()] = it
		}
	}
	return nil
}

func (b *builder) worldContainer(room *inventory.Room, ref string) (inventory.Container, string, bool) {
	switch {
	case ref == "":
		return room, "", true
	case strings.HasPrefix(ref, domain.ContainerPrefixFixture):
		f := room.Fixture(strings.TrimPrefix(ref, domain.ContainerPrefixFixture))
		return f, "", f != nil
	case strings.HasPrefix(ref, domain.ContainerPrefixPuzzle):
		p := room.Puzzle(strings.TrimPrefix(ref, domain.ContainerPrefixPuzzle))
		return p, "", p != nil
	}
	label, slot, ok := splitItemRef(ref)
	if !ok {
		return nil, "", false
	}
	parent, ok := b.world[label]
	if !ok || parent.Location() != room {
		return nil, "", false
	}
	return parent, slot, true
}

func (b *builder) inventory() error {
	for i, def := range b.doc.Inventory {
		row := i + 1
		p := b.reg.Player(def.Player)
		if p == nil {
			return fmt.Errorf(ErrFmtUnknownPlayer, domain.ErrInvalidWorld, row, def.Player)
		}
		prefab, ok := b.prefabs.Get(def.Prefab)
		if !ok {
			return fmt.Errorf(ErrFmtUnknownPrefab, domain.ErrInvalidWorld, "inventory", row, def.Prefab)
		}

		var dest inventory.Container = p
		slot := def.EquipmentSlot
		if def.Container != "" {
			label, slotName, ok := splitItemRef(def.Container)
			parent := b.held[heldKey(p, label)]
			if !ok || parent == nil {
				return fmt.Errorf(ErrFmtUnknownContainer, domain.ErrInvalidWorld, "inventory", row, def.Container)
			}
			dest, slot = parent, slotName
		}

		it, err := b.reg.LoadHeldItem(seed(prefab, def.Identifier, def.Quantity, def.Uses, def.Description), p, dest, slot)
		if err != nil {
			return fmt.Errorf(ErrFmtPlaceFailed, domain.ErrInvalidWorld, "inventory", row, err)
		}
		if prefab.IsContainer() {
			key := heldKey(p, it.Label())
			if _, dup := b.held[key]; dup {
				return fmt.Errorf(ErrFmtDuplicateLabel, domain.ErrInvalidWorld, "inventory", row, it.Label())
			}
			b.held[key] = it
		}
	}
	return nil
}

// splitItemRef parses "Item: LABEL/SLOT".
func splitItemRef(ref string) (string, string, bool) {
	rest, ok := strings.CutPrefix(ref, domain.ContainerPrefixItem)
	if !ok {
		return "", "", false
	}
	i := strings.LastIndex(rest, "/")
	if i <= 0 {
		return "", "", false
	}
	return rest[:i], rest[i+1:], true
}

func heldKey(p *inventory.Player, label string) string {
	return p.Name + "\x00" + label
}

func seed(prefab *domain.Prefab, identifier string, quantity, uses int, description string) inventory.Seed {
	if quantity == 0 {
		quantity = 1
	}
	return inventory.Seed{
		Prefab:      prefab,
		Identifier:  identifier,
		Quantity:    quantity,
		Uses:        uses,
		Description: description,
	}
}
