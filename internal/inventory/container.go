package inventory

import (
	"strings"

	"github.com/osse101/AlterEgo_Go/internal/domain"
)

// Container is anything that owns slots: rooms, fixtures, puzzles, item instances and players.
type Container interface {
	// DisplayName is the name shown to players.
	DisplayName() string
	// Slots returns the container's slots in definition order.
	Slots() []*Slot
	// Slot returns the named slot, or the first slot when name is empty. Nil when missing.
	Slot(name string) *Slot
	// ChildContainerName is the persisted container name of anything placed in the named slot.
	ChildContainerName(slot string) string
	// Location is the room the container is in.
	Location() *Room
}

// findSlot is the shared Slot lookup for every container.
func findSlot(slots []*Slot, name string) *Slot {
	if name == "" {
		if len(slots) == 0 {
			return nil
		}
		return slots[0]
	}
	for _, s := range slots {
		if strings.EqualFold(s.Name, name) {
			return s
		}
	}
	return nil
}

// Room is a top-level location. Items lying loose in a room sit in its single unbounded slot.
type Room struct {
	Name      string
	Fixtures  []*Fixture
	Puzzles   []*Puzzle
	Occupants []*Player
	// DropFixture names the fixture a drop without a destination uses. Empty means FLOOR.
	DropFixture string
	floor       *Slot
}

// NewRoom creates an empty room.
func NewRoom(name string) *Room {
	r := &Room{Name: name}
	r.floor = newSlot(r, "", 0, false)
	return r
}

func (r *Room) DisplayName() string                { return r.Name }
func (r *Room) Slots() []*Slot                     { return []*Slot{r.floor} }
func (r *Room) Slot(name string) *Slot             { return r.floor }
func (r *Room) ChildContainerName(_ string) string { return "" }
func (r *Room) Location() *Room                    { return r }

// Fixture returns the named fixture in the room.
func (r *Room) Fixture(name string) *Fixture {
	for _, f := range r.Fixtures {
		if strings.EqualFold(f.Name, name) {
			return f
		}
	}
	return nil
}

// DropTarget returns the fixture a drop without a destination lands in, or nil when
// the room has none.
func (r *Room) DropTarget() *Fixture {
	name := r.DropFixture
	if name == "" {
		name = DefaultDropFixture
	}
	return r.Fixture(name)
}

// Puzzle returns the named puzzle in the room.
func (r *Room) Puzzle(name string) *Puzzle {
	for _, p := range r.Puzzles {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

// HasOccupant reports whether p is in the room.
func (r *Room) HasOccupant(p *Player) bool {
	for _, o := range r.Occupants {
		if o == p {
			return true
		}
	}
	return false
}

// Fixture is a piece of room furniture that can hold items (a closet, a table, the floor).
type Fixture struct {
	Name        string
	Accessible  bool
	Preposition string
	room        *Room
	slot        *Slot
}

// NewFixture creates a fixture in room. A capacity of 0 means unbounded.
func NewFixture(room *Room, name, preposition string, capacity int, accessible bool) *Fixture {
	f := &Fixture{Name: name, Accessible: accessible, Preposition: preposition, room: room}
	f.slot = newSlot(f, name, capacity, false)
	room.Fixtures = append(room.Fixtures, f)
	return f
}

func (f *Fixture) DisplayName() string                { return f.Name }
func (f *Fixture) Slots() []*Slot                     { return []*Slot{f.slot} }
func (f *Fixture) Slot(name string) *Slot             { return f.slot }
func (f *Fixture) ChildContainerName(_ string) string { return domain.ContainerPrefixFixture + f.Name }
func (f *Fixture) Location() *Room                    { return f.room }

// MatchKeys lets the resolver find fixtures by name.
func (f *Fixture) MatchKeys() (string, string, string) { return "", "", f.Name }

// CanHoldItems reports whether items may be put on or in the fixture.
func (f *Fixture) CanHoldItems() bool {
	return f.Preposition != ""
}

// Puzzle is a container whose contents are only reachable once it is solved.
type Puzzle struct {
	Name       string
	Accessible bool
	Solved     bool
	Parent     *Fixture
	room       *Room
	slot       *Slot
}

// NewPuzzle creates a puzzle in room, optionally attached to a parent fixture.
func NewPuzzle(room *Room, name string, parent *Fixture, capacity int, accessible bool) *Puzzle {
	p := &Puzzle{Name: name, Accessible: accessible, Parent: parent, room: room}
	p.slot = newSlot(p, name, capacity, false)
	room.Puzzles = append(room.Puzzles, p)
	return p
}

func (p *Puzzle) DisplayName() string {
	if p.Parent != nil {
		return p.Parent.Name
	}
	return p.Name
}
func (p *Puzzle) Slots() []*Slot                     { return []*Slot{p.slot} }
func (p *Puzzle) Slot(name string) *Slot             { return p.slot }
func (p *Puzzle) ChildContainerName(_ string) string { return domain.ContainerPrefixPuzzle + p.Name }
func (p *Puzzle) Location() *Room                    { return p.room }

// MatchKeys lets the resolver find puzzles by name or by the fixture they sit in.
func (p *Puzzle) MatchKeys() (string, string, string) { return p.Name, "", p.DisplayName() }

// preposition returns the word used when narrating an insertion into c.
func preposition(c Container) string {
	switch v := c.(type) {
	case *Fixture:
		if v.Preposition != "" {
			return v.Preposition
		}
	case *Puzzle:
		if v.Parent != nil && v.Parent.Preposition != "" {
			return v.Parent.Preposition
		}
	case Entity:
		return v.Base().Prefab.PrepositionOrDefault()
	}
	return "in"
}

// isWorldContainer reports whether c is room-scoped.
func isWorldContainer(c Container) bool {
	switch c.(type) {
	case *Room, *Fixture, *Puzzle, *WorldItem:
		return true
	}
	return false
}
