package inventory

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/osse101/AlterEgo_Go/internal/domain"
	"github.com/osse101/AlterEgo_Go/internal/rows"
)

// Registry is the arena of every live item instance, addressed by stable id,
// plus the rooms and players the instances live in and the two row ledgers.
type Registry struct {
	items       map[string]Entity
	rooms       []*Room
	players     []*Player
	identifiers map[string]int

	World *rows.Ledger
	Held  *rows.Ledger
}

// NewRegistry creates an empty registry whose ledgers start at offset.
func NewRegistry(offset int) *Registry {
	return &Registry{
		items:       make(map[string]Entity),
		identifiers: make(map[string]int),
		World:       rows.NewLedger(domain.TableItems, offset, nil),
		Held:        rows.NewLedger(domain.TableInventory, offset, nil),
	}
}

// SetSink routes both ledgers' deltas to sink.
func (r *Registry) SetSink(sink rows.Sink) {
	r.World.SetSink(sink)
	r.Held.SetSink(sink)
}

// AddRoom registers a room.
func (r *Registry) AddRoom(room *Room) {
	r.rooms = append(r.rooms, room)
}

// Room returns the named room.
func (r *Registry) Room(name string) *Room {
	for _, room := range r.rooms {
		if strings.EqualFold(room.Name, name) {
			return room
		}
	}
	return nil
}

// Rooms returns every room in load order.
func (r *Registry) Rooms() []*Room {
	return r.rooms
}

// AddPlayer registers a player, places them in their room and gives every equipment slot its row.
func (r *Registry) AddPlayer(p *Player) {
	r.players = append(r.players, p)
	if p.Room != nil && !p.Room.HasOccupant(p) {
		p.Room.Occupants = append(p.Room.Occupants, p)
	}
	for _, s := range p.equipment {
		r.Held.Load(s)
	}
}

// Player returns the named player.
func (r *Registry) Player(name string) *Player {
	for _, p := range r.players {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

// PlayerByMember returns the player bound to a chat member id.
func (r *Registry) PlayerByMember(memberID string) *Player {
	for _, p := range r.players {
		if p.MemberID == memberID {
			return p
		}
	}
	return nil
}

// Players returns every player in load order.
func (r *Registry) Players() []*Player {
	return r.players
}

// Item returns the instance with the given id.
func (r *Registry) Item(id string) (Entity, bool) {
	e, ok := r.items[id]
	return e, ok
}

// Len returns the number of live instances.
func (r *Registry) Len() int {
	return len(r.items)
}

// Items returns every live instance in no particular order.
func (r *Registry) Items() []Entity {
	out := make([]Entity, 0, len(r.items))
	for _, e := range r.items {
		out = append(out, e)
	}
	return out
}

// RoomItems returns every world item in room, nested ones included, in pre-order
// starting with loose items, then fixtures, then puzzles.
func (r *Registry) RoomItems(room *Room) []*WorldItem {
	var out []*WorldItem
	collect := func(s *Slot) {
		for _, e := range s.Items {
			out = append(out, e.(*WorldItem))
			for _, d := range descendants(e) {
				out = append(out, d.(*WorldItem))
			}
		}
	}
	collect(room.floor)
	for _, f := range room.Fixtures {
		collect(f.slot)
	}
	for _, p := range room.Puzzles {
		collect(p.slot)
	}
	return out
}

// FindByLabel returns the first world item in room whose identifier, or template id when it has none, equals label.
func (r *Registry) FindByLabel(room *Room, label string) *WorldItem {
	for _, w := range r.RoomItems(room) {
		if strings.EqualFold(w.Label(), label) {
			return w
		}
	}
	return nil
}

// NextIdentifier generates "<PREFAB ID> <n>" unique across the game.
func (r *Registry) NextIdentifier(prefabID string) string {
	r.identifiers[prefabID]++
	return fmt.Sprintf(identifierFmt, prefabID, r.identifiers[prefabID])
}

// reserveIdentifier keeps generated identifiers from colliding with loaded ones.
func (r *Registry) reserveIdentifier(prefabID, identifier string) {
	var n int
	if _, err := fmt.Sscanf(strings.TrimPrefix(identifier, prefabID+" "), "%d", &n); err == nil && n > r.identifiers[prefabID] {
		r.identifiers[prefabID] = n
	}
}

func (r *Registry) register(e Entity) {
	if e.Base().ID == "" {
		e.Base().ID = uuid.NewString()
	}
	r.items[e.Base().ID] = e
	if e.Base().Identifier != "" {
		r.reserveIdentifier(e.Base().Prefab.ID, e.Base().Identifier)
	}
}

func (r *Registry) registerTree(e Entity) {
	r.register(e)
	for _, d := range descendants(e) {
		r.register(d)
	}
}

func (r *Registry) unregisterTree(e Entity) {
	delete(r.items, e.Base().ID)
	for _, d := range descendants(e) {
		delete(r.items, d.Base().ID)
	}
}

// ledgerFor returns the ledger an instance's rows live in.
func (r *Registry) ledgerFor(e Entity) *rows.Ledger {
	if e.Kind() == KindHeld {
		return r.Held
	}
	return r.World
}
