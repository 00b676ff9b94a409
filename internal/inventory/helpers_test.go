package inventory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/AlterEgo_Go/internal/domain"
	"github.com/osse101/AlterEgo_Go/internal/rows"
)

var testEquipmentSlots = []string{"HAT", "GLASSES", "RIGHT HAND", "LEFT HAND", "JACKET", "SHIRT", "PANTS", "SHOES"}

// testPrefabs builds the item kinds used across the engine tests.
func testPrefabs() map[string]*domain.Prefab {
	p := map[string]*domain.Prefab{
		"TOOL BOX":    {ID: "TOOL BOX", Name: "TOOL BOX", SingleContainingPhrase: "a TOOL BOX", Size: 4, Weight: 5, Inventory: []domain.SlotDefinition{{Name: "TOOL BOX", Capacity: 20}}},
		"SCREWDRIVER": {ID: "SCREWDRIVER", Name: "SCREWDRIVER", PluralName: "SCREWDRIVERS", SingleContainingPhrase: "a SCREWDRIVER", Size: 1, Weight: 1},
		"HAMMER":      {ID: "HAMMER", Name: "HAMMER", PluralName: "HAMMERS", SingleContainingPhrase: "a HAMMER", Size: 1, Weight: 2},
		"WRENCH":      {ID: "WRENCH", Name: "WRENCH", PluralName: "WRENCHES", SingleContainingPhrase: "a WRENCH", Size: 1, Weight: 2},
		"SKIRT": {ID: "SKIRT", Name: "SKIRT", SingleContainingPhrase: "a SKIRT", Size: 4, Weight: 1, Equippable: true, EquipmentSlots: []string{"PANTS"},
			Inventory: []domain.SlotDefinition{{Name: "RIGHT POCKET", Capacity: 2}, {Name: "LEFT POCKET", Capacity: 2}}},
		"SATCHEL":   {ID: "SATCHEL", Name: "SATCHEL", SingleContainingPhrase: "a SATCHEL", Size: 5, Weight: 6, Equippable: true, EquipmentSlots: []string{"JACKET"}, Inventory: []domain.SlotDefinition{{Name: "SATCHEL", Capacity: 6}}},
		"LAPTOP":    {ID: "LAPTOP", Name: "LAPTOP", SingleContainingPhrase: "a LAPTOP", Size: 3, Weight: 2},
		"SMALL BAG": {ID: "SMALL BAG", Name: "SMALL BAG", SingleContainingPhrase: "a SMALL BAG", Size: 2, Weight: 1, Inventory: []domain.SlotDefinition{{Name: "SMALL BAG", Capacity: 2}}},
		"JACKET": {ID: "JACKET", Name: "JACKET", SingleContainingPhrase: "a JACKET", Size: 3, Weight: 1, Equippable: true, EquipmentSlots: []string{"JACKET"},
			CoveredEquipmentSlots: []string{"SHIRT"}},
		"SHIRT":          {ID: "SHIRT", Name: "SHIRT", SingleContainingPhrase: "a SHIRT", Size: 2, Weight: 1, Equippable: true, EquipmentSlots: []string{"SHIRT"}},
		"ANVIL":          {ID: "ANVIL", Name: "ANVIL", SingleContainingPhrase: "an ANVIL", Size: 3, Weight: 80},
		"DRAIN CLEANER":  {ID: "DRAIN CLEANER", Name: "DRAIN CLEANER", SingleContainingPhrase: "a bottle of DRAIN CLEANER", Size: 1, Weight: 1},
		"PLASTIC BOTTLE": {ID: "PLASTIC BOTTLE", Name: "PLASTIC BOTTLE", SingleContainingPhrase: "a PLASTIC BOTTLE", Size: 1, Weight: 1},
		"BREAD":          {ID: "BREAD", Name: "BREAD", SingleContainingPhrase: "a loaf of BREAD", Size: 1, Weight: 1},
		"SLICED BREAD":   {ID: "SLICED BREAD", Name: "SLICED BREAD", SingleContainingPhrase: "some SLICED BREAD", Size: 1, Weight: 1},
		"KNIFE":          {ID: "KNIFE", Name: "KNIFE", SingleContainingPhrase: "a KNIFE", Size: 1, Weight: 1, Uses: 2, NextStage: "DULL KNIFE"},
		"DULL KNIFE":     {ID: "DULL KNIFE", Name: "DULL KNIFE", SingleContainingPhrase: "a DULL KNIFE", Size: 1, Weight: 1},
		"GUN":            {ID: "GUN", Name: "GUN", SingleContainingPhrase: "a GUN", Size: 2, Weight: 2},
		"BULLET":         {ID: "BULLET", Name: "BULLET", SingleContainingPhrase: "a BULLET", Size: 1, Weight: 0, Discreet: true},
		"LOADED GUN":     {ID: "LOADED GUN", Name: "LOADED GUN", SingleContainingPhrase: "a LOADED GUN", Size: 2, Weight: 2},
		"NOTE":           {ID: "NOTE", Name: "NOTE", SingleContainingPhrase: "a NOTE", Size: 1, Weight: 0, Discreet: true},
	}
	p["KNIFE"].Next = p["DULL KNIFE"]
	return p
}

type fakeRecipes struct {
	byPair    map[[2]string]*domain.Recipe
	byProduct map[string]*domain.Recipe
}

func newFakeRecipes(recipes ...*domain.Recipe) *fakeRecipes {
	f := &fakeRecipes{byPair: map[[2]string]*domain.Recipe{}, byProduct: map[string]*domain.Recipe{}}
	for _, r := range recipes {
		f.byPair[[2]string{r.Ingredients[0].ID, r.Ingredients[1].ID}] = r
		if r.Uncraftable && len(r.Products) == 1 {
			f.byProduct[r.Products[0].ID] = r
		}
	}
	return f
}

func (f *fakeRecipes) Find(a, b string) (*domain.Recipe, bool) {
	a, b = domain.CanonicalIngredients(a, b)
	r, ok := f.byPair[[2]string{a, b}]
	return r, ok
}

func (f *fakeRecipes) FindUncraftable(productID string) (*domain.Recipe, bool) {
	r, ok := f.byProduct[productID]
	return r, ok
}

type recordingNarrator struct {
	narrations []string
	notices    map[string][]string
	logs       []string
}

func newRecordingNarrator() *recordingNarrator {
	return &recordingNarrator{notices: map[string][]string{}}
}

func (n *recordingNarrator) Narrate(_ *Room, _ *Player, text string) { n.narrations = append(n.narrations, text) }
func (n *recordingNarrator) Notify(p *Player, text string)           { n.notices[p.Name] = append(n.notices[p.Name], text) }
func (n *recordingNarrator) Log(text string)                         { n.logs = append(n.logs, text) }

// fakeRoller replays fixed rolls and picks.
type fakeRoller struct {
	rolls []int
	picks []int
}

func (f *fakeRoller) Roll(lo, _ int) int {
	if len(f.rolls) == 0 {
		return lo
	}
	r := f.rolls[0]
	f.rolls = f.rolls[1:]
	return r
}

func (f *fakeRoller) Pick(_ int) int {
	if len(f.picks) == 0 {
		return 0
	}
	p := f.picks[0]
	f.picks = f.picks[1:]
	return p
}

type captureSink struct {
	deltas []domain.RowDelta
}

func (c *captureSink) Emit(d domain.RowDelta) { c.deltas = append(c.deltas, d) }

type testWorld struct {
	prefabs  map[string]*domain.Prefab
	reg      *Registry
	engine   *Engine
	narrator *recordingNarrator
	roller   *fakeRoller
	sink     *captureSink
	baseline map[domain.RowTable][]domain.RowRecord
	kitchen  *Room
	hallway  *Room
	floor    *Fixture
	closet   *Fixture
	safe     *Puzzle
	vivian   *Player
	kyra     *Player
	stranger *Player
}

// newTestWorld builds a kitchen with a FLOOR and a small CLOSET, Vivian and Kyra in it,
// and a stranger in the hallway.
func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	w := &testWorld{
		prefabs:  testPrefabs(),
		reg:      NewRegistry(domain.DefaultRowOffset),
		narrator: newRecordingNarrator(),
		roller:   &fakeRoller{},
		sink:     &captureSink{},
	}
	w.kitchen = NewRoom("kitchen")
	w.hallway = NewRoom("hallway")
	w.reg.AddRoom(w.kitchen)
	w.reg.AddRoom(w.hallway)
	w.floor = NewFixture(w.kitchen, "FLOOR", "on", 0, true)
	w.closet = NewFixture(w.kitchen, "CLOSET", "in", 5, true)
	w.safe = NewPuzzle(w.kitchen, "SAFE", nil, 4, true)

	w.vivian = w.addPlayer("Vivian", w.kitchen, PronounsFemale)
	w.kyra = w.addPlayer("Kyra", w.kitchen, PronounsNeutral)
	w.stranger = w.addPlayer("Stranger", w.hallway, PronounsMale)

	r := w.prefabs
	w.engine = NewEngine(w.reg, newFakeRecipes(
		&domain.Recipe{Ingredients: [2]*domain.Prefab{r["BREAD"], r["KNIFE"]}, Products: []*domain.Prefab{r["SLICED BREAD"], r["KNIFE"]}},
		&domain.Recipe{Ingredients: [2]*domain.Prefab{r["BULLET"], r["GUN"]}, Products: []*domain.Prefab{r["LOADED GUN"]}, Uncraftable: true},
	), w.narrator, WithRoller(w.roller))
	return w
}

func (w *testWorld) addPlayer(name string, room *Room, pronouns Pronouns) *Player {
	p := NewPlayer(name, testEquipmentSlots)
	p.Room = room
	p.Pronouns = pronouns
	w.reg.AddPlayer(p)
	return p
}

// record snapshots both tables, clears narration and starts capturing deltas; call after seeding.
func (w *testWorld) record() {
	w.baseline = map[domain.RowTable][]domain.RowRecord{
		domain.TableItems:     w.reg.World.Records(),
		domain.TableInventory: w.reg.Held.Records(),
	}
	w.sink.deltas = nil
	*w.narrator = *newRecordingNarrator()
	w.reg.SetSink(w.sink)
}

// assertReplay checks that applying every captured delta to the baseline reproduces both tables.
func (w *testWorld) assertReplay(t *testing.T) {
	t.Helper()
	require.Equal(t, w.reg.World.Records(), replay(w.baseline[domain.TableItems], w.sink.deltas, domain.TableItems))
	require.Equal(t, w.reg.Held.Records(), replay(w.baseline[domain.TableInventory], w.sink.deltas, domain.TableInventory))
}

func (w *testWorld) world(t *testing.T, prefab string, qty int, dest Container, slot string) *WorldItem {
	t.Helper()
	it, err := w.reg.LoadWorldItem(Seed{Prefab: w.prefabs[prefab], Quantity: qty}, dest, slot)
	require.NoError(t, err)
	return it
}

func (w *testWorld) held(t *testing.T, p *Player, prefab string, qty int, dest Container, slot string) *HeldItem {
	t.Helper()
	it, err := w.reg.LoadHeldItem(Seed{Prefab: w.prefabs[prefab], Quantity: qty}, p, dest, slot)
	require.NoError(t, err)
	return it
}

// toolbox seeds the tool box scenario on the kitchen floor.
func (w *testWorld) toolbox(t *testing.T) *WorldItem {
	t.Helper()
	box := w.world(t, "TOOL BOX", 1, w.floor, "")
	w.world(t, "SCREWDRIVER", 4, box, "")
	w.world(t, "HAMMER", 2, box, "")
	w.world(t, "WRENCH", 4, box, "")
	skirt := w.world(t, "SKIRT", 1, box, "")
	w.world(t, "HAMMER", 1, skirt, "LEFT POCKET")
	w.world(t, "HAMMER", 1, skirt, "RIGHT POCKET")
	return box
}

// satchel seeds Vivian holding a satchel with a laptop and a small bag holding a wrench.
func (w *testWorld) satchel(t *testing.T) (*HeldItem, *HeldItem) {
	t.Helper()
	satchel := w.held(t, w.vivian, "SATCHEL", 1, w.vivian, "RIGHT HAND")
	w.held(t, w.vivian, "LAPTOP", 1, satchel, "")
	bag := w.held(t, w.vivian, "SMALL BAG", 1, satchel, "")
	w.held(t, w.vivian, "WRENCH", 1, bag, "")
	return satchel, bag
}

// assertConsistent recomputes every aggregate from scratch and checks the engine's cached values
// along with row contiguity and registry membership.
func assertConsistent(t *testing.T, reg *Registry) {
	t.Helper()
	var checkSlot func(s *Slot) (int, int)
	var weightOf func(e Entity) int
	weightOf = func(e Entity) int {
		b := e.Base()
		w := b.Prefab.Weight * b.Quantity
		for _, s := range b.OwnSlots {
			_, sw := checkSlot(s)
			w += sw
		}
		require.Equal(t, w, e.TotalWeight(), "total weight of %s", b.Label())
		_, ok := reg.Item(b.ID)
		require.True(t, ok, "%s registered", b.Label())
		return w
	}
	checkSlot = func(s *Slot) (int, int) {
		space, weight := 0, 0
		for _, e := range s.Items {
			require.Same(t, s, e.Base().slot)
			space += e.Base().Prefab.Size * e.Base().Quantity
			weight += weightOf(e)
		}
		require.Equal(t, space, s.OccupiedSpace, "occupied space of %s", s.Name)
		require.Equal(t, weight, s.Weight, "weight of %s", s.Name)
		if !s.Unbounded() {
			require.LessOrEqual(t, s.OccupiedSpace, s.Capacity, "capacity of %s", s.Name)
		}
		if s.Equipped != nil {
			require.True(t, s.Contains(s.Equipped))
		}
		return space, weight
	}
	for _, room := range reg.Rooms() {
		for _, s := range room.Slots() {
			checkSlot(s)
		}
		for _, f := range room.Fixtures {
			checkSlot(f.slot)
		}
		for _, p := range room.Puzzles {
			checkSlot(p.slot)
		}
	}
	for _, p := range reg.Players() {
		carry := 0
		for _, s := range p.Slots() {
			_, w := checkSlot(s)
			carry += w
		}
		require.Equal(t, carry, p.CarryWeight, "carry weight of %s", p.Name)
	}
	require.True(t, reg.World.Contiguous())
	require.True(t, reg.Held.Contiguous())
}

// replay applies captured deltas to a plain slice of records, the way a row store would.
func replay(base []domain.RowRecord, deltas []domain.RowDelta, table domain.RowTable) []domain.RowRecord {
	out := make([]domain.RowRecord, 0, len(base))
	out = append(out, base...)
	for _, d := range deltas {
		if d.Table != table {
			continue
		}
		idx := d.Row - domain.DefaultRowOffset
		switch d.Op {
		case domain.RowInsert:
			out = append(out, domain.RowRecord{})
			copy(out[idx+1:], out[idx:])
			out[idx] = d.Record
		case domain.RowUpdate:
			out[idx] = d.Record
		case domain.RowDelete:
			out = append(out[:idx], out[idx+1:]...)
		}
	}
	for i := range out {
		out[i].Row = i + domain.DefaultRowOffset
	}
	return out
}

func hasLine(lines []string, substr string) bool {
	for _, l := range lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

var _ rows.Sink = (*captureSink)(nil)
