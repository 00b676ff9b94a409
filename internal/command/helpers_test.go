package command

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/AlterEgo_Go/internal/crafting"
	"github.com/osse101/AlterEgo_Go/internal/domain"
	"github.com/osse101/AlterEgo_Go/internal/inventory"
	"github.com/osse101/AlterEgo_Go/internal/item"
	"github.com/osse101/AlterEgo_Go/internal/world"
)

type testCatalog map[string]*domain.Prefab

func (c testCatalog) Get(id string) (*domain.Prefab, bool) {
	p, ok := c[strings.ToUpper(id)]
	return p, ok
}

func (c testCatalog) Candidates() []item.Named {
	out := make([]item.Named, 0, len(c))
	for _, p := range c {
		out = append(out, item.Named{Prefab: p})
	}
	return out
}

func testPrefabs() testCatalog {
	return testCatalog{
		"TOOL BOX": {ID: "TOOL BOX", Name: "TOOL BOX", SingleContainingPhrase: "a TOOL BOX", Size: 4, Weight: 5, Inventory: []domain.SlotDefinition{{Name: "TOOL BOX", Capacity: 20}}},
		"HAMMER":   {ID: "HAMMER", Name: "HAMMER", PluralName: "HAMMERS", SingleContainingPhrase: "a HAMMER", Size: 1, Weight: 2},
		"WRENCH":   {ID: "WRENCH", Name: "WRENCH", SingleContainingPhrase: "a WRENCH", Size: 1, Weight: 2},
		"SKIRT": {ID: "SKIRT", Name: "SKIRT", SingleContainingPhrase: "a SKIRT", Size: 4, Weight: 1, Equippable: true, EquipmentSlots: []string{"PANTS"},
			Inventory: []domain.SlotDefinition{{Name: "RIGHT POCKET", Capacity: 2}, {Name: "LEFT POCKET", Capacity: 2}}},
		"SATCHEL": {ID: "SATCHEL", Name: "SATCHEL", SingleContainingPhrase: "a SATCHEL", Size: 5, Weight: 6, Equippable: true, EquipmentSlots: []string{"JACKET"},
			Inventory: []domain.SlotDefinition{{Name: "SATCHEL", Capacity: 6}}},
		"LAPTOP":       {ID: "LAPTOP", Name: "LAPTOP", SingleContainingPhrase: "a LAPTOP", Size: 3, Weight: 2},
		"BREAD":        {ID: "BREAD", Name: "BREAD", SingleContainingPhrase: "a loaf of BREAD", Size: 1, Weight: 1},
		"SLICED BREAD": {ID: "SLICED BREAD", Name: "SLICED BREAD", SingleContainingPhrase: "some SLICED BREAD", Size: 1, Weight: 1},
		"KNIFE":        {ID: "KNIFE", Name: "KNIFE", SingleContainingPhrase: "a KNIFE", Size: 1, Weight: 1},
	}
}

const testWorld = `
equipment_slots: [HAT, RIGHT HAND, LEFT HAND, JACKET, PANTS]
rooms:
  - name: kitchen
    fixtures:
      - {name: FLOOR, preposition: "on"}
      - {name: CABINET, preposition: in, capacity: 6}
  - name: hallway
players:
  - {name: Vivian, member_id: "1001", room: kitchen, pronouns: female}
  - {name: Kyra, member_id: "1002", room: kitchen, pronouns: female}
  - {name: Amy, room: hallway}
items:
  - {room: kitchen, prefab: TOOL BOX, identifier: TOOL BOX 1, container: "Object: FLOOR"}
  - {room: kitchen, prefab: HAMMER, quantity: 2, container: "Item: TOOL BOX 1/TOOL BOX"}
  - {room: kitchen, prefab: SKIRT, identifier: SKIRT 7, container: "Item: TOOL BOX 1/TOOL BOX"}
  - {room: kitchen, prefab: WRENCH, container: "Object: CABINET"}
  - {room: kitchen, prefab: BREAD}
inventory:
  - {player: Vivian, prefab: SATCHEL, identifier: SATCHEL 1, equipment_slot: JACKET}
  - {player: Vivian, prefab: KNIFE, equipment_slot: LEFT HAND}
  - {player: Kyra, prefab: SATCHEL, identifier: SATCHEL 2, equipment_slot: JACKET}
  - {player: Kyra, prefab: LAPTOP, container: "Item: SATCHEL 2/SATCHEL"}
  - {player: Amy, prefab: KNIFE, equipment_slot: RIGHT HAND}
`

type recordingNarrator struct {
	narrations []string
	notices    map[string][]string
	logs       []string
}

func (n *recordingNarrator) Narrate(_ *inventory.Room, _ *inventory.Player, text string) {
	n.narrations = append(n.narrations, text)
}

func (n *recordingNarrator) Notify(p *inventory.Player, text string) {
	n.notices[p.Name] = append(n.notices[p.Name], text)
}

func (n *recordingNarrator) Log(text string) { n.logs = append(n.logs, text) }

// highRoller always rolls the top of the range and picks the first option.
type highRoller struct{}

func (highRoller) Roll(_, hi int) int { return hi }
func (highRoller) Pick(int) int       { return 0 }

type fixture struct {
	d        *Dispatcher
	reg      *inventory.Registry
	narrator *recordingNarrator
	vivian   *inventory.Player
	kyra     *inventory.Player
	amy      *inventory.Player
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	prefabs := testPrefabs()
	doc, err := world.Parse(strings.NewReader(testWorld))
	require.NoError(t, err)
	reg, err := world.Build(context.Background(), doc, prefabs, domain.DefaultRowOffset)
	require.NoError(t, err)

	book, err := crafting.NewBook(&domain.Recipe{
		Ingredients: [2]*domain.Prefab{prefabs["BREAD"], prefabs["KNIFE"]},
		Products:    []*domain.Prefab{prefabs["SLICED BREAD"], prefabs["KNIFE"]},
	})
	require.NoError(t, err)

	narrator := &recordingNarrator{notices: map[string][]string{}}
	engine := inventory.NewEngine(reg, book, narrator, inventory.WithRoller(highRoller{}))
	return &fixture{
		d:        NewDispatcher(engine, prefabs),
		reg:      reg,
		narrator: narrator,
		vivian:   reg.Player("Vivian"),
		kyra:     reg.Player("Kyra"),
		amy:      reg.Player("Amy"),
	}
}

func (f *fixture) run(t *testing.T, p *inventory.Player, text string) string {
	t.Helper()
	msg, err := f.d.Execute(context.Background(), p, text)
	require.NoError(t, err, msg)
	return msg
}

func (f *fixture) moderate(t *testing.T, text string) string {
	t.Helper()
	msg, err := f.d.ExecuteModerator(context.Background(), text)
	require.NoError(t, err, msg)
	return msg
}

func (f *fixture) hand(p *inventory.Player, name string) *inventory.HeldItem {
	s := p.Slot(name)
	if s == nil || s.Equipped == nil {
		return nil
	}
	return s.Equipped.(*inventory.HeldItem)
}
