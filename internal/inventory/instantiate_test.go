package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AlterEgo_Go/internal/domain"
)

func TestInstantiate(t *testing.T) {
	t.Run("world container", func(t *testing.T) {
		w := newTestWorld(t)
		w.record()

		res, err := w.engine.Instantiate(context.Background(), w.prefabs["HAMMER"], w.closet, "", 2, "")
		require.NoError(t, err)
		assert.Equal(t, "Instantiated 2 HAMMER in CLOSET.", res.Message)
		assert.Equal(t, 2, w.closet.Slot("").OccupiedSpace)
		assert.Equal(t, 4, w.closet.Slot("").Weight)
		assert.Equal(t, []string{"Instantiated 2 HAMMER in CLOSET"}, w.narrator.logs)
		assertConsistent(t, w.reg)
		w.assertReplay(t)
	})

	t.Run("containers get numbered identifiers", func(t *testing.T) {
		w := newTestWorld(t)
		w.record()

		first, err := w.engine.Instantiate(context.Background(), w.prefabs["SATCHEL"], w.floor, "", 1, "")
		require.NoError(t, err)
		second, err := w.engine.Instantiate(context.Background(), w.prefabs["SATCHEL"], w.floor, "", 1, "")
		require.NoError(t, err)
		named, err := w.engine.Instantiate(context.Background(), w.prefabs["SATCHEL"], w.floor, "", 1, "GRANDMA'S SATCHEL")
		require.NoError(t, err)

		assert.Equal(t, "SATCHEL 1", first.Item.Base().Label())
		assert.Equal(t, "SATCHEL 2", second.Item.Base().Label())
		assert.Equal(t, "GRANDMA'S SATCHEL", named.Item.Base().Label())
		w.assertReplay(t)
	})

	t.Run("merges into an existing stack", func(t *testing.T) {
		w := newTestWorld(t)
		stack := w.world(t, "SCREWDRIVER", 2, w.floor, "")
		w.record()

		res, err := w.engine.Instantiate(context.Background(), w.prefabs["SCREWDRIVER"], w.floor, "", 3, "")
		require.NoError(t, err)
		assert.Same(t, stack, res.Item)
		assert.Equal(t, 5, stack.Quantity)
		assert.Len(t, w.floor.Slot("").Items, 1)
		w.assertReplay(t)
	})

	t.Run("equipment slot", func(t *testing.T) {
		w := newTestWorld(t)
		w.record()

		res, err := w.engine.Instantiate(context.Background(), w.prefabs["SATCHEL"], w.vivian, "JACKET", 1, "")
		require.NoError(t, err)
		held, ok := res.Item.(*HeldItem)
		require.True(t, ok)
		assert.Same(t, w.vivian, held.Player())
		assert.Same(t, held, w.vivian.Slot("JACKET").Equipped)
		assert.Equal(t, 6, w.vivian.CarryWeight)
		assert.Equal(t, "Instantiated 1 SATCHEL in JACKET of Vivian.", res.Message)
		w.assertReplay(t)
	})

	t.Run("inside a held item", func(t *testing.T) {
		w := newTestWorld(t)
		satchel, _ := w.satchel(t)
		w.record()

		res, err := w.engine.Instantiate(context.Background(), w.prefabs["SCREWDRIVER"], satchel, "", 1, "")
		require.NoError(t, err)
		assert.Same(t, w.vivian, res.Item.(*HeldItem).Player())
		assert.Equal(t, 12, satchel.TotalWeight())
		assert.Equal(t, 12, w.vivian.CarryWeight)
		assertConsistent(t, w.reg)
		w.assertReplay(t)
	})
}

func TestInstantiate_Rejections(t *testing.T) {
	w := newTestWorld(t)
	satchel, _ := w.satchel(t)
	w.record()
	ctx := context.Background()

	tests := []struct {
		name    string
		prefab  string
		dest    Container
		slot    string
		qty     int
		kind    error
		message string
	}{
		{"zero quantity", "HAMMER", w.closet, "", 0, domain.ErrInvalidState, MsgInvalidQuantity},
		{"closet full", "LAPTOP", w.closet, "", 2, domain.ErrCapacityExceeded, "LAPTOP will not fit in CLOSET because there isn't enough space left."},
		{"occupied equipment slot", "HAMMER", w.vivian, "RIGHT HAND", 1, domain.ErrInvalidState, "Cannot equip items to RIGHT HAND because SATCHEL is already equipped to it."},
		{"unknown equipment slot", "HAMMER", w.vivian, "TAIL", 1, domain.ErrNotFound, `Couldn't find equipment slot "TAIL".`},
		{"too heavy for the player", "ANVIL", w.vivian, "LEFT HAND", 1, domain.ErrCapacityExceeded, "You try to take an ANVIL, but it is too heavy."},
		{"no room left in the held container", "SATCHEL", satchel, "", 1, domain.ErrCapacityExceeded, "SATCHEL will not fit in SATCHEL because there isn't enough space left."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := w.engine.Instantiate(ctx, w.prefabs[tt.prefab], tt.dest, tt.slot, tt.qty, "")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
			assert.Equal(t, tt.message, domain.PlayerMessage(err))
		})
	}
	assert.Empty(t, w.sink.deltas)
}

func TestDestroy(t *testing.T) {
	t.Run("part of a stack", func(t *testing.T) {
		w := newTestWorld(t)
		box := w.toolbox(t)
		w.record()
		screwdrivers := box.Slots()[0].Items[0].(*WorldItem)

		res, err := w.engine.Destroy(context.Background(), screwdrivers, 3)
		require.NoError(t, err)
		assert.Equal(t, "Destroyed 3 SCREWDRIVER.", res.Message)
		assert.Equal(t, 1, screwdrivers.Quantity)
		assert.Equal(t, 23, box.TotalWeight())
		assert.Equal(t, 11, box.Slots()[0].OccupiedSpace)
		assert.Equal(t, []string{"Destroyed 3 SCREWDRIVER from TOOL BOX"}, w.narrator.logs)
		assertConsistent(t, w.reg)
		w.assertReplay(t)
	})

	t.Run("whole container with contents", func(t *testing.T) {
		w := newTestWorld(t)
		box := w.toolbox(t)
		w.record()

		_, err := w.engine.Destroy(context.Background(), box, 5)
		require.NoError(t, err)
		assert.Empty(t, w.reg.RoomItems(w.kitchen))
		assert.Equal(t, 0, w.reg.World.Len())
		assert.Equal(t, 0, w.floor.Slot("").Weight)
		assertConsistent(t, w.reg)
		w.assertReplay(t)
	})

	t.Run("equipped item blanks its slot", func(t *testing.T) {
		w := newTestWorld(t)
		satchel, _ := w.satchel(t)
		w.record()

		_, err := w.engine.Destroy(context.Background(), satchel, 1)
		require.NoError(t, err)
		assert.True(t, w.vivian.Slot("RIGHT HAND").Free())
		assert.Equal(t, 0, w.vivian.CarryWeight)
		assert.Equal(t, 3*len(testEquipmentSlots), w.reg.Held.Len())
		assertConsistent(t, w.reg)
		w.assertReplay(t)
	})

	t.Run("rejects a non-positive quantity", func(t *testing.T) {
		w := newTestWorld(t)
		box := w.toolbox(t)
		_, err := w.engine.Destroy(context.Background(), box, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})
}
