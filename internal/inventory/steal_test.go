package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AlterEgo_Go/internal/domain"
)

// stealWorld gives Kyra a worn satchel holding three screwdrivers and a discreet note.
func stealWorld(t *testing.T) (*testWorld, *HeldItem, *HeldItem) {
	t.Helper()
	w := newTestWorld(t)
	satchel := w.held(t, w.kyra, "SATCHEL", 1, w.kyra, "JACKET")
	screwdrivers := w.held(t, w.kyra, "SCREWDRIVER", 3, satchel, "")
	w.held(t, w.kyra, "NOTE", 1, satchel, "")
	w.record()
	return w, satchel, screwdrivers
}

func TestSteal_Bands(t *testing.T) {
	w := newTestWorld(t)
	failMax, partialMax := w.engine.bands()
	assert.Equal(t, 2, failMax)
	assert.Equal(t, 4, partialMax)
	assert.Equal(t, 0, w.engine.statModifier(5))
	assert.Equal(t, 3, w.engine.statModifier(10))
}

func TestSteal_Failure(t *testing.T) {
	w, satchel, screwdrivers := stealWorld(t)
	w.roller.rolls = []int{2}

	res, err := w.engine.Steal(context.Background(), w.vivian, "", w.kyra, satchel, "")
	require.NoError(t, err)
	assert.Equal(t, StealFailed, res.Outcome)
	assert.Nil(t, res.Item)
	assert.Equal(t, "You try to steal a SCREWDRIVER from Kyra's SATCHEL, but they notice you before you can.", res.Message)
	assert.Equal(t, []string{"Vivian attempts to steal a SCREWDRIVER from your SATCHEL, but you notice in time!"}, w.narrator.notices["Kyra"])
	assert.Equal(t, 3, screwdrivers.Quantity)
	assert.Empty(t, w.sink.deltas)
	assert.Equal(t, []string{"Vivian failed to steal SCREWDRIVER from Kyra"}, w.narrator.logs)
}

func TestSteal_Noticed(t *testing.T) {
	w, satchel, screwdrivers := stealWorld(t)
	w.roller.rolls = []int{6}

	res, err := w.engine.Steal(context.Background(), w.vivian, "LEFT HAND", w.kyra, satchel, "SATCHEL")
	require.NoError(t, err)
	assert.Equal(t, StealNoticed, res.Outcome, "visible items cap at the partial band")
	assert.Equal(t, "You steal a SCREWDRIVER from Kyra's SATCHEL, but they seem to notice.", res.Message)
	assert.Equal(t, []string{"Vivian steals a SCREWDRIVER from your SATCHEL!"}, w.narrator.notices["Kyra"])
	assert.Equal(t, []string{"Vivian steals a SCREWDRIVER from Kyra's SATCHEL."}, w.narrator.narrations)

	assert.Equal(t, 2, screwdrivers.Quantity)
	stolen := w.vivian.Slot("LEFT HAND").Equipped.(*HeldItem)
	assert.Same(t, stolen, res.Item)
	assert.Equal(t, 1, stolen.Quantity)
	assert.Equal(t, 1, w.vivian.CarryWeight)
	assert.Equal(t, 8, w.kyra.CarryWeight)
	assertConsistent(t, w.reg)
	w.assertReplay(t)
}

func TestSteal_DexterityRaisesTheRoll(t *testing.T) {
	w, satchel, _ := stealWorld(t)
	w.vivian.Dexterity = 10
	w.roller.rolls = []int{1}

	res, err := w.engine.Steal(context.Background(), w.vivian, "", w.kyra, satchel, "")
	require.NoError(t, err)
	assert.Equal(t, StealNoticed, res.Outcome)
}

func TestSteal_ThiefTakesDiscreetItemSilently(t *testing.T) {
	w, satchel, _ := stealWorld(t)
	w.vivian.SetAttribute(domain.AttributeThief, true)
	w.roller.picks = []int{0, 3}

	res, err := w.engine.Steal(context.Background(), w.vivian, "", w.kyra, satchel, "")
	require.NoError(t, err)
	assert.Equal(t, StealSilent, res.Outcome)
	assert.Equal(t, "You steal a NOTE from Kyra's SATCHEL without them noticing!", res.Message)
	assert.Empty(t, w.narrator.notices["Kyra"])
	assert.Empty(t, w.narrator.narrations)
	assert.Equal(t, "NOTE", res.Item.Base().Prefab.ID)
	assert.Len(t, satchel.OwnSlots[0].Items, 1)
	w.assertReplay(t)
}

func TestSteal_UnconsciousVictimNeverNotices(t *testing.T) {
	w, satchel, _ := stealWorld(t)
	w.kyra.SetAttribute(domain.AttributeUnconscious, true)
	w.roller.rolls = []int{3}

	res, err := w.engine.Steal(context.Background(), w.vivian, "", w.kyra, satchel, "")
	require.NoError(t, err)
	assert.Equal(t, StealSilent, res.Outcome)
	assert.Empty(t, w.narrator.notices["Kyra"])
}

func TestSteal_MultiSlotWording(t *testing.T) {
	w := newTestWorld(t)
	skirt := w.held(t, w.kyra, "SKIRT", 1, w.kyra, "PANTS")
	w.held(t, w.kyra, "HAMMER", 1, skirt, "LEFT POCKET")
	w.record()
	w.roller.rolls = []int{4}

	res, err := w.engine.Steal(context.Background(), w.vivian, "", w.kyra, skirt, "")
	require.NoError(t, err)
	assert.Equal(t, "You steal a HAMMER from LEFT POCKET of Kyra's SKIRT, but they seem to notice.", res.Message)
	assert.Equal(t, []string{"Vivian steals a HAMMER from LEFT POCKET of your SKIRT!"}, w.narrator.notices["Kyra"])
}

func TestSteal_Rejections(t *testing.T) {
	w, satchel, _ := stealWorld(t)
	empty := w.held(t, w.kyra, "SMALL BAG", 1, w.kyra, "RIGHT HAND")
	mine := w.held(t, w.vivian, "SATCHEL", 1, w.vivian, "JACKET")
	ctx := context.Background()

	_, err := w.engine.Steal(ctx, w.vivian, "", w.vivian, mine, "")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, MsgStealFromSelf, domain.PlayerMessage(err))

	_, err = w.engine.Steal(ctx, w.stranger, "", w.kyra, satchel, "")
	assert.ErrorIs(t, err, domain.ErrPrerequisiteMissing)

	_, err = w.engine.Steal(ctx, w.vivian, "", w.kyra, mine, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Kyra isn't carrying SATCHEL.", domain.PlayerMessage(err))

	_, err = w.engine.Steal(ctx, w.vivian, "", w.kyra, empty, "")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, "There's nothing in SMALL BAG to steal.", domain.PlayerMessage(err))

	_, err = w.engine.Steal(ctx, w.vivian, "", w.kyra, satchel, "LID")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	w.held(t, w.vivian, "HAMMER", 1, w.vivian, "RIGHT HAND")
	w.held(t, w.vivian, "HAMMER", 1, w.vivian, "LEFT HAND")
	_, err = w.engine.Steal(ctx, w.vivian, "", w.kyra, satchel, "")
	assert.ErrorIs(t, err, domain.ErrPrerequisiteMissing)

	assert.Empty(t, w.sink.deltas)
	assert.Empty(t, w.narrator.notices)
}
