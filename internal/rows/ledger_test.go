package rows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AlterEgo_Go/internal/domain"
)

type fakeEntry struct {
	rec domain.RowRecord
	row int
}

func (f *fakeEntry) Record() domain.RowRecord { return f.rec }
func (f *fakeEntry) Row() int                 { return f.row }
func (f *fakeEntry) SetRow(row int)           { f.row = row }

func entry(group, container, prefab string) *fakeEntry {
	return &fakeEntry{rec: domain.RowRecord{Group: group, ContainerName: container, PrefabID: prefab}}
}

type collector struct {
	deltas []domain.RowDelta
}

func (c *collector) Emit(d domain.RowDelta) { c.deltas = append(c.deltas, d) }

func prefabs(l *Ledger) []string {
	var out []string
	for _, r := range l.Records() {
		out = append(out, r.PrefabID)
	}
	return out
}

func TestLedger_LoadEmitsNothing(t *testing.T) {
	c := &collector{}
	l := NewLedger(domain.TableItems, domain.DefaultRowOffset, c)
	a, b := entry("kitchen", "Object: FLOOR", "A"), entry("kitchen", "Object: FLOOR", "B")
	l.Load(a)
	l.Load(b)

	assert.Empty(t, c.deltas)
	assert.Equal(t, 2, a.Row())
	assert.Equal(t, 3, b.Row())
	assert.True(t, l.Contiguous())
}

func TestLedger_InsertPlacement(t *testing.T) {
	tests := []struct {
		name   string
		insert *fakeEntry
		want   []string
		row    int
	}{
		{"after the last row in the same container", entry("kitchen", "Object: FLOOR", "X"), []string{"A", "B", "X", "C", "D"}, 4},
		{"after the last row of the group", entry("kitchen", "Object: CLOSET", "X"), []string{"A", "B", "C", "X", "D"}, 5},
		{"at the end for a new group", entry("cellar", "Object: FLOOR", "X"), []string{"A", "B", "C", "D", "X"}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &collector{}
			l := NewLedger(domain.TableItems, domain.DefaultRowOffset, nil)
			l.Load(entry("kitchen", "Object: FLOOR", "A"))
			l.Load(entry("kitchen", "Object: FLOOR", "B"))
			l.Load(entry("kitchen", "Item: BOX 1/BOX", "C"))
			l.Load(entry("hallway", "Object: FLOOR", "D"))
			l.SetSink(c)

			l.Insert(tt.insert)
			assert.Equal(t, tt.want, prefabs(l))
			assert.True(t, l.Contiguous())
			require.Len(t, c.deltas, 1)
			assert.Equal(t, domain.RowInsert, c.deltas[0].Op)
			assert.Equal(t, tt.row, c.deltas[0].Row)
			assert.Equal(t, tt.row, c.deltas[0].Record.Row)
		})
	}
}

func TestLedger_InsertAfterAndRemove(t *testing.T) {
	c := &collector{}
	l := NewLedger(domain.TableInventory, domain.DefaultRowOffset, c)
	a, b, x := entry("Vivian", "", "A"), entry("Vivian", "", "B"), entry("Vivian", "", "X")
	l.Load(a)
	l.Load(b)

	l.InsertAfter(a, x)
	assert.Equal(t, []string{"A", "X", "B"}, prefabs(l))
	assert.Equal(t, 4, b.Row())

	assert.True(t, l.Remove(a))
	assert.False(t, l.Remove(a))
	assert.Equal(t, []string{"X", "B"}, prefabs(l))
	assert.Equal(t, 2, x.Row())
	assert.True(t, l.Contiguous())

	require.Len(t, c.deltas, 2)
	assert.Equal(t, domain.RowDelete, c.deltas[1].Op)
	assert.Equal(t, 2, c.deltas[1].Row)
	assert.Equal(t, "A", c.deltas[1].Record.PrefabID)
}

func TestLedger_UpdateIgnoresUntracked(t *testing.T) {
	c := &collector{}
	l := NewLedger(domain.TableItems, domain.DefaultRowOffset, c)
	a := entry("kitchen", "", "A")
	l.Load(a)

	l.Update(entry("kitchen", "", "B"))
	assert.Empty(t, c.deltas)

	a.rec.Quantity = 3
	l.Update(a)
	require.Len(t, c.deltas, 1)
	assert.Equal(t, domain.RowUpdate, c.deltas[0].Op)
	assert.Equal(t, 3, c.deltas[0].Record.Quantity)
}

func TestLedger_InsertAtClampsIndex(t *testing.T) {
	l := NewLedger(domain.TableItems, 0, nil)
	l.Load(entry("kitchen", "", "A"))
	l.InsertAt(9, entry("kitchen", "", "B"))
	l.InsertAt(-1, entry("kitchen", "", "C"))
	assert.Equal(t, []string{"A", "B", "C"}, prefabs(l))
	assert.Equal(t, 3, l.Len())
}
