package rows

import (
	"github.com/osse101/AlterEgo_Go/internal/domain"
)

// Entry is anything that occupies a row: an item instance or an equipment slot.
type Entry interface {
	Record() domain.RowRecord
	Row() int
	SetRow(row int)
}

// Sink receives every delta the ledger emits, in emission order.
type Sink interface {
	Emit(delta domain.RowDelta)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(delta domain.RowDelta)

// Emit calls f(delta).
func (f SinkFunc) Emit(delta domain.RowDelta) {
	f(delta)
}

// Discard drops every delta.
var Discard Sink = SinkFunc(func(domain.RowDelta) {})

// Ledger keeps the entries of one table in row order.
// After every call, entries[i].Row() == i + offset.
type Ledger struct {
	table   domain.RowTable
	offset  int
	sink    Sink
	entries []Entry
}

// NewLedger creates an empty ledger for table whose first data row is offset.
func NewLedger(table domain.RowTable, offset int, sink Sink) *Ledger {
	if sink == nil {
		sink = Discard
	}
	return &Ledger{table: table, offset: offset, sink: sink}
}

// Table returns the table this ledger tracks.
func (l *Ledger) Table() domain.RowTable {
	return l.table
}

// SetSink replaces the delta sink. Used once loading is finished.
func (l *Ledger) SetSink(sink Sink) {
	if sink == nil {
		sink = Discard
	}
	l.sink = sink
}

// Load appends e at the end without emitting a delta. Used when rows already exist in the store.
func (l *Ledger) Load(e Entry) {
	l.entries = append(l.entries, e)
	e.SetRow(len(l.entries) - 1 + l.offset)
}

// Insert places e after the last entry sharing its group and container name,
// else after the last entry of its group, else at the end, and emits one insert delta.
func (l *Ledger) Insert(e Entry) {
	rec := e.Record()
	at := len(l.entries)
	lastGroup := -1
	lastContainer := -1
	for i, existing := range l.entries {
		r := existing.Record()
		if r.Group != rec.Group {
			continue
		}
		lastGroup = i
		if r.ContainerName == rec.ContainerName {
			lastContainer = i
		}
	}
	switch {
	case lastContainer >= 0:
		at = lastContainer + 1
	case lastGroup >= 0:
		at = lastGroup + 1
	}
	l.InsertAt(at, e)
}

// InsertAfter places e directly after anchor, or at the end when anchor is not tracked.
func (l *Ledger) InsertAfter(anchor, e Entry) {
	idx := l.indexOf(anchor)
	if idx < 0 {
		l.InsertAt(len(l.entries), e)
		return
	}
	l.InsertAt(idx+1, e)
}

// InsertAt places e at index and renumbers every following entry.
func (l *Ledger) InsertAt(index int, e Entry) {
	if index < 0 || index > len(l.entries) {
		index = len(l.entries)
	}
	l.entries = append(l.entries, nil)
	copy(l.entries[index+1:], l.entries[index:])
	l.entries[index] = e
	l.renumber(index)
	l.emit(domain.RowInsert, e)
}

// Update emits an update delta for e if it is tracked.
func (l *Ledger) Update(e Entry) {
	if l.indexOf(e) < 0 {
		return
	}
	l.emit(domain.RowUpdate, e)
}

// Remove deletes e, compacts the rows after it and emits one delete delta.
func (l *Ledger) Remove(e Entry) bool {
	idx := l.indexOf(e)
	if idx < 0 {
		return false
	}
	row := e.Row()
	rec := e.Record()
	l.entries = append(l.entries[:idx], l.entries[idx+1:]...)
	l.renumber(idx)
	rec.Row = row
	l.sink.Emit(domain.RowDelta{Table: l.table, Op: domain.RowDelete, Row: row, Record: rec})
	return true
}

// Contains reports whether e is tracked.
func (l *Ledger) Contains(e Entry) bool {
	return l.indexOf(e) >= 0
}

// Len returns the number of tracked rows.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the entries in row order.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Records returns the current persisted form of every row in order.
func (l *Ledger) Records() []domain.RowRecord {
	out := make([]domain.RowRecord, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Record()
		out[i].Row = e.Row()
	}
	return out
}

// Contiguous reports whether every entry sits at index + offset.
func (l *Ledger) Contiguous() bool {
	for i, e := range l.entries {
		if e.Row() != i+l.offset {
			return false
		}
	}
	return true
}

func (l *Ledger) indexOf(e Entry) int {
	for i, existing := range l.entries {
		if existing == e {
			return i
		}
	}
	return -1
}

func (l *Ledger) renumber(from int) {
	for i := from; i < len(l.entries); i++ {
		l.entries[i].SetRow(i + l.offset)
	}
}

func (l *Ledger) emit(op domain.RowOp, e Entry) {
	rec := e.Record()
	rec.Row = e.Row()
	l.sink.Emit(domain.RowDelta{Table: l.table, Op: op, Row: rec.Row, Record: rec})
}
