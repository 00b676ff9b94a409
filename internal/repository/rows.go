package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/AlterEgo_Go/internal/domain"
)

// RowStore mirrors the two row tables outside the process.
type RowStore interface {
	// Apply performs one delta: insert shifts later rows down, delete compacts.
	Apply(ctx context.Context, delta domain.RowDelta) error
	// Replace overwrites a whole table, used to snapshot the seeded world.
	Replace(ctx context.Context, table domain.RowTable, records []domain.RowRecord) error
	// Records returns a table in row order.
	Records(ctx context.Context, table domain.RowTable) ([]domain.RowRecord, error)
	Close() error
}

var (
	// ErrRowOutOfRange is returned when a delta addresses a row the table cannot have.
	ErrRowOutOfRange = errors.New("row out of range")
	// ErrUnknownTable is returned for a table other than items or inventory_items.
	ErrUnknownTable = errors.New("unknown row table")
	// ErrUnknownOp is returned for a delta op the store does not understand.
	ErrUnknownOp = errors.New("unknown row op")
)

// ValidTable reports whether t is one of the persisted tables.
func ValidTable(t domain.RowTable) bool {
	return t == domain.TableItems || t == domain.TableInventory
}

// ApplyDelta returns records with delta applied. records[i] must sit at row i + offset.
func ApplyDelta(records []domain.RowRecord, offset int, delta domain.RowDelta) ([]domain.RowRecord, error) {
	idx := delta.Row - offset
	switch delta.Op {
	case domain.RowInsert:
		if idx < 0 || idx > len(records) {
			return nil, fmt.Errorf("%w: insert at %d with %d rows", ErrRowOutOfRange, delta.Row, len(records))
		}
		records = append(records, domain.RowRecord{})
		copy(records[idx+1:], records[idx:])
		records[idx] = delta.Record
	case domain.RowUpdate:
		if idx < 0 || idx >= len(records) {
			return nil, fmt.Errorf("%w: update at %d with %d rows", ErrRowOutOfRange, delta.Row, len(records))
		}
		records[idx] = delta.Record
	case domain.RowDelete:
		if idx < 0 || idx >= len(records) {
			return nil, fmt.Errorf("%w: delete at %d with %d rows", ErrRowOutOfRange, delta.Row, len(records))
		}
		records = append(records[:idx], records[idx+1:]...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, delta.Op)
	}
	for i := range records {
		records[i].Row = i + offset
	}
	return records, nil
}

// MemoryRowStore keeps both tables in process. Used when no database is configured and in tests.
type MemoryRowStore struct {
	mu     sync.Mutex
	offset int
	tables map[domain.RowTable][]domain.RowRecord
}

// NewMemoryRowStore creates an empty store whose first data row is offset.
func NewMemoryRowStore(offset int) *MemoryRowStore {
	return &MemoryRowStore{offset: offset, tables: map[domain.RowTable][]domain.RowRecord{}}
}

// Apply implements RowStore.
func (s *MemoryRowStore) Apply(_ context.Context, delta domain.RowDelta) error {
	if !ValidTable(delta.Table) {
		return fmt.Errorf("%w: %q", ErrUnknownTable, delta.Table)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := ApplyDelta(s.tables[delta.Table], s.offset, delta)
	if err != nil {
		return err
	}
	s.tables[delta.Table] = next
	return nil
}

// Replace implements RowStore.
func (s *MemoryRowStore) Replace(_ context.Context, table domain.RowTable, records []domain.RowRecord) error {
	if !ValidTable(table) {
		return fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.RowRecord, len(records))
	copy(out, records)
	for i := range out {
		out[i].Row = i + s.offset
	}
	s.tables[table] = out
	return nil
}

// Records implements RowStore.
func (s *MemoryRowStore) Records(_ context.Context, table domain.RowTable) ([]domain.RowRecord, error) {
	if !ValidTable(table) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.RowRecord, len(s.tables[table]))
	copy(out, s.tables[table])
	return out, nil
}

// Close implements RowStore.
func (s *MemoryRowStore) Close() error { return nil }
