package rowsync

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AlterEgo_Go/internal/domain"
	"github.com/osse101/AlterEgo_Go/internal/repository"
	"github.com/osse101/AlterEgo_Go/internal/rows"
	"github.com/osse101/AlterEgo_Go/internal/testing/leaktest"
)

type logReporter struct {
	mu    sync.Mutex
	lines []string
}

func (r *logReporter) Log(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, text)
}

type entry struct {
	rec domain.RowRecord
	row int
}

func (e *entry) Record() domain.RowRecord { return e.rec }
func (e *entry) Row() int                 { return e.row }
func (e *entry) SetRow(row int)           { e.row = row }

func newEntry(group, prefab string) *entry {
	return &entry{rec: domain.RowRecord{Group: group, PrefabID: prefab, Identifier: prefab, Quantity: 1}}
}

func TestSyncer_MirrorsLedger(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryRowStore(domain.DefaultRowOffset)
	s := New(ctx, store, nil, 0)

	ledger := rows.NewLedger(domain.TableInventory, domain.DefaultRowOffset, nil)
	ledger.Load(newEntry("Kyra", "HAT"))
	ledger.Load(newEntry("Vivian", "HAT"))
	require.NoError(t, s.Snapshot(ctx, ledger))

	ledger.SetSink(s)
	s.Start()

	knife := newEntry("Kyra", "KNIFE")
	ledger.Insert(knife)
	ledger.Insert(newEntry("Vivian", "NOTE"))
	knife.rec.Quantity = 3
	ledger.Update(knife)
	ledger.Remove(ledger.Entries()[0])
	s.Stop()

	got, err := store.Records(ctx, domain.TableInventory)
	require.NoError(t, err)
	assert.Equal(t, ledger.Records(), got)
	assert.Zero(t, s.Pending())
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Apply(ctx context.Context, d domain.RowDelta) error {
	return m.Called(ctx, d).Error(0)
}

func (m *mockStore) Replace(ctx context.Context, table domain.RowTable, records []domain.RowRecord) error {
	return m.Called(ctx, table, records).Error(0)
}

func (m *mockStore) Records(ctx context.Context, table domain.RowTable) ([]domain.RowRecord, error) {
	args := m.Called(ctx, table)
	return args.Get(0).([]domain.RowRecord), args.Error(1)
}

func (m *mockStore) Close() error { return nil }

func TestSyncer_FailureReportedAndSkipped(t *testing.T) {
	store := new(mockStore)
	bad := domain.RowDelta{Table: domain.TableItems, Op: domain.RowInsert, Row: 7}
	good := domain.RowDelta{Table: domain.TableItems, Op: domain.RowUpdate, Row: 2}
	store.On("Apply", mock.Anything, bad).Return(errors.New("connection reset")).Once()
	store.On("Apply", mock.Anything, good).Return(nil).Once()

	reporter := &logReporter{}
	s := New(context.Background(), store, reporter, 4)
	s.Start()
	s.Emit(bad)
	s.Emit(good)
	s.Stop()

	store.AssertExpectations(t)
	require.Len(t, reporter.lines, 1)
	assert.Equal(t, "Failed to save insert of row 7 in items: connection reset", reporter.lines[0])
}

func TestSyncer_SnapshotError(t *testing.T) {
	store := new(mockStore)
	store.On("Replace", mock.Anything, domain.TableItems, mock.Anything).Return(errors.New("disk full"))

	s := New(context.Background(), store, nil, 1)
	err := s.Snapshot(context.Background(), rows.NewLedger(domain.TableItems, domain.DefaultRowOffset, nil))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "snapshot items")
}

func TestSyncer_EmitAfterStopIsDropped(t *testing.T) {
	store := new(mockStore)
	s := New(context.Background(), store, nil, 1)
	s.Start()
	s.Stop()

	s.Emit(domain.RowDelta{Table: domain.TableItems, Op: domain.RowInsert, Row: 2})

	store.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything)
}

func TestSyncer_StopReleasesWorker(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		s := New(context.Background(), repository.NewMemoryRowStore(domain.DefaultRowOffset), nil, 1)
		s.Start()
		s.Emit(domain.RowDelta{Table: domain.TableItems, Op: domain.RowInsert, Row: 2, Record: domain.RowRecord{PrefabID: "KNIFE"}})
		s.Stop()
	})
}
