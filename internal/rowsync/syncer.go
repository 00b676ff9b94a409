package rowsync

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/AlterEgo_Go/internal/domain"
	"github.com/osse101/AlterEgo_Go/internal/logger"
	"github.com/osse101/AlterEgo_Go/internal/metrics"
	"github.com/osse101/AlterEgo_Go/internal/repository"
	"github.com/osse101/AlterEgo_Go/internal/rows"
	"github.com/osse101/AlterEgo_Go/internal/worker"
)

// Reporter receives a line for the moderators whenever a delta fails to persist.
type Reporter interface {
	Log(text string)
}

// Syncer implements rows.Sink. Deltas are applied to the store by a single
// worker, so they land in the order the ledgers emitted them. A failed delta is
// reported and skipped; memory is never rolled back.
type Syncer struct {
	store    repository.RowStore
	pool     *worker.Pool
	reporter Reporter
}

var _ rows.Sink = (*Syncer)(nil)

// applyError carries the delta that failed so the error handler can describe it.
type applyError struct {
	delta domain.RowDelta
	err   error
}

func (e *applyError) Error() string {
	return fmt.Sprintf(MsgPersistenceFailedFmt, e.delta.Op, e.delta.Row, e.delta.Table, e.err)
}

func (e *applyError) Unwrap() error { return e.err }

// New creates a syncer writing to store. queueSize <= 0 uses DefaultQueueSize.
func New(ctx context.Context, store repository.RowStore, reporter Reporter, queueSize int) *Syncer {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	s := &Syncer{store: store, reporter: reporter}
	s.pool = worker.NewPool(1, queueSize,
		worker.WithContext(ctx),
		worker.WithErrorHandler(s.onError),
	)
	return s
}

// Snapshot overwrites the store with the current contents of each ledger.
// Call it before Start, after the world is loaded.
func (s *Syncer) Snapshot(ctx context.Context, ledgers ...*rows.Ledger) error {
	for _, l := range ledgers {
		records := l.Records()
		if err := s.store.Replace(ctx, l.Table(), records); err != nil {
			return fmt.Errorf(ErrFmtSnapshot, l.Table(), err)
		}
		logger.FromContext(ctx).Info(LogMsgSnapshotWritten, "table", l.Table(), "rows", len(records))
	}
	return nil
}

// Start begins applying deltas.
func (s *Syncer) Start() {
	s.pool.Start()
}

// Stop applies every delta already emitted and then returns.
func (s *Syncer) Stop() {
	s.pool.Stop()
}

// Pending returns the number of deltas not yet handed to the store.
func (s *Syncer) Pending() int {
	return s.pool.Depth()
}

// Emit implements rows.Sink.
func (s *Syncer) Emit(delta domain.RowDelta) {
	metrics.RecordDelta(delta)
	ok := s.pool.Enqueue(worker.JobFunc(func(ctx context.Context) error {
		if err := s.store.Apply(ctx, delta); err != nil {
			return &applyError{delta: delta, err: err}
		}
		return nil
	}))
	if !ok {
		logger.FromContext(context.Background()).Warn(LogMsgDeltaDropped,
			"table", delta.Table, "op", delta.Op, "row", delta.Row)
	}
}

func (s *Syncer) onError(ctx context.Context, err error) {
	metrics.PersistenceErrors.Inc()
	logger.FromContext(ctx).Error(LogMsgPersistenceFailed, "error", err)

	var ae *applyError
	if s.reporter != nil && errors.As(err, &ae) {
		s.reporter.Log(ae.Error())
	}
}
