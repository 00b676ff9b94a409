package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/AlterEgo_Go/internal/domain"
	"github.com/osse101/AlterEgo_Go/internal/repository"
)

// RowRepository implements repository.RowStore on the item_rows table.
// Every delta is applied in one transaction and journaled in row_deltas.
type RowRepository struct {
	db     *pgxpool.Pool
	offset int
}

var _ repository.RowStore = (*RowRepository)(nil)

// NewRowRepository creates a row store whose first data row is offset.
func NewRowRepository(db *pgxpool.Pool, offset int) *RowRepository {
	return &RowRepository{db: db, offset: offset}
}

// Apply implements repository.RowStore.
func (r *RowRepository) Apply(ctx context.Context, delta domain.RowDelta) error {
	if !repository.ValidTable(delta.Table) {
		return fmt.Errorf("%w: %q", repository.ErrUnknownTable, delta.Table)
	}

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var count int
		if err := tx.QueryRow(ctx, queryCountRows, string(delta.Table)).Scan(&count); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToCountRows, err)
		}
		last := r.offset + count - 1

		switch delta.Op {
		case domain.RowInsert:
			if delta.Row < r.offset || delta.Row > last+1 {
				return fmt.Errorf("%w: insert at %d with %d rows", repository.ErrRowOutOfRange, delta.Row, count)
			}
			if _, err := tx.Exec(ctx, queryShiftDown, string(delta.Table), delta.Row); err != nil {
				return fmt.Errorf("%s: %w", ErrMsgFailedToShiftRows, err)
			}
			if _, err := tx.Exec(ctx, queryInsertRow, rowArgs(delta.Table, delta.Row, delta.Record)...); err != nil {
				return fmt.Errorf("%s: %w", ErrMsgFailedToInsertRow, err)
			}
		case domain.RowUpdate:
			tag, err := tx.Exec(ctx, queryUpdateRow, rowArgs(delta.Table, delta.Row, delta.Record)...)
			if err != nil {
				return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateRow, err)
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("%w: update at %d with %d rows", repository.ErrRowOutOfRange, delta.Row, count)
			}
		case domain.RowDelete:
			tag, err := tx.Exec(ctx, queryDeleteRow, string(delta.Table), delta.Row)
			if err != nil {
				return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteRow, err)
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("%w: delete at %d with %d rows", repository.ErrRowOutOfRange, delta.Row, count)
			}
			if _, err := tx.Exec(ctx, queryShiftUp, string(delta.Table), delta.Row); err != nil {
				return fmt.Errorf("%s: %w", ErrMsgFailedToShiftRows, err)
			}
		default:
			return fmt.Errorf("%w: %q", repository.ErrUnknownOp, delta.Op)
		}

		payload, err := json.Marshal(delta.Record)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, queryJournalDelta, string(delta.Table), string(delta.Op), delta.Row, payload); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToJournalDelta, err)
		}
		return nil
	})
}

// Replace implements repository.RowStore with a bulk COPY.
func (r *RowRepository) Replace(ctx context.Context, table domain.RowTable, records []domain.RowRecord) error {
	if !repository.ValidTable(table) {
		return fmt.Errorf("%w: %q", repository.ErrUnknownTable, table)
	}

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, queryClearTable, string(table)); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToClearTable, err)
		}
		rows := make([][]any, len(records))
		for i, rec := range records {
			rows[i] = rowArgs(table, i+r.offset, rec)
		}
		if _, err := tx.CopyFrom(ctx, pgx.Identifier{tableItemRows}, rowColumns, pgx.CopyFromRows(rows)); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToCopyRows, err)
		}
		return nil
	})
}

// Records implements repository.RowStore.
func (r *RowRepository) Records(ctx context.Context, table domain.RowTable) ([]domain.RowRecord, error) {
	if !repository.ValidTable(table) {
		return nil, fmt.Errorf("%w: %q", repository.ErrUnknownTable, table)
	}

	rows, err := r.db.Query(ctx, querySelectRows, string(table))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRows, err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RowRecord, error) {
		var rec domain.RowRecord
		err := row.Scan(
			&rec.Row,
			&rec.Group,
			&rec.PrefabID,
			&rec.Identifier,
			&rec.EquipmentSlot,
			&rec.ContainerName,
			&rec.Slot,
			&rec.Quantity,
			&rec.Uses,
			&rec.Weight,
			&rec.Description,
		)
		return rec, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRows, err)
	}
	return out, nil
}

// JournalLen returns how many deltas have been journaled for table.
func (r *RowRepository) JournalLen(ctx context.Context, table domain.RowTable) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, queryCountJournal, string(table)).Scan(&n)
	return n, err
}

// Close is a no-op; the pool is owned by the caller.
func (r *RowRepository) Close() error { return nil }

func rowArgs(table domain.RowTable, row int, rec domain.RowRecord) []any {
	return []any{
		string(table),
		row,
		rec.Group,
		rec.PrefabID,
		rec.Identifier,
		rec.EquipmentSlot,
		rec.ContainerName,
		rec.Slot,
		rec.Quantity,
		rec.Uses,
		rec.Weight,
		rec.Description,
	}
}
