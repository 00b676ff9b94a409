package bolt

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"github.com/osse101/AlterEgo_Go/internal/domain"
	"github.com/osse101/AlterEgo_Go/internal/repository"
)

// Store keeps each row table in its own bucket, keyed by big-endian row number.
type Store struct {
	db     *bbolt.DB
	offset int
}

var _ repository.RowStore = (*Store)(nil)

// Open opens (or creates) the bolt file at path. offset is the first data row.
func Open(path string, offset int) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New(ErrMsgPathRequired)
	}

	db, err := bbolt.Open(filepath.Clean(path), DefaultFileMode, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenDB, err)
	}

	s := &Store{db: db, offset: offset}
	if err := s.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Apply implements repository.RowStore.
func (s *Store) Apply(ctx context.Context, delta domain.RowDelta) error {
	if err := s.check(ctx, delta.Table); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, delta.Table)
		if err != nil {
			return err
		}
		n := b.Stats().KeyN
		last := s.offset + n - 1

		switch delta.Op {
		case domain.RowInsert:
			if delta.Row < s.offset || delta.Row > last+1 {
				return fmt.Errorf("%w: insert at %d with %d rows", repository.ErrRowOutOfRange, delta.Row, n)
			}
			if err := shift(b, delta.Row, 1); err != nil {
				return err
			}
			return put(b, delta.Row, delta.Record)
		case domain.RowUpdate:
			if b.Get(key(delta.Row)) == nil {
				return fmt.Errorf("%w: update at %d with %d rows", repository.ErrRowOutOfRange, delta.Row, n)
			}
			return put(b, delta.Row, delta.Record)
		case domain.RowDelete:
			if b.Get(key(delta.Row)) == nil {
				return fmt.Errorf("%w: delete at %d with %d rows", repository.ErrRowOutOfRange, delta.Row, n)
			}
			if err := b.Delete(key(delta.Row)); err != nil {
				return err
			}
			return shift(b, delta.Row+1, -1)
		default:
			return fmt.Errorf("%w: %q", repository.ErrUnknownOp, delta.Op)
		}
	})
}

// Replace implements repository.RowStore.
func (s *Store) Replace(ctx context.Context, table domain.RowTable, records []domain.RowRecord) error {
	if err := s.check(ctx, table); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(table)); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
			return err
		}
		b, err := tx.CreateBucket([]byte(table))
		if err != nil {
			return fmt.Errorf(ErrMsgCreateBucket+": %w", table, err)
		}
		for i, r := range records {
			if err := put(b, i+s.offset, r); err != nil {
				return err
			}
		}
		return nil
	})
}

// Records implements repository.RowStore.
func (s *Store) Records(ctx context.Context, table domain.RowTable) ([]domain.RowRecord, error) {
	if err := s.check(ctx, table); err != nil {
		return nil, err
	}

	var out []domain.RowRecord
	err := s.db.View(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, table)
		if err != nil {
			return err
		}
		return b.ForEach(func(k, v []byte) error {
			row := int(binary.BigEndian.Uint64(k))
			var r domain.RowRecord
			if err := json.Unmarshal(v, &r); err != nil {
				return fmt.Errorf(ErrMsgDecodeRecord+": %w", row, err)
			}
			r.Row = row
			out = append(out, r)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) check(ctx context.Context, table domain.RowTable) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return errors.New(ErrMsgNotConfigured)
	}
	if !repository.ValidTable(table) {
		return fmt.Errorf("%w: %q", repository.ErrUnknownTable, table)
	}
	return nil
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, t := range []domain.RowTable{domain.TableItems, domain.TableInventory} {
			if _, err := tx.CreateBucketIfNotExists([]byte(t)); err != nil {
				return fmt.Errorf(ErrMsgCreateBucket+": %w", t, err)
			}
		}
		return nil
	})
}

func bucket(tx *bbolt.Tx, table domain.RowTable) (*bbolt.Bucket, error) {
	b := tx.Bucket([]byte(table))
	if b == nil {
		return nil, fmt.Errorf(ErrMsgBucketMissing, table)
	}
	return b, nil
}

// shift moves every row at or after from by delta. Entries are collected
// first because bolt cursors must not see writes mid-iteration.
func shift(b *bbolt.Bucket, from, delta int) error {
	type kv struct {
		row int
		val []byte
	}
	var moved []kv
	c := b.Cursor()
	start := key(from)
	for k, v := c.Seek(start); k != nil && bytes.Compare(k, start) >= 0; k, v = c.Next() {
		moved = append(moved, kv{row: int(binary.BigEndian.Uint64(k)), val: bytes.Clone(v)})
	}
	for _, m := range moved {
		if err := b.Delete(key(m.row)); err != nil {
			return err
		}
	}
	for _, m := range moved {
		if err := b.Put(key(m.row+delta), m.val); err != nil {
			return err
		}
	}
	return nil
}

func put(b *bbolt.Bucket, row int, r domain.RowRecord) error {
	r.Row = row
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf(ErrMsgMarshalRecord+": %w", row, err)
	}
	return b.Put(key(row), payload)
}

func key(row int) []byte {
	k := make([]byte, keySize)
	binary.BigEndian.PutUint64(k, uint64(row))
	return k
}
