package gendb

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

// ErrNoSnapshot is returned by LoadTable when the snapshot file has no
// bucket for the requested table.
var ErrNoSnapshot = errors.New("no snapshot for table")

// SnapshotStore persists populated containers to a bbolt file: one
// bucket per table, rows stored as msgpack values keyed by the row's
// big-endian ordinal, so bucket key order is insertion order.
//
// Snapshots are a local cache of loaded data (e.g. to skip re-parsing
// source CSV on startup); the msgpack encoding here is not part of the
// cross-language wire contract.
type SnapshotStore struct {
	bdb *bbolt.DB
}

// OpenSnapshot opens or creates a snapshot file at path.
func OpenSnapshot(path string, mode os.FileMode) (*SnapshotStore, error) {
	bdb, err := bbolt.Open(path, mode, nil)
	if err != nil {
		return nil, err
	}
	return &SnapshotStore{bdb: bdb}, nil
}

// Close closes the underlying file.
func (s *SnapshotStore) Close() error {
	return s.bdb.Close()
}

// SaveTable writes all of tbl's rows under the named bucket, replacing
// any previous snapshot of that table.
func SaveTable[Row any](snap *SnapshotStore, name string, tbl *Table[Row]) error {
	return snap.bdb.Update(func(btx *bbolt.Tx) error {
		bname := []byte(name)
		if btx.Bucket(bname) != nil {
			if err := btx.DeleteBucket(bname); err != nil {
				return err
			}
		}
		b, err := btx.CreateBucket(bname)
		if err != nil {
			return err
		}

		var ord uint64
		for row := range tbl.All() {
			// Bolt keeps references to key and value bytes until the
			// transaction commits, so each row gets fresh buffers.
			key := make([]byte, 8)
			binary.BigEndian.PutUint64(key, ord)
			ord++
			if err := b.Put(key, encodeSnapshotValue(nil, row)); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadTable clears tbl and repopulates it from the named bucket,
// feeding every row through AddRow so declared indexes rebuild. Rows
// come back in their original insertion order.
func LoadTable[Row any](snap *SnapshotStore, name string, tbl *Table[Row]) error {
	return snap.bdb.View(func(btx *bbolt.Tx) error {
		b := btx.Bucket([]byte(name))
		if b == nil {
			return fmt.Errorf("%w: %s", ErrNoSnapshot, name)
		}
		tbl.Clear()
		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var row Row
			if err := decodeSnapshotValue(v, &row); err != nil {
				return err
			}
			tbl.AddRow(row)
		}
		return nil
	})
}

func encodeSnapshotValue(buf []byte, v any) []byte {
	bb := bytesBuilder{buf}
	enc := msgpack.GetEncoder()
	enc.ResetDict(&bb, nil)
	enc.SetSortMapKeys(true)
	err := enc.Encode(v)
	msgpack.PutEncoder(enc)
	if err != nil {
		panic(fmt.Errorf("failed to encode %T using msgpack: %w", v, err))
	}
	return bb.Buf
}

func decodeSnapshotValue(buf []byte, out any) error {
	var r bytes.Reader
	r.Reset(buf)
	dec := msgpack.GetDecoder()
	dec.ResetDict(&r, nil)
	err := dec.Decode(out)
	msgpack.PutDecoder(dec)
	if err != nil {
		return dataErrf(buf, 0, err, "failed to decode msgpack into %T", out)
	}
	return nil
}
