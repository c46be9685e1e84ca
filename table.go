package gendb

import "iter"

// Clearer is implemented by anything that must be emptied together with
// a table, in practice UniqueIndex and GroupIndex.
type Clearer interface {
	Clear()
}

// Table composes the row store of one schema table with the indexes
// declared for it. The generator emits one container struct per table
// holding a Table plus its indexes, and wires them together like so:
//
//	type Items struct {
//		rows    gendb.Table[Item]
//		byID    gendb.UniqueIndex[uint32, Item]
//		byOwner gendb.GroupIndex[uint32, Item]
//	}
//
//	func NewItems() *Items {
//		c := new(Items)
//		c.rows.Init(func(row *Item) {
//			c.byID.Put(row.ID, row)
//			c.byOwner.Add(row.OwnerID, row)
//		}, &c.byID, &c.byOwner)
//		return c
//	}
//
// AddRow then populates every declared index synchronously, and Clear
// empties the store and all registered indexes in lockstep, so no index
// ever holds a pointer into cleared storage.
//
// Named accessors ("ItemByID") are thin generated wrappers over the
// index methods, not part of this package.
type Table[Row any] struct {
	store    Store[Row]
	indexer  func(*Row)
	clearers []Clearer
}

// Init sets the indexer invoked for every added row, and registers the
// indexes to clear alongside the store. A table with no declared
// indexes needs no Init; the zero value works.
func (t *Table[Row]) Init(indexer func(*Row), indexes ...Clearer) {
	t.indexer = indexer
	t.clearers = indexes
}

// AddRow inserts a copy of row at the end of storage, registers it in
// every declared index, and returns a pointer to the stored copy, valid
// until Clear.
func (t *Table[Row]) AddRow(row Row) *Row {
	p := t.store.Add(row)
	if t.indexer != nil {
		t.indexer(p)
	}
	return p
}

// Count returns the number of rows.
func (t *Table[Row]) Count() int {
	return t.store.Len()
}

// At returns a pointer to the i-th row in insertion order.
func (t *Table[Row]) At(i int) *Row {
	return t.store.At(i)
}

// All iterates over the rows in insertion order.
func (t *Table[Row]) All() iter.Seq[*Row] {
	return t.store.All()
}

// Clear discards all rows and empties every registered index. All row
// pointers previously handed out become stale.
func (t *Table[Row]) Clear() {
	t.store.Clear()
	for _, c := range t.clearers {
		c.Clear()
	}
}
