package gendb

// UniqueIndex maps a projected key to a single row pointer. Generated
// container code maintains one per primary_key or unique column,
// calling Put on every added row.
//
// The zero value is an empty index ready to use.
type UniqueIndex[K comparable, Row any] struct {
	byKey map[K]*Row
}

// Put maps key to row. Putting an already-used key silently replaces
// the previous mapping (last write wins); the schema generator is
// expected to feed unique values, and this layer does not police that.
func (ix *UniqueIndex[K, Row]) Put(key K, row *Row) {
	if ix.byKey == nil {
		ix.byKey = make(map[K]*Row)
	}
	ix.byKey[key] = row
}

// Get returns the row mapped to key, or nil if the key is absent.
// Absence is a normal outcome, not an error.
func (ix *UniqueIndex[K, Row]) Get(key K) *Row {
	return ix.byKey[key]
}

// Contains reports whether key is mapped.
func (ix *UniqueIndex[K, Row]) Contains(key K) bool {
	_, ok := ix.byKey[key]
	return ok
}

// Len returns the number of distinct keys.
func (ix *UniqueIndex[K, Row]) Len() int {
	return len(ix.byKey)
}

// Clear removes all mappings.
func (ix *UniqueIndex[K, Row]) Clear() {
	clear(ix.byKey)
}

// GroupIndex maps a key to all rows sharing it, in insertion order.
// Generated container code maintains one per foreign_key or plain index
// column, calling Add on every added row; looking up a foreign key then
// yields every referencing row.
//
// The zero value is an empty index ready to use.
type GroupIndex[K comparable, Row any] struct {
	byKey map[K][]*Row
}

// Add appends row to the group for key, creating the group if needed.
func (ix *GroupIndex[K, Row]) Add(key K, row *Row) {
	if ix.byKey == nil {
		ix.byKey = make(map[K][]*Row)
	}
	ix.byKey[key] = append(ix.byKey[key], row)
}

// Get returns the rows sharing key in insertion order, or a nil slice
// if the key is unused; an unused key is never an error. The returned
// slice is the index's own storage and must be treated as read-only.
func (ix *GroupIndex[K, Row]) Get(key K) []*Row {
	return ix.byKey[key]
}

// Contains reports whether any row was added under key.
func (ix *GroupIndex[K, Row]) Contains(key K) bool {
	_, ok := ix.byKey[key]
	return ok
}

// Len returns the number of distinct keys.
func (ix *GroupIndex[K, Row]) Len() int {
	return len(ix.byKey)
}

// Clear removes all groups.
func (ix *GroupIndex[K, Row]) Clear() {
	clear(ix.byKey)
}
