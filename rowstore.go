package gendb

import "iter"

const storeChunkSize = 256

// Store is an append-only collection of rows of one generated type.
//
// Rows are stored in fixed-capacity chunks and never move once
// inserted, so the *Row returned by Add stays valid across any number
// of later insertions. Indexes rely on this: they hold row pointers,
// not copies. Clear discards all rows and invalidates every previously
// returned pointer; indexes over the store must be cleared in lockstep
// (Table does this).
//
// The zero value is an empty store ready to use.
type Store[Row any] struct {
	chunks [][]Row
	count  int
}

// Add appends a copy of row and returns a pointer to the stored copy,
// valid until Clear.
func (s *Store[Row]) Add(row Row) *Row {
	last := len(s.chunks) - 1
	if last < 0 || len(s.chunks[last]) == cap(s.chunks[last]) {
		s.chunks = append(s.chunks, make([]Row, 0, storeChunkSize))
		last++
	}
	// Appending within a chunk's fixed capacity never reallocates, so
	// pointers into earlier positions stay valid.
	s.chunks[last] = append(s.chunks[last], row)
	s.count++
	c := s.chunks[last]
	return &c[len(c)-1]
}

// Len returns the number of rows.
func (s *Store[Row]) Len() int {
	return s.count
}

// At returns a pointer to the i-th row in insertion order.
func (s *Store[Row]) At(i int) *Row {
	if i < 0 || i >= s.count {
		panic("gendb: row index out of range")
	}
	return &s.chunks[i/storeChunkSize][i%storeChunkSize]
}

// All iterates over the rows in insertion order. Each iteration starts
// at the first row. Rows added while iterating are visited; Clear while
// iterating is not allowed.
func (s *Store[Row]) All() iter.Seq[*Row] {
	return func(yield func(*Row) bool) {
		for i := 0; i < s.count; i++ {
			if !yield(s.At(i)) {
				return
			}
		}
	}
}

// Clear discards all rows. Every pointer previously returned by Add,
// At or All becomes stale and must not be used to reach the store's
// contents again.
func (s *Store[Row]) Clear() {
	s.chunks = nil
	s.count = 0
}
