package gendb

import "testing"

func TestUniqueIndex(t *testing.T) {
	var s Store[rec]
	var ix UniqueIndex[int, rec]

	r1 := s.Add(rec{ID: 1, Name: "one"})
	r2 := s.Add(rec{ID: 2, Name: "two"})
	ix.Put(1, r1)
	ix.Put(2, r2)

	if got := ix.Get(1); got != r1 {
		t.Errorf("Get(1) = %v", got)
	}
	if got := ix.Get(2); got != r2 {
		t.Errorf("Get(2) = %v", got)
	}
	if got := ix.Get(999); got != nil {
		t.Errorf("Get(999) = %v, wanted nil", got)
	}
	if !ix.Contains(1) || ix.Contains(999) {
		t.Errorf("Contains is wrong")
	}
	if ix.Len() != 2 {
		t.Errorf("Len = %d", ix.Len())
	}
}

func TestUniqueIndexLastWriteWins(t *testing.T) {
	var s Store[rec]
	var ix UniqueIndex[int, rec]

	first := s.Add(rec{ID: 1, Name: "first"})
	second := s.Add(rec{ID: 1, Name: "second"})
	ix.Put(1, first)
	ix.Put(1, second)

	if got := ix.Get(1); got != second {
		t.Errorf("Get(1) = %v, wanted the later row", got)
	}
	if ix.Len() != 1 {
		t.Errorf("Len = %d", ix.Len())
	}
}

func TestGroupIndex(t *testing.T) {
	var s Store[rec]
	var ix GroupIndex[string, rec]

	a1 := s.Add(rec{ID: 1})
	a2 := s.Add(rec{ID: 2})
	b1 := s.Add(rec{ID: 3})
	ix.Add("a", a1)
	ix.Add("a", a2)
	ix.Add("b", b1)

	got := ix.Get("a")
	if len(got) != 2 || got[0] != a1 || got[1] != a2 {
		t.Errorf("Get(a) = %v, wanted both rows in insertion order", got)
	}
	if got := ix.Get("b"); len(got) != 1 || got[0] != b1 {
		t.Errorf("Get(b) = %v", got)
	}

	// An unused key yields an empty sequence, never a failure.
	if got := ix.Get("zzz"); len(got) != 0 {
		t.Errorf("Get(zzz) = %v", got)
	}
	if !ix.Contains("a") || ix.Contains("zzz") {
		t.Errorf("Contains is wrong")
	}
	if ix.Len() != 2 {
		t.Errorf("Len = %d", ix.Len())
	}
}

func TestIndexClear(t *testing.T) {
	var s Store[rec]
	var uq UniqueIndex[int, rec]
	var gp GroupIndex[int, rec]

	r := s.Add(rec{ID: 1})
	uq.Put(1, r)
	gp.Add(1, r)
	uq.Clear()
	gp.Clear()

	if uq.Get(1) != nil || uq.Contains(1) || uq.Len() != 0 {
		t.Errorf("unique index not empty after Clear")
	}
	if gp.Get(1) != nil || gp.Contains(1) || gp.Len() != 0 {
		t.Errorf("group index not empty after Clear")
	}
}
