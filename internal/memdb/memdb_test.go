package memdb

import (
	"bytes"
	"testing"

	"github.com/ony/leveldb-tl/internal/kverrors"
)

func TestMemoryDBBasics(t *testing.T) {
	// S1: Insert ("b","1"),("a","2"),("c","3"). Size=3. Get("b")="1".
	// Forward traversal: ("a","2"),("b","1"),("c","3").
	m := New()
	must(t, m.Put([]byte("b"), []byte("1")))
	must(t, m.Put([]byte("a"), []byte("2")))
	must(t, m.Put([]byte("c"), []byte("3")))

	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", m.Len())
	}

	v, err := m.Get([]byte("b"))
	if err != nil || string(v) != "1" {
		t.Fatalf("Get(b) = %q, %v", v, err)
	}

	cur := m.NewCursor()
	var gotKeys, gotVals []string
	for cur.SeekToFirst(); cur.Valid(); cur.Next() {
		gotKeys = append(gotKeys, string(cur.Key()))
		gotVals = append(gotVals, string(cur.Value()))
	}
	wantKeys := []string{"a", "b", "c"}
	wantVals := []string{"2", "1", "3"}
	for i := range wantKeys {
		if gotKeys[i] != wantKeys[i] || gotVals[i] != wantVals[i] {
			t.Fatalf("entry %d = (%q,%q), want (%q,%q)", i, gotKeys[i], gotVals[i], wantKeys[i], wantVals[i])
		}
	}
}

func TestMemoryDBGetMissing(t *testing.T) {
	m := New()
	_, err := m.Get([]byte("missing"))
	if !kverrors.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestMemoryDBPutOverwritesWithoutChangingStoredSlice(t *testing.T) {
	m := New()
	must(t, m.Put([]byte("k"), []byte("v1")))
	src := []byte("v2")
	must(t, m.Put([]byte("k"), src))
	src[0] = 'X' // mutate caller's slice after Put
	v, _ := m.Get([]byte("k"))
	if !bytes.Equal(v, []byte("v2")) {
		t.Fatalf("stored value was aliased to caller's slice, got %q", v)
	}
}

func TestMemoryDBDeleteMissingIsOK(t *testing.T) {
	m := New()
	if err := m.Delete([]byte("nope")); err != nil {
		t.Fatalf("Delete of missing key returned error: %v", err)
	}
}

func TestMemoryDBEachVisitsInOrder(t *testing.T) {
	m := New()
	must(t, m.Put([]byte("c"), []byte("3")))
	must(t, m.Put([]byte("a"), []byte("1")))
	must(t, m.Put([]byte("b"), []byte("2")))

	var keys []string
	m.Each(func(k, v []byte) { keys = append(keys, string(k)) })
	want := []string{"a", "b", "c"}
	for i, k := range want {
		if keys[i] != k {
			t.Fatalf("Each order = %v, want %v", keys, want)
		}
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
