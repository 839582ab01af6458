package whiteout

import "testing"

func TestInsertReportsNovelty(t *testing.T) {
	w := New()
	if !w.Insert([]byte("a")) {
		t.Fatal("expected first Insert to report novel")
	}
	if w.Insert([]byte("a")) {
		t.Fatal("expected second Insert to report not-novel")
	}
}

func TestCheckAndDelete(t *testing.T) {
	w := New()
	w.Insert([]byte("a"))
	if !w.Check([]byte("a")) {
		t.Fatal("expected a to be tombstoned")
	}
	if err := w.Delete([]byte("a")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Check([]byte("a")) {
		t.Fatal("expected a to no longer be tombstoned")
	}
}

func TestClearEmptiesSet(t *testing.T) {
	w := New()
	w.Insert([]byte("a"))
	w.Insert([]byte("b"))
	w.Clear()
	if w.Len() != 0 {
		t.Fatalf("Len() = %d after Clear, want 0", w.Len())
	}
}

func TestCursorEnumeratesInOrder(t *testing.T) {
	w := New()
	w.Insert([]byte("b"))
	w.Insert([]byte("a"))
	w.Insert([]byte("c"))

	cur := w.NewCursor()
	var got []string
	for cur.SeekToFirst(); cur.Valid(); cur.Next() {
		got = append(got, string(cur.Key()))
		if cur.Value() != nil {
			t.Fatalf("expected nil Value from a set cursor, got %q", cur.Value())
		}
	}
	want := []string{"a", "b", "c"}
	for i, k := range want {
		if got[i] != k {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestMutationDuringTraversal(t *testing.T) {
	w := New()
	w.Insert([]byte("a"))
	w.Insert([]byte("b"))
	w.Insert([]byte("c"))

	cur := w.NewCursor()
	cur.Seek([]byte("b"))
	w.Delete([]byte("b"))
	cur.Next()
	if !cur.Valid() || string(cur.Key()) != "c" {
		t.Fatalf("Next after deleting current key = %q, want c", cur.Key())
	}
}
