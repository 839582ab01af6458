package sandwich

import (
	"testing"

	"github.com/ony/leveldb-tl/internal/kverrors"
	"github.com/ony/leveldb-tl/internal/memdb"
	"github.com/ony/leveldb-tl/internal/sequence"
)

func TestScenarioS7PartIsolationAndCursor(t *testing.T) {
	base := memdb.New()
	sw := New[uint16](base, 2, sequence.DefaultPageSize)

	alpha, err := sw.UseName([]byte("alpha"))
	if err != nil {
		t.Fatalf("UseName(alpha): %v", err)
	}
	beta, err := sw.UseName([]byte("beta"))
	if err != nil {
		t.Fatalf("UseName(beta): %v", err)
	}

	if err := alpha.Put([]byte("a"), []byte("1")); err != nil {
		t.Fatalf("alpha.Put: %v", err)
	}
	if err := alpha.Put([]byte("b"), []byte("3")); err != nil {
		t.Fatalf("alpha.Put: %v", err)
	}
	if err := beta.Put([]byte("b"), []byte("2")); err != nil {
		t.Fatalf("beta.Put: %v", err)
	}

	if _, err := beta.Get([]byte("a")); !kverrors.IsNotFound(err) {
		t.Fatalf("beta.Get(a) = %v, want NotFound (isolation)", err)
	}
	if v, err := alpha.Get([]byte("b")); err != nil || string(v) != "3" {
		t.Fatalf("alpha.Get(b) = %q, %v, want 3, nil", v, err)
	}

	cur := alpha.NewCursor()
	var gotK, gotV []string
	for cur.SeekToFirst(); cur.Valid(); cur.Next() {
		gotK = append(gotK, string(cur.Key()))
		gotV = append(gotV, string(cur.Value()))
	}
	wantK, wantV := []string{"a", "b"}, []string{"1", "3"}
	for i := range wantK {
		if gotK[i] != wantK[i] || gotV[i] != wantV[i] {
			t.Fatalf("alpha forward entry %d = (%q,%q), want (%q,%q)", i, gotK[i], gotV[i], wantK[i], wantV[i])
		}
	}

	betaCur := beta.NewCursor()
	var betaK []string
	for betaCur.SeekToFirst(); betaCur.Valid(); betaCur.Next() {
		betaK = append(betaK, string(betaCur.Key()))
	}
	if len(betaK) != 1 || betaK[0] != "b" {
		t.Fatalf("beta forward = %v, want [b]", betaK)
	}
}

func TestCookIsIdempotent(t *testing.T) {
	base := memdb.New()
	sw := New[uint16](base, 2, sequence.DefaultPageSize)

	first, err := sw.Cook([]byte("gamma"))
	if err != nil {
		t.Fatalf("Cook: %v", err)
	}
	second, err := sw.Cook([]byte("gamma"))
	if err != nil {
		t.Fatalf("second Cook: %v", err)
	}
	if first != second {
		t.Fatalf("Cook(gamma) = %d then %d, want same cookie", first, second)
	}
}

func TestCookNeverAllocatesMetaPrefix(t *testing.T) {
	base := memdb.New()
	sw := New[uint16](base, 2, sequence.DefaultPageSize)

	for i := 0; i < 5; i++ {
		cookie, err := sw.Cook([]byte{byte('a' + i)})
		if err != nil {
			t.Fatalf("Cook: %v", err)
		}
		if cookie == metaPrefix {
			t.Fatalf("Cook allocated reserved meta prefix")
		}
	}
}

func TestScenarioS6SandwichOverflow(t *testing.T) {
	base := memdb.New()
	sw := New[uint8](base, 1, 50)

	for i := 0; i < 255; i++ {
		name := []byte{byte(i), byte(i >> 8)}
		if _, err := sw.Cook(name); err != nil {
			t.Fatalf("Cook #%d: %v", i, err)
		}
	}

	if _, err := sw.Cook([]byte("one-too-many")); !kverrors.IsNotFound(err) {
		t.Fatalf("256th Cook = %v, want NotFound (sequence overflow)", err)
	}
}

func TestCookEmptyNameIsInvalidArgument(t *testing.T) {
	base := memdb.New()
	sw := New[uint16](base, 2, sequence.DefaultPageSize)
	if _, err := sw.Cook(nil); err == nil {
		t.Fatalf("Cook(empty) succeeded, want error")
	}
}
