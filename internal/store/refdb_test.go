package store_test

import (
	"testing"

	"github.com/ony/leveldb-tl/internal/memdb"
	"github.com/ony/leveldb-tl/internal/sandwich"
	"github.com/ony/leveldb-tl/internal/sequence"
	"github.com/ony/leveldb-tl/internal/store"
	"github.com/ony/leveldb-tl/internal/txndb"
)

func TestRefDBDelegatesToTarget(t *testing.T) {
	base := memdb.New()
	ref := store.NewRefDB(base)

	if err := ref.Put([]byte("k"), []byte("v")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if v, err := base.Get([]byte("k")); err != nil || string(v) != "v" {
		t.Fatalf("base.Get(k) = %q, %v, want v, nil", v, err)
	}
	if ref.Target() != store.Store(base) {
		t.Fatalf("Target() did not return the wrapped store")
	}
}

// TestTwoDecoratorsShareOneBase demonstrates the capability RefDB exists
// for: a TxnDB and a SandwichDB, two independent decorators, can both hold
// a non-owning reference to the same physical store at once. Neither
// believes it owns the store, so writes committed through one are simply
// part of the same underlying keyspace the other reads and writes.
func TestTwoDecoratorsShareOneBase(t *testing.T) {
	base := memdb.New()

	txn := txndb.New(base)
	if err := txn.Put([]byte("direct-key"), []byte("v1")); err != nil {
		t.Fatalf("txn.Put: %v", err)
	}
	if err := txn.Commit(); err != nil {
		t.Fatalf("txn.Commit: %v", err)
	}

	sw := sandwich.New[uint16](base, 2, sequence.DefaultPageSize)
	part, err := sw.UseName([]byte("users"))
	if err != nil {
		t.Fatalf("UseName: %v", err)
	}
	if err := part.Put([]byte("alice"), []byte("1")); err != nil {
		t.Fatalf("part.Put: %v", err)
	}
	if err := sw.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	// The transaction's commit wrote straight to base under its own raw
	// key, entirely unaware that base is also multiplexed by a
	// SandwichDB; it is still readable directly off base.
	if v, err := base.Get([]byte("direct-key")); err != nil || string(v) != "v1" {
		t.Fatalf("base.Get(direct-key) = %q, %v, want v1, nil", v, err)
	}

	// The sandwich's part, layered over the same base, sees its own
	// prefixed key untouched by the transaction's unrelated write.
	if v, err := part.Get([]byte("alice")); err != nil || string(v) != "1" {
		t.Fatalf("part.Get(alice) = %q, %v, want 1, nil", v, err)
	}

	// A second transaction opened over the same base afterward still sees
	// the first transaction's committed write.
	txn2 := txndb.New(base)
	if v, err := txn2.Get([]byte("direct-key")); err != nil || string(v) != "v1" {
		t.Fatalf("txn2.Get(direct-key) = %q, %v, want v1, nil", v, err)
	}
}
