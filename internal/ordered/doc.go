// Package ordered implements the mutation-resilient in-memory ordered
// container shared by MemoryDB and WhiteoutDB: a byte-key ordered map (or,
// with V = struct{}, an ordered set) backed by a google/btree.BTreeG, plus a
// Cursor that survives structural mutation of the backing tree.
//
// # Overview
//
// Both in-memory structures in this module — MemoryDB's key/value pairs and
// WhiteoutDB's tombstoned keys — are ultimately one of these containers,
// parameterized on the value type V.
// Container itself knows nothing about Store, Batch, or kverrors; it is the
// one piece of shared machinery those packages build their public contract
// on top of.
//
// # Architecture
//
//	┌─────────────────────────────────────┐
//	│     memdb.MemoryDB / whiteout.WhiteoutDB  │
//	│   (Store contract, kverrors, Each)   │
//	└─────────────────────────────────────┘
//	                 │
//	                 ▼
//	┌─────────────────────────────────────┐
//	│   ordered.Container[V] / Cursor      │
//	│  (revision counter, savepoint resync) │
//	└─────────────────────────────────────┘
//	                 │
//	                 ▼
//	┌─────────────────────────────────────┐
//	│      google/btree.BTreeG[entry[V]]   │
//	└─────────────────────────────────────┘
//
// # Resilience model
//
// Container tracks a monotonically increasing revision, bumped whenever a
// mutation removes or replaces an entry (a pure insertion of a brand-new key
// does not bump it — existing cursors remain validly positioned relative to
// an insertion). Cursor holds a savepoint: a copy of the key it last
// positioned on, plus the revision observed at that time.
//
// Before any position-advancing operation (Next, Prev), if the container's
// revision has moved since the cursor's last observation, the cursor first
// resynchronizes to the smallest key >= savepoint (a lower-bound seek). If
// that lands back on savepoint itself, the intervening mutation happened
// elsewhere in the tree and the requested step proceeds normally. If it
// lands past savepoint, savepoint itself was removed and the resync has
// already accounted for the step a Next() would have taken — so Next()
// stops there; Prev() always takes one additional step backward from
// wherever the resync landed (mirroring the original: re-sync forward,
// then always step back, which is what makes deleting the cursor's current
// key and calling Prev() land on the true predecessor).
//
// Valid/Key/Value never themselves trigger a resync (resync only happens on
// movement) — so a fresh Valid() call immediately after an external
// deletion of the cursor's current key may still report true, returning the
// last-observed (now possibly stale) key/value. Callers traversing a
// mutating container must call Next/Prev between observations to see
// structural changes reflected.
//
// # Concurrency
//
// Container and Cursor are not safe for concurrent use from multiple
// goroutines; every Store built on top of this package inherits that same
// restriction, and nothing here takes a lock. The mutation-resilience this
// package provides is about a single goroutine mutating a container while
// one or more of its own previously-created cursors are still live and
// unread, not about concurrent access from separate goroutines.
//
// # Error handling
//
// Container's own methods (Put, Delete, Clear, Get) never return an
// error: a btree insert/delete either happens or the key wasn't present,
// which Put/Delete already report as a bool. Errors enter the picture
// one layer up, in memdb/whiteout, which translate "key not present" into
// a kverrors.NotFound for their Store contract's Get.
//
// # Testing
//
// cursor_test.go exercises the resync behavior directly against Container,
// including the asymmetric Next/Prev stepping described above;
// whiteout_test.go additionally covers it indirectly through WhiteoutDB's
// Cursor.
package ordered
