// Package txndb implements a staged read/write transaction over a base
// Store: writes accumulate in an in-memory overlay and a tombstone set
// instead of touching base, and Commit applies them as a single batch.
//
// # Overview
//
// TxnDB is the module's one multi-write-then-commit-or-discard primitive:
// every Put/Delete before Commit is visible to the transaction's own
// Get/NewCursor callers but invisible to anyone reading base directly,
// until Commit applies the accumulated writes to base atomically (as one
// store.Batch) or Reset discards them.
//
// # Architecture
//
//	┌─────────────────────────────────────┐
//	│              TxnDB                   │
//	│  overlay: memdb.MemoryDB (staged Put) │
//	│  tomb:    whiteout.WhiteoutDB (staged Delete) │
//	│  base:    store.RefDB (non-owning)    │
//	└─────────────────────────────────────┘
//	        │               │
//	        ▼               ▼
//	 Get: tomb, then    NewCursor:
//	 overlay, then base  cover.New(subtract.New(base,tomb), overlay)
//
// Reads see base shadowed by the overlay and tombstones (deletions hide a
// base key without touching base itself); cursors see the same view live,
// kept correct across Put/Delete by cover.Cursor's overlay-notification
// hooks rather than a full re-seek on every write.
//
// # Cursor lifetime
//
// Every Cursor spawned by NewCursor registers itself in the TxnDB's cursor
// set so Put/Delete can notify it; it must be Closed when the caller is
// done with it, or it keeps receiving notifications for the rest of the
// transaction's life for no benefit. This is the Go-idiomatic answer to a
// problem the original implementation solved with C++ RAII (a live walker
// registered and unregistered by constructor/destructor): Go has no
// destructors, so the registration is undone by an explicit Close call
// instead, the same shape as database/sql's Rows.Close.
//
// # Concurrency
//
// Not safe for concurrent use from multiple goroutines. base is held as a
// store.RefDB specifically because a TxnDB does not assume it is the only
// decorator wrapping that physical store — another TxnDB, or a
// sandwich.Part, may hold its own RefDB over the same base at the same
// time — but that sharing is still single-goroutine-at-a-time; TxnDB adds
// no synchronization of its own.
//
// # Error handling
//
// Get/Put/Delete/Commit return kverrors-flavored errors exactly like any
// other Store; Commit's failure leaves the transaction's staged state
// untouched so the caller may retry Commit or call Reset.
//
// # Testing
//
// txndb_test.go covers staged Get precedence (tombstone over overlay over
// base), Commit and Reset, and live-cursor correctness across Put/Delete
// while a cursor is mid-traversal, including deleting the cursor's own
// current key.
package txndb
