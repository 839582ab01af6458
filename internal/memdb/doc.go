// Package memdb implements MemoryDB, the in-memory Store backed by an
// ordered map (package ordered), used both as a first-class Store in its
// own right and as the overlay layer inside TxnDB.
//
// # Architecture
//
// MemoryDB is a thin Store-contract wrapper around ordered.Container[[]byte]:
// Get/Put/Delete/NewCursor all delegate straight through, translating the
// container's bool-returning Get into the kverrors-flavored errors
// the Store contract expects (a missing key on Get is kverrors.NotFound, not
// a bare nil/false). Each walks the container in ascending key order,
// letting callers outside this package (TxnDB.Commit) build a batch from a
// MemoryDB's full contents without reaching into package ordered directly.
//
// # Concurrency
//
// Not safe for concurrent use; inherits this restriction from
// ordered.Container.
package memdb
