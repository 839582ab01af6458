// Package whiteout implements WhiteoutDB, the ordered tombstone set used to
// mask keys of a lower layer without physically removing them — the
// "deletion mask" half of Subtract, and the tombstone half of TxnDB.
//
// # Architecture
//
// WhiteoutDB wraps ordered.Container[struct{}] (an ordered set, not a map).
// It does not implement store.Store itself (it has no Get/Put/Write), but
// its Cursor satisfies store.Cursor just as MemoryDB's does, so the two are
// interchangeable anywhere a Cursor is composed: Subtract and Cover don't
// know or care whether the cursor on the "tombstone" side came from a
// WhiteoutDB or something else entirely. Insert/Check/Delete expose the set
// operations directly (rather than routing through Get/Put, which would
// force tombstones to carry a meaningless value); Each walks every
// tombstoned key in ascending order for TxnDB.Commit's benefit.
//
// # Concurrency
//
// Not safe for concurrent use; inherits this restriction from
// ordered.Container.
package whiteout
