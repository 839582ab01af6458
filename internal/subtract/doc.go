// Package subtract implements the ordered set-difference cursor: given a
// base cursor over store S and a tombstone cursor over set T, it presents
// an ordered cursor over the keys of S that are not in T.
//
// # Architecture
//
// Subtract walks base and tomb in lockstep: at every position it compares
// the two cursors' current keys and skips forward over base whenever it
// matches tomb's current key, repeating until base lands on a key not
// covered by tomb (or runs out). The same logic runs in reverse for Prev.
// It is the mirror image of package cover (union instead of difference),
// and the two compose: TxnDB.NewCursor builds a Cover over a Subtract, so a
// transaction's live view is "base, minus my tombstones, plus my staged
// overlay" as one chain of cursors with no intermediate materialized copy.
//
// # Concurrency
//
// Not safe for concurrent use; single-threaded, one-step-at-a-time
// traversal, matching the base and tombstone cursors it wraps.
package subtract
