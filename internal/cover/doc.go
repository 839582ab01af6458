// Package cover implements the ordered overlay (union) cursor: given a base
// cursor and a higher-priority overlay cursor, it presents an ordered
// cursor over the union of their key spaces, with the overlay's value
// winning on any key present in both.
//
// # Overview
//
// Cover is one of two cursor-composition primitives this module builds
// layered views from (the other being package subtract, ordered
// difference). Where Subtract hides keys, Cover merges them: it is how
// TxnDB presents "base, shadowed by my staged writes" as a single ordered
// cursor without ever materializing a merged copy of either side.
//
// # Architecture
//
//	┌─────────────────────────────────────┐
//	│      txndb.Cursor (public view)      │
//	└─────────────────────────────────────┘
//	                 │
//	                 ▼
//	┌─────────────────────────────────────┐
//	│         cover.Cursor                 │
//	│  base = subtract.Cursor(base,tomb)    │
//	│  overlay = memdb.Cursor               │
//	└─────────────────────────────────────┘
//	            │           │
//	            ▼           ▼
//	      (base store)  (overlay store)
//
// # State machine
//
// A Cover cursor tracks which side is "active" (base or overlay) and which
// direction it last moved, as five states: stateBoth (both sides agree on
// the current key — overlay wins ties), stateFwdLeft/stateFwdRight
// (disjoint position reached while moving forward, resolved to whichever
// side holds the smaller key), and their reverse counterparts
// stateRevLeft/stateRevRight. Splitting "disjoint, moving forward" from
// "disjoint, moving backward" into separate states is what lets Next/Prev
// resolve correctly immediately after a direction reversal at an interior
// position, without re-deriving the relative order of both sides from
// scratch on every step.
//
// # Live mutation
//
// NotifyOverlayPut and NotifyOverlayDelete let a cursor mid-traversal stay
// correct when its overlay is mutated without a full re-seek — used only by
// package txndb, whose Put/Delete call these hooks on every live cursor
// registered against the transaction. A Cover cursor built over cursors
// that are never subsequently mutated (the common case outside txndb) never
// needs them and can ignore their existence entirely.
//
// # Concurrency
//
// Not safe for concurrent use: a Cover cursor's state machine assumes
// single-threaded, one-step-at-a-time traversal, matching the base and
// overlay cursors it wraps.
//
// # Testing
//
// cover_test.go drives both base-only and overlay-only degenerate cases,
// forward/reverse traversal of an interleaved key space, and direction
// reversal at an interior position (the scenario the five-state split
// exists to get right).
package cover
