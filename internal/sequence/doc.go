// Package sequence implements a paged monotonic counter persisted in a
// store.Store entry: each Next() hands out the next unused value, only
// touching the backing store once per page instead of once per value, and
// pre-allocates the following page on the boundary call so steady-state
// Next() never blocks on storage.
//
// # Architecture
//
// The high-water mark is persisted as a width-byte big-endian value (width
// is a constructor parameter, not derived from T, since Go generics cannot
// recover a type parameter's byte size without unsafe/reflect) via package
// bigend, the same codec package sandwich uses for its part prefixes — the
// two packages share one encode/decode primitive rather than each rolling
// its own. A stored value of 0 is the overflow sentinel: once the paged
// high-water mark would wrap past T's maximum, allocPage writes 0 and every
// subsequent Next fails with kverrors.NotFound rather than silently
// wrapping around to small values already handed out.
//
// # Error handling
//
// The very first allocPage call (made from a freshly constructed Sequence
// with no page in hand) propagates its error directly: there is no
// fallback page to serve from if it fails. Every later boundary-crossing
// pre-allocation is best-effort — its error is discarded, since Next()
// still has the current page's remaining values to hand out regardless of
// whether the next page was successfully reserved.
//
// # Concurrency
//
// A Sequence is not safe for concurrent use by itself; two Sequences over
// the same key in the same store, used without external coordination, can
// observe or overwrite each other's high-water mark. Sync detects (via
// kverrors.Corruption) a stored value that doesn't match what this
// Sequence last wrote, which is the one guard against that case this
// package provides.
package sequence
