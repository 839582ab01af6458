// Package sandwich multiplexes many logical key-value stores ("parts")
// onto one physical store by prepending each part a distinct fixed-width
// big-endian prefix to every key. Prefix 0 is reserved for the sandwich's
// own meta part, which records each named part's prefix and backs the
// paged sequence.Sequence that allocates new ones.
//
// # Architecture
//
//	┌─────────────────────────────────────┐
//	│            SandwichDB[T]             │
//	│   meta: Part[T] @ prefix 0            │
//	│   seq:  sequence.Sequence[T] over meta │
//	└─────────────────────────────────────┘
//	                 │  Cook/Use/UseName
//	                 ▼
//	┌─────────┐ ┌─────────┐ ┌─────────┐
//	│ Part[T] │ │ Part[T] │ │ Part[T] │   (named parts, prefix 1..N)
//	│ @prefix1│ │ @prefix2│ │ @prefix3│
//	└─────────┘ └─────────┘ └─────────┘
//	                 │
//	                 ▼
//	          one physical store.Store
//
// Cook allocates a fresh prefix for a name on first use (persisting the
// assignment in the meta part) and is idempotent on repeat calls; Use opens
// a Part directly from a known prefix with no meta lookup, for callers that
// already have a Cookie (e.g. from an earlier Cook or a value read back
// out of storage). Names lists every name ever Cook'd, sorted.
//
// # Ownership
//
// SandwichDB and every Part it hands out hold the physical store as a
// store.RefDB — a non-owning handle — because the physical store is never
// owned by any one of them: every Part is an independent decorator over
// the same base, and the physical store itself may also be wrapped by a
// TxnDB at the same time, entirely outside this package's knowledge.
//
// # Concurrency
//
// Not safe for concurrent use; Cook in particular performs a
// read-then-maybe-write against the meta part with no locking, so two
// goroutines racing to Cook the same new name can both allocate a prefix
// and only one assignment will stick.
//
// # Testing
//
// sandwich_test.go covers part isolation and cursor bounds, Cook
// idempotency, the reserved meta prefix never being handed out, and the
// sequence-overflow path (a full uint8-width prefix space exhausted via
// repeated Cook calls).
package sandwich
