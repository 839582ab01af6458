// Package snapshot is glue for cmd/combine only: it loads and saves an
// entire memdb.MemoryDB as a gob-encoded file, standing in for "open this
// path as a base store" when there is no on-disk storage engine backing
// this module. Nothing in internal/store, internal/memdb, or
// internal/sandwich depends on it.
//
// Load treats a missing file as an empty store rather than an error,
// matching create_if_missing semantics for a destination snapshot that
// doesn't exist yet; Exists lets a caller enforce error_if_exists before
// overwriting one.
package snapshot
