// Package store defines the uniform Store + Cursor contract that every layer
// in this module — MemoryDB, WhiteoutDB, Subtract, Cover, TxnDB, SandwichDB's
// Part — implements and composes against.
//
// # Overview
//
// A Store is an ordered mapping from opaque byte-string keys to opaque
// byte-string values, lexicographically ordered on unsigned bytes. It
// supports point operations (Get/Put/Delete), an atomic batched write, and
// spawns Cursors: bidirectional, seekable positions over its key space.
//
// # Contract
//
// Cursor operations never panic on a misuse that the interface itself
// cannot prevent (e.g. calling Key() on an invalid cursor is undefined —
// implementations may return a zero value or panic in debug builds, callers
// must check Valid() first). All other failures are reported through the
// returned error / Status() value, built from package kverrors; there is no
// exception-like control flow anywhere in this module.
//
// # Composition
//
// Layers are built by composing Cursors, not by inheritance: Subtract wraps
// a base Cursor and a tombstone Cursor; Cover wraps a base Cursor and an
// overlay Cursor; TxnDB.NewCursor hands out a Cover-over-Subtract. Every
// composed Cursor satisfies this same contract, so the composition can
// nest arbitrarily.
package store
