package store

import "github.com/ony/leveldb-tl/internal/kverrors"

// Cursor is a logical position in the ordered key space of some Store,
// either invalid (past-the-end, before-begin, or lost) or pointing at some
// present key with a value.
//
// Valid is cheap and must never itself move the cursor. Next from the last
// valid position, and Prev from the first, both produce an invalid cursor.
// Seek(k) positions at the smallest key >= k, or invalid if none exists.
type Cursor interface {
	SeekToFirst()
	SeekToLast()
	Seek(key []byte)
	Next()
	Prev()
	Valid() bool
	// Key returns the key at the current position. Only defined when
	// Valid() is true.
	Key() []byte
	// Value returns the value at the current position. Only defined when
	// Valid() is true.
	Value() []byte
	// Status reports kverrors.ErrNotFound ("invalid iterator") when the
	// cursor is not positioned on a key, nil when it is, or a propagated
	// backing-store error otherwise.
	Status() error
}

// BatchOpKind distinguishes the two operations a Batch can carry.
type BatchOpKind int

const (
	// BatchPut records a Put(Key, Value) operation.
	BatchPut BatchOpKind = iota
	// BatchDelete records a Delete(Key) operation.
	BatchDelete
)

// BatchOp is a single operation within a Batch.
type BatchOp struct {
	Kind  BatchOpKind
	Key   []byte
	Value []byte
}

// Batch is an ordered sequence of Put/Delete operations to be applied
// atomically by Store.Write. Later operations on the same key win.
type Batch struct {
	Ops []BatchOp
}

// Put appends a Put operation to the batch.
func (b *Batch) Put(key, value []byte) {
	b.Ops = append(b.Ops, BatchOp{Kind: BatchPut, Key: key, Value: value})
}

// Delete appends a Delete operation to the batch.
func (b *Batch) Delete(key []byte) {
	b.Ops = append(b.Ops, BatchOp{Kind: BatchDelete, Key: key})
}

// Len reports the number of operations staged in the batch.
func (b *Batch) Len() int { return len(b.Ops) }

// Writer is the minimal surface ApplyBatch needs from a Store: Put and
// Delete. Any Store satisfies it.
type Writer interface {
	Put(key, value []byte) error
	Delete(key []byte) error
}

// ApplyBatch is the default Write(batch) implementation: it replays the
// batch against Put/Delete in submission order. It is not atomic with
// respect to concurrent readers — concrete stores that need atomicity
// (TxnDB's base, in particular) must override Write with something
// stronger.
func ApplyBatch(w Writer, batch Batch) error {
	for _, op := range batch.Ops {
		var err error
		switch op.Kind {
		case BatchPut:
			err = w.Put(op.Key, op.Value)
		case BatchDelete:
			err = w.Delete(op.Key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Store is an ordered mapping from keys to values: at most one value per
// key, with a bidirectional seekable Cursor over the whole key space.
type Store interface {
	// Get retrieves the value for key, or a kverrors NotFound error if
	// absent.
	Get(key []byte) ([]byte, error)
	// Put replaces (or creates) the value for key.
	Put(key, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key []byte) error
	// NewCursor spawns a Cursor over the current key space. The cursor must
	// not outlive the Store.
	NewCursor() Cursor
	// Write applies batch atomically.
	Write(batch Batch) error
}

// invalidStatus is the error every exhausted/un-positioned cursor reports
// from Status().
func invalidStatus() error {
	return kverrors.NotFound("invalid iterator", nil)
}

// InvalidCursorStatus is exported so composed cursors (Subtract, Cover,
// Part) can produce the same "invalid iterator" status their backing
// cursors would, without reaching into package kverrors themselves.
func InvalidCursorStatus() error { return invalidStatus() }
