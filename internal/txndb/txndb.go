package txndb

import (
	"github.com/ony/leveldb-tl/internal/cover"
	"github.com/ony/leveldb-tl/internal/kverrors"
	"github.com/ony/leveldb-tl/internal/memdb"
	"github.com/ony/leveldb-tl/internal/store"
	"github.com/ony/leveldb-tl/internal/subtract"
	"github.com/ony/leveldb-tl/internal/whiteout"
)

// TxnDB stages writes against a base Store without touching it until
// Commit. base must outlive the TxnDB and every Cursor spawned from it.
// base is held as a store.RefDB, a non-owning handle, because a TxnDB never
// assumes it is the only decorator on base: another TxnDB or a SandwichDB
// may be wrapping the same underlying store concurrently.
type TxnDB struct {
	base    store.RefDB
	overlay *memdb.MemoryDB
	tomb    *whiteout.WhiteoutDB
	cursors map[*Cursor]struct{}
}

// New wraps base in a transaction. The returned TxnDB starts with an empty
// overlay and tombstone set, so reads pass straight through to base until
// the first write.
func New(base store.Store) *TxnDB {
	return &TxnDB{
		base:    store.NewRefDB(base),
		overlay: memdb.New(),
		tomb:    whiteout.New(),
		cursors: make(map[*Cursor]struct{}),
	}
}

// Get consults the tombstone set, then the overlay, then base, in that
// order: a tombstoned key reads as NotFound regardless of what base holds.
func (t *TxnDB) Get(key []byte) ([]byte, error) {
	if t.tomb.Check(key) {
		return nil, kverrors.NotFound("deleted in transaction", key)
	}
	v, err := t.overlay.Get(key)
	if err == nil {
		return v, nil
	}
	if !kverrors.IsNotFound(err) {
		return nil, err
	}
	return t.base.Get(key)
}

// Put stages a write in the overlay, clearing any tombstone on key, and
// notifies every live cursor so it stays correct without a re-seek.
func (t *TxnDB) Put(key, value []byte) error {
	_ = t.tomb.Delete(key)
	if err := t.overlay.Put(key, value); err != nil {
		return err
	}
	for c := range t.cursors {
		c.impl.NotifyOverlayPut(key)
	}
	return nil
}

// Delete stages a tombstone over key and removes any staged overlay value.
// Deleting an already-tombstoned key is a no-op: its cursors were already
// notified the first time, and base's copy (if any) is already shadowed.
func (t *TxnDB) Delete(key []byte) error {
	if !t.tomb.Insert(key) {
		return nil
	}
	for c := range t.cursors {
		c.impl.NotifyOverlayDelete(key)
	}
	return t.overlay.Delete(key)
}

func (t *TxnDB) Write(batch store.Batch) error {
	return store.ApplyBatch(t, batch)
}

// NewCursor spawns a live cursor over base shadowed by this transaction's
// tombstones and overlay: Cover(Subtract(base, tombstones), overlay). The
// returned Cursor must be Closed when no longer needed, or it will keep
// receiving (and ignoring the cost of) every subsequent Put/Delete
// notification for the life of the transaction.
func (t *TxnDB) NewCursor() store.Cursor {
	layered := subtract.New(t.base.NewCursor(), t.tomb.NewCursor())
	c := &Cursor{txn: t, impl: cover.New(layered, t.overlay.NewCursor())}
	t.cursors[c] = struct{}{}
	return c
}

// Commit applies every staged tombstone and overlay write to base as one
// batch, then clears the transaction's staged state on success. On
// failure the transaction is left untouched and may be retried or Reset.
func (t *TxnDB) Commit() error {
	var batch store.Batch
	t.tomb.Each(func(key []byte) { batch.Delete(key) })
	t.overlay.Each(func(key, value []byte) { batch.Put(key, value) })
	if err := t.base.Write(batch); err != nil {
		return err
	}
	t.overlay.Clear()
	t.tomb.Clear()
	return nil
}

// Reset discards every staged write without applying them to base.
func (t *TxnDB) Reset() {
	t.overlay.Clear()
	t.tomb.Clear()
}

// Cursor is a live view over a TxnDB's staged state. Close it when done;
// an un-Closed Cursor keeps the TxnDB notifying it of every write for no
// benefit once the caller has stopped reading from it.
type Cursor struct {
	txn  *TxnDB
	impl *cover.Cursor
}

func (c *Cursor) SeekToFirst()    { c.impl.SeekToFirst() }
func (c *Cursor) SeekToLast()     { c.impl.SeekToLast() }
func (c *Cursor) Seek(key []byte) { c.impl.Seek(key) }
func (c *Cursor) Next()           { c.impl.Next() }
func (c *Cursor) Prev()           { c.impl.Prev() }
func (c *Cursor) Valid() bool     { return c.impl.Valid() }
func (c *Cursor) Key() []byte     { return c.impl.Key() }
func (c *Cursor) Value() []byte   { return c.impl.Value() }
func (c *Cursor) Status() error   { return c.impl.Status() }

// Close unregisters the cursor from its TxnDB. Safe to call more than
// once; a no-op after the first call.
func (c *Cursor) Close() {
	if c.txn == nil {
		return
	}
	delete(c.txn.cursors, c)
	c.txn = nil
}

var _ store.Store = (*TxnDB)(nil)
var _ store.Cursor = (*Cursor)(nil)
