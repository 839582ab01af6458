package whiteout

import (
	"github.com/ony/leveldb-tl/internal/ordered"
	"github.com/ony/leveldb-tl/internal/store"
)

// WhiteoutDB is an ordered set of keys: same shape as MemoryDB but with no
// values. Its revision bumps on removal or clear, exactly like MemoryDB, so
// the same ordered.Container/Cursor resilience mechanism applies unchanged.
type WhiteoutDB struct {
	keys *ordered.Container[struct{}]
}

// New returns an empty WhiteoutDB.
func New() *WhiteoutDB {
	return &WhiteoutDB{keys: ordered.New[struct{}]()}
}

// Len reports the number of tombstoned keys.
func (w *WhiteoutDB) Len() int { return w.keys.Len() }

// Revision returns the set's mutation revision.
func (w *WhiteoutDB) Revision() uint64 { return w.keys.Revision() }

// Check reports whether key is tombstoned.
func (w *WhiteoutDB) Check(key []byte) bool {
	_, ok := w.keys.Get(key)
	return ok
}

// Insert adds key to the set, reporting whether it was newly added (false
// if it was already present). TxnDB.Delete relies on this return value to
// decide whether live cursors need an overlay-delete notification.
func (w *WhiteoutDB) Insert(key []byte) bool {
	existed := w.keys.Put(key, struct{}{})
	return !existed
}

// Delete removes key from the set. Removing an absent key is not an error.
func (w *WhiteoutDB) Delete(key []byte) error {
	w.keys.Delete(key)
	return nil
}

// Clear empties the set.
func (w *WhiteoutDB) Clear() {
	w.keys.Clear()
}

// NewCursor spawns a resilient Cursor over the set's keys.
func (w *WhiteoutDB) NewCursor() store.Cursor {
	return &Cursor{inner: w.keys.NewCursor()}
}

// Each calls fn for every tombstoned key in ascending order. Used by
// TxnDB.Commit to build the Delete half of the commit batch without
// exposing the backing ordered.Container to callers outside this package.
func (w *WhiteoutDB) Each(fn func(key []byte)) {
	cur := w.keys.NewCursor()
	for cur.SeekToFirst(); cur.Valid(); cur.Next() {
		fn(cur.Key())
	}
}

// Cursor adapts ordered.Cursor[struct{}] to store.Cursor: Value() always
// returns nil since a tombstone set carries no values.
type Cursor struct {
	inner *ordered.Cursor[struct{}]
}

func (c *Cursor) SeekToFirst()      { c.inner.SeekToFirst() }
func (c *Cursor) SeekToLast()       { c.inner.SeekToLast() }
func (c *Cursor) Seek(key []byte)   { c.inner.Seek(key) }
func (c *Cursor) Next()             { c.inner.Next() }
func (c *Cursor) Prev()             { c.inner.Prev() }
func (c *Cursor) Valid() bool       { return c.inner.Valid() }
func (c *Cursor) Key() []byte       { return c.inner.Key() }
func (c *Cursor) Value() []byte     { return nil }
func (c *Cursor) Status() error     { return c.inner.Status() }

var _ store.Cursor = (*Cursor)(nil)
