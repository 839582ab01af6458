package memdb

import (
	"github.com/ony/leveldb-tl/internal/kverrors"
	"github.com/ony/leveldb-tl/internal/ordered"
	"github.com/ony/leveldb-tl/internal/store"
)

// MemoryDB is an ordered in-memory Store. Get/Put/Delete act on an
// ordered.Container; NewCursor spawns the container's mutation-resilient
// cursor, which already satisfies store.Cursor (Key/Value/Valid/Status
// match exactly since the container is typed []byte -> []byte).
type MemoryDB struct {
	data *ordered.Container[[]byte]
}

// New returns an empty MemoryDB.
func New() *MemoryDB {
	return &MemoryDB{data: ordered.New[[]byte]()}
}

// Len reports the number of keys currently stored.
func (m *MemoryDB) Len() int { return m.data.Len() }

// Revision returns the container's mutation revision, exposed for callers
// that need to detect whether the store changed underneath a live cursor
// independent of the cursor's own resync.
func (m *MemoryDB) Revision() uint64 { return m.data.Revision() }

func (m *MemoryDB) Get(key []byte) ([]byte, error) {
	v, ok := m.data.Get(key)
	if !ok {
		return nil, kverrors.NotFound("key not found", key)
	}
	return v, nil
}

func (m *MemoryDB) Put(key, value []byte) error {
	stored := append([]byte(nil), value...)
	m.data.Put(key, stored)
	return nil
}

func (m *MemoryDB) Delete(key []byte) error {
	m.data.Delete(key)
	return nil
}

// Clear removes every key. Used by TxnDB.Reset and TxnDB.Commit to empty
// the overlay once its contents have been staged or applied.
func (m *MemoryDB) Clear() { m.data.Clear() }

// Each calls fn for every (key, value) pair in ascending key order. Used by
// TxnDB.Commit to build the Put half of the commit batch without exposing
// the backing ordered.Container to callers outside this package.
func (m *MemoryDB) Each(fn func(key, value []byte)) {
	cur := m.data.NewCursor()
	for cur.SeekToFirst(); cur.Valid(); cur.Next() {
		fn(cur.Key(), cur.Value())
	}
}

func (m *MemoryDB) NewCursor() store.Cursor {
	return m.data.NewCursor()
}

func (m *MemoryDB) Write(batch store.Batch) error {
	return store.ApplyBatch(m, batch)
}

var _ store.Store = (*MemoryDB)(nil)
