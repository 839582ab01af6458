package ordered

import (
	"bytes"

	"github.com/google/btree"
)

// btreeDegree controls the branching factor of the backing BTreeG. 32 is
// google/btree's own suggested default for byte-slice-ish keys.
const btreeDegree = 32

type entry[V any] struct {
	key []byte
	val V
}

func lessEntry[V any](a, b entry[V]) bool {
	return bytes.Compare(a.key, b.key) < 0
}

// Container is an ordered map from byte-slice keys to values of type V,
// backed by a btree.BTreeG. With V = struct{} it behaves as an ordered set
// (see package whiteout).
type Container[V any] struct {
	tree     *btree.BTreeG[entry[V]]
	revision uint64
}

// New returns an empty Container.
func New[V any]() *Container[V] {
	return &Container[V]{tree: btree.NewG(btreeDegree, lessEntry[V])}
}

// Len reports the number of entries.
func (c *Container[V]) Len() int { return c.tree.Len() }

// Revision returns the current mutation revision.
func (c *Container[V]) Revision() uint64 { return c.revision }

// Get looks up key, reporting whether it was present.
func (c *Container[V]) Get(key []byte) (V, bool) {
	e, ok := c.tree.Get(entry[V]{key: key})
	return e.val, ok
}

// Put inserts or replaces the value for key. Reports whether key already
// existed. Per the resilience model, replacing an existing key bumps the
// revision (the old value is gone, invalidating any cursor's cached
// Value()); inserting a brand-new key does not, since every existing
// cursor's relative ordering is unaffected by an insertion elsewhere.
func (c *Container[V]) Put(key []byte, val V) bool {
	stored := append([]byte(nil), key...)
	_, existed := c.tree.ReplaceOrInsert(entry[V]{key: stored, val: val})
	if existed {
		c.revision++
	}
	return existed
}

// Delete removes key, reporting whether it was present. Bumps the revision
// when it was.
func (c *Container[V]) Delete(key []byte) bool {
	_, existed := c.tree.Delete(entry[V]{key: key})
	if existed {
		c.revision++
	}
	return existed
}

// Clear removes every entry. A no-op (no revision bump) on an already-empty
// container: clearing nothing changes nothing, so a live cursor need not
// resync.
func (c *Container[V]) Clear() {
	if c.tree.Len() == 0 {
		return
	}
	c.tree = btree.NewG(btreeDegree, lessEntry[V])
	c.revision++
}

// NewCursor spawns a resilient Cursor over the container's current key
// space.
func (c *Container[V]) NewCursor() *Cursor[V] {
	return &Cursor[V]{c: c, rev: c.revision}
}
