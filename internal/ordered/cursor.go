package ordered

import (
	"bytes"

	"github.com/ony/leveldb-tl/internal/store"
)

// Cursor is the mutation-resilient cursor over a Container, as described in
// doc.go. The zero value is not usable; obtain one via Container.NewCursor.
type Cursor[V any] struct {
	c   *Container[V]
	rev uint64

	valid bool
	// savepoint is the last key this cursor was positioned on, retained
	// across a transition to invalid so a future resync has something to
	// seek from. Updated only when valid.
	savepoint []byte
	curKey    []byte
	curVal    V
}

// sync mirrors the original Walker::Sync(): if the container hasn't
// mutated since our last observation, it does nothing and reports false
// (the caller must still perform its own step). Otherwise it resyncs to
// the lower bound of savepoint and reports whether that alone already
// satisfies the caller's pending step (true), or whether the caller still
// needs to take its own step because savepoint was found unchanged
// (false).
func (w *Cursor[V]) sync() bool {
	if w.rev == w.c.revision {
		return false
	}
	w.rev = w.c.revision
	if !w.valid {
		return true
	}
	w.seekLowerBound(w.savepoint)
	return !w.valid || !bytes.Equal(w.savepoint, w.curKey)
}

func (w *Cursor[V]) seekLowerBound(target []byte) {
	w.valid = false
	w.curKey = nil
	w.c.tree.AscendGreaterOrEqual(entry[V]{key: target}, func(e entry[V]) bool {
		w.valid = true
		w.curKey = e.key
		w.curVal = e.val
		return false
	})
}

func (w *Cursor[V]) synced() {
	w.rev = w.c.revision
	if w.valid {
		w.savepoint = w.curKey
	}
}

// SeekToFirst positions at the smallest key, or invalid if the container is
// empty.
func (w *Cursor[V]) SeekToFirst() {
	e, ok := w.c.tree.Min()
	w.valid = ok
	if ok {
		w.curKey, w.curVal = e.key, e.val
	} else {
		w.curKey = nil
	}
	w.synced()
}

// SeekToLast positions at the largest key, or invalid if the container is
// empty.
func (w *Cursor[V]) SeekToLast() {
	e, ok := w.c.tree.Max()
	w.valid = ok
	if ok {
		w.curKey, w.curVal = e.key, e.val
	} else {
		w.curKey = nil
	}
	w.synced()
}

// Seek positions at the smallest key >= target, or invalid if none exists.
func (w *Cursor[V]) Seek(target []byte) {
	w.seekLowerBound(target)
	w.synced()
}

// Next advances to the next key in ascending order, or invalid if there is
// none. Calling Next on an already-invalid cursor (without an intervening
// Seek) is an unspecified call pattern; this implementation leaves the
// cursor invalid rather than faulting.
func (w *Cursor[V]) Next() {
	if w.sync() {
		w.synced()
		return
	}
	if !w.valid {
		return
	}
	target := w.curKey
	w.valid = false
	w.curKey = nil
	w.c.tree.AscendGreaterOrEqual(entry[V]{key: target}, func(e entry[V]) bool {
		if bytes.Equal(e.key, target) {
			return true // skip the entry we were on, keep scanning
		}
		w.valid = true
		w.curKey = e.key
		w.curVal = e.val
		return false
	})
	w.synced()
}

// Prev moves to the previous key in ascending order, or invalid if there is
// none (or the container is empty). Unlike Next, Prev always takes a step
// after resyncing, even when the cursor was (or became) invalid: from an
// invalid position it steps to the last key, matching a reverse iterator
// decremented off its end sentinel.
func (w *Cursor[V]) Prev() {
	w.sync()
	if w.valid {
		target := w.curKey
		w.valid = false
		w.curKey = nil
		w.c.tree.DescendLessOrEqual(entry[V]{key: target}, func(e entry[V]) bool {
			if bytes.Equal(e.key, target) {
				return true // skip the entry we were on, keep scanning
			}
			w.valid = true
			w.curKey = e.key
			w.curVal = e.val
			return false
		})
	} else if w.c.tree.Len() > 0 {
		e, _ := w.c.tree.Max()
		w.valid = true
		w.curKey, w.curVal = e.key, e.val
	}
	w.synced()
}

// Valid reports whether the cursor currently references a present entry.
// Cheap: never itself performs a resync. See doc.go for why this may
// answer true for an instant after an external deletion of the current key.
func (w *Cursor[V]) Valid() bool { return w.valid }

// Key returns the key at the current position. Only defined when Valid().
func (w *Cursor[V]) Key() []byte { return w.curKey }

// Value returns the value at the current position. Only defined when
// Valid().
func (w *Cursor[V]) Value() V { return w.curVal }

// Status reports the cursor's positional status.
func (w *Cursor[V]) Status() error {
	if w.valid {
		return nil
	}
	return store.InvalidCursorStatus()
}
