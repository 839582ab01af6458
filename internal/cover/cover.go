package cover

import (
	"bytes"

	"github.com/ony/leveldb-tl/internal/store"
)

// state discriminates the cursor's relative position and active direction.
type state int

const (
	stateBoth state = iota
	stateFwdLeft
	stateFwdRight
	stateRevLeft
	stateRevRight
)

// Cursor presents keys(base) ∪ keys(overlay) in order, with overlay's value
// winning on keys present in both.
type Cursor struct {
	base    store.Cursor
	overlay store.Cursor
	state   state
}

// New builds a Cover cursor over base and overlay and immediately
// positions it at the first entry, so that both underlying cursors are in
// a well-defined relative state before any NotifyOverlayPut/Delete call can
// arrive (mirrors the original's constructor, which does the same to keep
// notification safe even if the caller hasn't positioned the cursor yet).
func New(base, overlay store.Cursor) *Cursor {
	c := &Cursor{base: base, overlay: overlay}
	c.SeekToFirst()
	return c
}

func (c *Cursor) useOverlay() bool {
	switch c.state {
	case stateFwdRight, stateRevRight, stateBoth:
		return true
	default:
		return false
	}
}

// activate recomputes state from the current validity/ordering of base and
// overlay. fwd selects which side a disjoint state resolves to: forward
// traversal prefers FwdLeft/FwdRight, reverse prefers RevLeft/RevRight.
func (c *Cursor) activate(fwd bool) {
	if !c.overlay.Valid() {
		if fwd {
			c.state = stateFwdLeft
		} else {
			c.state = stateRevLeft
		}
		return
	}
	if !c.base.Valid() {
		if fwd {
			c.state = stateFwdRight
		} else {
			c.state = stateRevRight
		}
		return
	}
	switch cmp := bytes.Compare(c.base.Key(), c.overlay.Key()); {
	case cmp == 0:
		c.state = stateBoth
	case cmp < 0:
		if fwd {
			c.state = stateFwdLeft
		} else {
			c.state = stateRevRight
		}
	default:
		if fwd {
			c.state = stateFwdRight
		} else {
			c.state = stateRevLeft
		}
	}
}

func (c *Cursor) Valid() bool {
	if c.useOverlay() {
		return c.overlay.Valid()
	}
	return c.base.Valid()
}

func (c *Cursor) Key() []byte {
	if c.useOverlay() {
		return c.overlay.Key()
	}
	return c.base.Key()
}

func (c *Cursor) Value() []byte {
	if c.useOverlay() {
		return c.overlay.Value()
	}
	return c.base.Value()
}

func (c *Cursor) Status() error {
	if c.useOverlay() {
		return c.overlay.Status()
	}
	return c.base.Status()
}

func (c *Cursor) Seek(target []byte) {
	c.base.Seek(target)
	c.overlay.Seek(target)
	c.activate(true)
}

func (c *Cursor) SeekToFirst() {
	c.base.SeekToFirst()
	c.overlay.SeekToFirst()
	c.activate(true)
}

func (c *Cursor) SeekToLast() {
	c.base.SeekToLast()
	c.overlay.SeekToLast()
	c.activate(false)
}

func (c *Cursor) Next() {
	switch c.state {
	case stateFwdLeft:
		c.base.Next()
	case stateFwdRight:
		c.overlay.Next()
	case stateBoth:
		c.base.Next()
		c.overlay.Next()
	case stateRevLeft:
		if !c.overlay.Valid() {
			c.overlay.Seek(c.base.Key())
			if !c.overlay.Valid() {
				c.base.Next()
				c.state = stateFwdLeft
				return
			}
		}
		if bytes.Compare(c.base.Key(), c.overlay.Key()) >= 0 {
			c.overlay.Next()
		}
		c.base.Next()
	case stateRevRight:
		if !c.base.Valid() {
			c.base.Seek(c.overlay.Key())
			if !c.base.Valid() {
				c.overlay.Next()
				c.state = stateFwdRight
				return
			}
		}
		if bytes.Compare(c.base.Key(), c.overlay.Key()) <= 0 {
			c.base.Next()
		}
		c.overlay.Next()
	}
	c.activate(true)
}

func (c *Cursor) Prev() {
	switch c.state {
	case stateRevLeft:
		c.base.Prev()
	case stateRevRight:
		c.overlay.Prev()
	case stateBoth:
		c.base.Prev()
		c.overlay.Prev()
	case stateFwdLeft:
		if !c.overlay.Valid() {
			c.overlay.Seek(c.base.Key())
			if !c.overlay.Valid() {
				c.base.Prev()
				c.overlay.SeekToLast()
				break
			}
		}
		c.base.Prev()
		c.overlay.Prev()
	case stateFwdRight:
		if !c.base.Valid() {
			c.base.Seek(c.overlay.Key())
			if !c.base.Valid() {
				c.overlay.Prev()
				c.base.SeekToLast()
				break
			}
		}
		c.base.Prev()
		c.overlay.Prev()
	}
	c.activate(false)
}

// NotifyOverlayPut tells the cursor that key was just inserted into the
// overlay it is reading. Used only by txndb to keep a mid-traversal cursor
// correct without a full re-seek.
func (c *Cursor) NotifyOverlayPut(key []byte) {
	if !c.Valid() {
		return
	}
	switch c.state {
	case stateFwdLeft:
		switch cmp := bytes.Compare(c.base.Key(), key); {
		case cmp == 0:
			c.overlay.Seek(key)
			c.state = stateBoth
			return
		case cmp > 0:
			return
		}
		if c.overlay.Valid() && bytes.Compare(c.overlay.Key(), key) < 0 {
			return
		}
		c.overlay.Seek(key)
	case stateRevLeft:
		switch cmp := bytes.Compare(c.base.Key(), key); {
		case cmp == 0:
			c.overlay.Seek(key)
			c.state = stateBoth
			return
		case cmp < 0:
			return
		}
		if c.overlay.Valid() && bytes.Compare(c.overlay.Key(), key) > 0 {
			return
		}
		c.overlay.Seek(key)
	case stateBoth, stateFwdRight, stateRevRight:
		// already reading from the overlay; its own resilience covers this.
	}
}

// NotifyOverlayDelete tells the cursor that key was just removed from the
// overlay it is reading.
func (c *Cursor) NotifyOverlayDelete(key []byte) {
	if !c.Valid() {
		return
	}
	switch c.state {
	case stateFwdLeft:
		if !c.overlay.Valid() || bytes.Compare(c.overlay.Key(), key) != 0 {
			return
		}
		c.overlay.Seek(key)
		c.overlay.Next()
	case stateRevLeft:
		if !c.overlay.Valid() || bytes.Compare(c.overlay.Key(), key) != 0 {
			return
		}
		c.overlay.Seek(key)
		c.overlay.Prev()
	case stateBoth, stateFwdRight, stateRevRight:
		// caller is responsible for stepping away from ghost records.
	}
}

var _ store.Cursor = (*Cursor)(nil)
